package aws

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"cdk2env/internal/errors"
)

// URIScheme is the scheme of object locations handled by this package
const URIScheme = "s3"

// ObjectAPI is the subset of the S3 API the client uses
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Client fetches outputs documents stored in S3
type Client struct {
	api ObjectAPI
}

// ClientConfig holds configuration for the AWS client
type ClientConfig struct {
	Region     string
	MaxRetries int
}

// ObjectLocation identifies an S3 object
type ObjectLocation struct {
	Bucket string
	Key    string
}

func (l ObjectLocation) String() string {
	return fmt.Sprintf("%s://%s/%s", URIScheme, l.Bucket, l.Key)
}

// IsObjectURI reports whether location uses the s3:// scheme
func IsObjectURI(location string) bool {
	return strings.HasPrefix(location, URIScheme+"://")
}

// ParseObjectURI splits s3://bucket/key into its parts
func ParseObjectURI(location string) (ObjectLocation, error) {
	u, err := url.Parse(location)
	if err != nil {
		return ObjectLocation{}, err
	}
	if u.Scheme != URIScheme {
		return ObjectLocation{}, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return ObjectLocation{}, fmt.Errorf("expected %s://bucket/key, got %q", URIScheme, location)
	}

	return ObjectLocation{Bucket: u.Host, Key: key}, nil
}

// NewClient creates an S3 client from the default AWS configuration chain
// (environment, shared config, IAM role) with a bounded standard retryer.
func NewClient(ctx context.Context, clientConfig *ClientConfig) (*Client, error) {
	if clientConfig == nil {
		clientConfig = &ClientConfig{MaxRetries: 3}
	}
	if clientConfig.MaxRetries <= 0 {
		clientConfig.MaxRetries = 3
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.NewStandard(func(so *retry.StandardOptions) {
					so.Backoff = retry.BackoffDelayerFunc(func(attempt int, err error) (time.Duration, error) {
						// Exponential backoff: 1s, 2s, 4s, capped at 10s
						delay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
						if delay > 10*time.Second {
							delay = 10 * time.Second
						}
						return delay, nil
					})
				}),
				clientConfig.MaxRetries,
			)
		}),
	}
	if clientConfig.Region != "" {
		opts = append(opts, config.WithRegion(clientConfig.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.InputReadError(fmt.Errorf("failed to load AWS configuration: %w", err)).
			WithSuggestion("Ensure AWS credentials are configured (AWS CLI, environment variables, or IAM role)")
	}

	return &Client{api: s3.NewFromConfig(cfg)}, nil
}

// NewClientWithAPI wraps an existing ObjectAPI implementation
func NewClientWithAPI(api ObjectAPI) *Client {
	return &Client{api: api}
}

// GetObject downloads the whole object body.
// A missing bucket or key is reported as INPUT_NOT_FOUND with the object URI.
func (c *Client) GetObject(ctx context.Context, location ObjectLocation) ([]byte, error) {
	result, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(location.Bucket),
		Key:    aws.String(location.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, errors.InputNotFound(location.String()).
				WithContext("bucket", location.Bucket).
				WithContext("key", location.Key)
		}
		return nil, errors.InputReadError(err).
			WithContext("bucket", location.Bucket).
			WithContext("key", location.Key).
			WithSuggestion("Verify your AWS credentials have s3:GetObject permission")
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, errors.InputReadError(err).
			WithContext("bucket", location.Bucket).
			WithContext("key", location.Key)
	}

	return data, nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if stderrors.As(err, &noSuchKey) {
		return true
	}
	var noSuchBucket *types.NoSuchBucket
	if stderrors.As(err, &noSuchBucket) {
		return true
	}
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}
	return false
}
