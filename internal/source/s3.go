package source

import (
	"context"
	"sync"

	"cdk2env/internal/aws"
	"cdk2env/internal/errors"
)

// ClientFactory builds the S3 client on first use
type ClientFactory func(ctx context.Context) (*aws.Client, error)

// S3Source reads documents from s3://bucket/key locations
type S3Source struct {
	factory ClientFactory

	mu     sync.Mutex
	client *aws.Client
}

// NewS3Source creates an S3 source. The client is created lazily so local
// conversions never load AWS configuration.
func NewS3Source(factory ClientFactory) *S3Source {
	if factory == nil {
		factory = func(ctx context.Context) (*aws.Client, error) {
			return aws.NewClient(ctx, nil)
		}
	}
	return &S3Source{factory: factory}
}

// Read downloads the object at location
func (s *S3Source) Read(ctx context.Context, location string) ([]byte, error) {
	object, err := aws.ParseObjectURI(location)
	if err != nil {
		return nil, errors.InputReadError(err).
			WithContext("inputPath", location).
			WithSuggestion("Use the form s3://bucket/key")
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	return client.GetObject(ctx, object)
}

// getClient returns the cached client, building it on first success.
// A failed build is not cached, so a cancelled call does not poison later reads.
func (s *S3Source) getClient(ctx context.Context) (*aws.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	client, err := s.factory(ctx)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// Name returns "s3"
func (s *S3Source) Name() string {
	return "s3"
}
