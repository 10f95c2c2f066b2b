package aws

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"cdk2env/internal/errors"
)

// MockObjectAPI is a mock implementation for testing
type MockObjectAPI struct {
	body    string
	err     error
	bodyErr error

	bucket string
	key    string
}

func (m *MockObjectAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.bucket = awssdk.ToString(params.Bucket)
	m.key = awssdk.ToString(params.Key)

	if m.err != nil {
		return nil, m.err
	}
	if m.bodyErr != nil {
		return &s3.GetObjectOutput{Body: io.NopCloser(&failingReader{err: m.bodyErr})}, nil
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(m.body))}, nil
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestParseObjectURI(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		expected    ObjectLocation
		expectError bool
	}{
		{
			name:     "simple key",
			uri:      "s3://artifacts/outputs.json",
			expected: ObjectLocation{Bucket: "artifacts", Key: "outputs.json"},
		},
		{
			name:     "nested key",
			uri:      "s3://artifacts/deploy/prod/outputs.json",
			expected: ObjectLocation{Bucket: "artifacts", Key: "deploy/prod/outputs.json"},
		},
		{name: "missing key", uri: "s3://artifacts/", expectError: true},
		{name: "missing bucket", uri: "s3:///outputs.json", expectError: true},
		{name: "wrong scheme", uri: "gs://artifacts/outputs.json", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseObjectURI(tt.uri)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
			if got.String() != tt.uri {
				t.Errorf("expected String() %q, got %q", tt.uri, got.String())
			}
		})
	}
}

func TestIsObjectURI(t *testing.T) {
	if !IsObjectURI("s3://bucket/key.json") {
		t.Error("s3 URI should be recognized")
	}
	if IsObjectURI("/tmp/s3/key.json") {
		t.Error("local path should not be recognized")
	}
	if IsObjectURI("s3-outputs.json") {
		t.Error("relative file name should not be recognized")
	}
}

func TestGetObject(t *testing.T) {
	ctx := context.Background()
	location := ObjectLocation{Bucket: "artifacts", Key: "prod/outputs.json"}

	tests := []struct {
		name         string
		api          *MockObjectAPI
		expectBody   string
		expectedType errors.ErrorType
		expectMsg    string
	}{
		{
			name:       "success",
			api:        &MockObjectAPI{body: `{"MyStack":{}}`},
			expectBody: `{"MyStack":{}}`,
		},
		{
			name:         "no such key",
			api:          &MockObjectAPI{err: &types.NoSuchKey{}},
			expectedType: errors.InputNotFoundType,
			expectMsg:    "Input JSON not found: s3://artifacts/prod/outputs.json",
		},
		{
			name:         "no such bucket",
			api:          &MockObjectAPI{err: &types.NoSuchBucket{}},
			expectedType: errors.InputNotFoundType,
			expectMsg:    "s3://artifacts/prod/outputs.json",
		},
		{
			name:         "generic not found code",
			api:          &MockObjectAPI{err: &smithy.GenericAPIError{Code: "NotFound", Message: "not found"}},
			expectedType: errors.InputNotFoundType,
			expectMsg:    "s3://artifacts/prod/outputs.json",
		},
		{
			name:         "access denied",
			api:          &MockObjectAPI{err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}},
			expectedType: errors.InputReadType,
			expectMsg:    "Failed to read input:",
		},
		{
			name:         "body read failure",
			api:          &MockObjectAPI{bodyErr: stderrors.New("connection reset")},
			expectedType: errors.InputReadType,
			expectMsg:    "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClientWithAPI(tt.api)
			data, err := client.GetObject(ctx, location)

			if tt.api.bucket != location.Bucket || tt.api.key != location.Key {
				t.Errorf("unexpected request: bucket=%q key=%q", tt.api.bucket, tt.api.key)
			}

			if tt.expectedType == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(data) != tt.expectBody {
					t.Errorf("expected body %q, got %q", tt.expectBody, string(data))
				}
				return
			}

			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !errors.IsErrorType(err, tt.expectedType) {
				t.Errorf("expected error type %s, got %s", tt.expectedType, errors.GetErrorType(err))
			}
			if !strings.Contains(err.Error(), tt.expectMsg) {
				t.Errorf("expected error containing %q, got %q", tt.expectMsg, err.Error())
			}
		})
	}
}
