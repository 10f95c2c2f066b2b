// Package source reads outputs documents from the local filesystem or S3.
package source

import (
	"context"

	"cdk2env/internal/aws"
	"cdk2env/internal/interfaces"
)

// Router dispatches a location to the S3 source for s3:// URIs and to the
// file source for everything else.
type Router struct {
	File interfaces.Source
	S3   interfaces.Source
}

// NewRouter creates a router over the given sources. A nil s3 source makes
// s3:// locations fall through to the file source.
func NewRouter(file, s3 interfaces.Source) *Router {
	return &Router{File: file, S3: s3}
}

// For returns the source responsible for location
func (r *Router) For(location string) interfaces.Source {
	if r.S3 != nil && aws.IsObjectURI(location) {
		return r.S3
	}
	return r.File
}

// Read reads location through the matching source
func (r *Router) Read(ctx context.Context, location string) ([]byte, error) {
	return r.For(location).Read(ctx, location)
}

// Name returns "router"
func (r *Router) Name() string {
	return "router"
}
