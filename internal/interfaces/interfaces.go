package interfaces

import (
	"context"

	"cdk2env/internal/models"
)

// Source reads the raw bytes of an outputs document
type Source interface {
	// Read returns the full contents at location. Missing locations must be
	// reported as an INPUT_NOT_FOUND ConversionError, other failures as INPUT_READ.
	Read(ctx context.Context, location string) ([]byte, error)

	// Name identifies the source in log messages (e.g. "file", "s3")
	Name() string
}

// DocumentParser turns raw JSON into an OutputDocument
type DocumentParser interface {
	// Parse validates the document shape and collects string entries in source order
	Parse(data []byte) (*models.OutputDocument, error)
}

// ScriptFormatter renders a document as a sourceable shell script
type ScriptFormatter interface {
	// Format returns the complete script text, including the header and trailing newline
	Format(doc *models.OutputDocument, sourcePath string) string
}
