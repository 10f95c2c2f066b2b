package source

import (
	"context"
	stderrors "errors"
	"io/fs"

	"github.com/spf13/afero"

	"cdk2env/internal/errors"
)

// FileSource reads documents from an afero filesystem
type FileSource struct {
	fs afero.Fs
}

// NewFileSource creates a file source. A nil fs means the OS filesystem.
func NewFileSource(fsys afero.Fs) *FileSource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileSource{fs: fsys}
}

// Read returns the file contents in one read
func (s *FileSource) Read(_ context.Context, path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.InputNotFound(path).
				WithContext("inputPath", path).
				WithSuggestion("Run 'cdk deploy --outputs-file <path>' to produce the outputs file").
				WithSuggestion("Pass the outputs file location as the first argument")
		}
		return nil, errors.InputReadError(err).
			WithContext("inputPath", path).
			WithSuggestion("Check file permissions")
	}
	return data, nil
}

// Name returns "file"
func (s *FileSource) Name() string {
	return "file"
}
