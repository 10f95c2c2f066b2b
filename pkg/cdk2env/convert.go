// Package cdk2env converts deployment outputs JSON (as written by
// `cdk deploy --outputs-file`) into a shell script of export statements.
//
//	err := cdk2env.Convert(ctx, cdk2env.Options{
//		InputPath:  "var/outputs.json",
//		OutputPath: "var/outputs.sh",
//	})
//
// The input is an object of groups (stacks), each an object of string
// outputs. Every string output becomes one line
//
//	export <PREFIX><GROUP>_<KEY>='<value>'
//
// in source order. Groups that are not objects and outputs that are not
// strings are skipped without error.
package cdk2env

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"cdk2env/internal/errors"
	"cdk2env/internal/interfaces"
	"cdk2env/internal/logging"
	"cdk2env/internal/output"
	"cdk2env/internal/parser"
	"cdk2env/internal/source"
)

// Options configure a single conversion
type Options struct {
	// InputPath is a local file path or an s3://bucket/key URI
	InputPath string
	// OutputPath is the local file the script is written to; it is
	// also quoted in the script header
	OutputPath string
	// Prefix is prepended to every variable name; empty means "CDK_"
	Prefix string
}

// Source reads the raw input document. See WithSource.
type Source = interfaces.Source

// Converter runs conversions. It holds no per-call state and is safe for
// concurrent use with distinct output paths.
type Converter struct {
	fs     afero.Fs
	source Source
	parser interfaces.DocumentParser
	logger *zap.SugaredLogger
}

// Option customizes a Converter
type Option func(*Converter)

// WithFs sets the filesystem used for local input and for the output
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) {
		c.fs = fs
	}
}

// WithSource replaces the input reader
func WithSource(s Source) Option {
	return func(c *Converter) {
		c.source = s
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New creates a converter. By default it uses the OS filesystem, reads
// s3:// inputs through the default AWS configuration and logs nothing.
func New(opts ...Option) *Converter {
	c := &Converter{
		fs:     afero.NewOsFs(),
		parser: parser.NewParser(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		c.source = source.NewRouter(source.NewFileSource(c.fs), source.NewS3Source(nil))
	}
	return c
}

// Convert runs a conversion with a default Converter
func Convert(ctx context.Context, opts Options) error {
	return New().Convert(ctx, opts)
}

// Convert reads opts.InputPath, builds the script and writes it to
// opts.OutputPath, replacing any existing file. Nothing is written unless
// reading, parsing and validation succeed. ctx bounds remote reads only.
func (c *Converter) Convert(ctx context.Context, opts Options) error {
	log := c.logger.With("input", opts.InputPath, "output", opts.OutputPath)

	src := c.source
	if router, ok := src.(*source.Router); ok {
		src = router.For(opts.InputPath)
	}

	data, err := src.Read(ctx, opts.InputPath)
	if err != nil {
		if _, ok := err.(*errors.ConversionError); !ok {
			err = errors.InputReadError(err).WithContext("inputPath", opts.InputPath)
		}
		return err
	}
	log.Debugf("read %d bytes from %s source", len(data), src.Name())

	doc, err := c.parser.Parse(data)
	if err != nil {
		return err
	}
	for _, skipped := range doc.Skipped {
		log.Debugf("skipped %s", skipped)
	}

	script := output.NewShellFormatter(opts.Prefix).Format(doc, opts.OutputPath)

	if err := afero.WriteFile(c.fs, opts.OutputPath, []byte(script), 0o644); err != nil {
		return errors.OutputWriteError(err).
			WithContext("outputPath", opts.OutputPath).
			WithSuggestion("Check that the output directory exists and is writable")
	}

	log.Infof("wrote %d export lines from %d groups", doc.EntryCount(), len(doc.Groups))
	return nil
}
