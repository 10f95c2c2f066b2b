package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestConversionErrorCreation(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name        string
		createError func() *ConversionError
		expectType  ErrorType
		expectMsg   string
	}{
		{
			name:        "input not found",
			createError: func() *ConversionError { return InputNotFound("/tmp/outputs.json") },
			expectType:  InputNotFoundType,
			expectMsg:   "Input JSON not found: /tmp/outputs.json",
		},
		{
			name:        "input read error",
			createError: func() *ConversionError { return InputReadError(cause) },
			expectType:  InputReadType,
			expectMsg:   "Failed to read input: permission denied",
		},
		{
			name:        "invalid JSON",
			createError: func() *ConversionError { return InvalidJSON(errors.New("unexpected tail")) },
			expectType:  InvalidJSONType,
			expectMsg:   "Invalid JSON: unexpected tail",
		},
		{
			name:        "invalid root shape",
			createError: func() *ConversionError { return InvalidRootShape("array") },
			expectType:  InvalidRootShapeType,
			expectMsg:   "Unexpected JSON root structure (expected object).",
		},
		{
			name:        "output write error",
			createError: func() *ConversionError { return OutputWriteError(cause) },
			expectType:  OutputWriteType,
			expectMsg:   "Failed to write output: permission denied",
		},
		{
			name:        "config error",
			createError: func() *ConversionError { return ConfigError("bad flag") },
			expectType:  ConfigErrorType,
			expectMsg:   "bad flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.createError()

			if err.Type != tt.expectType {
				t.Errorf("expected type %s, got %s", tt.expectType, err.Type)
			}

			if err.Error() != tt.expectMsg {
				t.Errorf("expected message '%s', got '%s'", tt.expectMsg, err.Error())
			}
		})
	}
}

func TestConversionErrorUnwrap(t *testing.T) {
	err := InputReadError(fs.ErrPermission)

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatal("errors.As should match *ConversionError")
	}
	if convErr.Type != InputReadType {
		t.Errorf("expected type %s, got %s", InputReadType, convErr.Type)
	}

	if !errors.Is(err, &ConversionError{Type: InputReadType}) {
		t.Error("errors.Is should match on error type")
	}
	if errors.Is(err, &ConversionError{Type: OutputWriteType}) {
		t.Error("errors.Is should not match a different error type")
	}
}

func TestInvalidRootShapeContext(t *testing.T) {
	err := InvalidRootShape("null")

	if err.Context["found"] != "null" {
		t.Errorf("expected found context 'null', got %v", err.Context["found"])
	}
	if strings.Contains(err.Error(), "null") {
		t.Errorf("message should not include context: %s", err.Error())
	}
}

func TestErrorBuilderPattern(t *testing.T) {
	err := InputNotFound("var/outputs.json").
		WithContext("inputPath", "var/outputs.json").
		WithSuggestion("Run 'cdk deploy --outputs-file var/outputs.json' first")

	if len(err.Context) != 1 {
		t.Errorf("expected 1 context item, got %d", len(err.Context))
	}

	if len(err.Suggestions) != 1 || !strings.HasPrefix(err.Suggestions[0], "Run 'cdk deploy") {
		t.Errorf("unexpected suggestions: %v", err.Suggestions)
	}
}

func TestErrorTypeChecking(t *testing.T) {
	notFound := InputNotFound("x.json")

	if !IsErrorType(notFound, InputNotFoundType) {
		t.Error("IsErrorType should return true for matching type")
	}
	if IsErrorType(notFound, InputReadType) {
		t.Error("IsErrorType should return false for non-matching type")
	}
	if IsErrorType(errors.New("regular error"), InputNotFoundType) {
		t.Error("IsErrorType should return false for non-ConversionError")
	}
	if GetErrorType(notFound) != InputNotFoundType {
		t.Error("GetErrorType should return correct type")
	}
	if GetErrorType(errors.New("regular error")) != "" {
		t.Error("GetErrorType should return empty string for non-ConversionError")
	}
}

func TestFormatErrorForUser(t *testing.T) {
	if FormatErrorForUser(nil) != "" {
		t.Error("formatting nil error should return empty string")
	}

	formatted := FormatErrorForUser(errors.New("regular error"))
	if formatted != "Error: regular error\n" {
		t.Errorf("unexpected formatting: %q", formatted)
	}

	err := InputNotFound("/work/var/outputs.json").
		WithContext("inputPath", "/work/var/outputs.json").
		WithSuggestion("Check the input path")

	if got := FormatErrorForUser(err); got != "Error: Input JSON not found: /work/var/outputs.json\n" {
		t.Errorf("context and suggestions should not be printed: %q", got)
	}
}
