// Package logging builds the zap logger used for diagnostics on stderr.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a console logger writing to stderr.
// Without verbose only warnings and errors are written, so a successful
// run prints nothing; verbose enables debug and info with a level column.
func NewLogger(stderr io.Writer, verbose bool) *zap.SugaredLogger {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return true
		}
		return l >= zapcore.WarnLevel
	})

	// Prefix messages with level only when verbose enabled
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(stderr), levels)).Sugar()
}

// NewNop returns a logger that discards everything
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
