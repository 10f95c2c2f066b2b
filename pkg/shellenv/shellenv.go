// Package shellenv turns output names and values into POSIX shell export
// statements.
//
// All functions are pure and safe for concurrent use.
package shellenv

import (
	"strings"
	"unicode"
)

// DefaultPrefix is the prefix used by DefaultVariableName and by callers
// that leave their prefix option unset.
const DefaultPrefix = "CDK_"

// Sanitize converts s into a shell identifier fragment. The input is
// uppercased and every rune outside [A-Z0-9] becomes a single underscore,
// so the result has one byte per input rune.
//
//	Sanitize("my-stack-dev") // "MY_STACK_DEV"
//	Sanitize("bucket.name")  // "BUCKET_NAME"
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		u := unicode.ToUpper(r)
		switch {
		case u >= 'A' && u <= 'Z', u >= '0' && u <= '9':
			b.WriteRune(u)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// Escape prepares s for embedding between single quotes. Each single quote
// becomes '\'' (close, escaped quote, reopen); everything else is literal
// inside single quotes and passes through unchanged.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// VariableName returns prefix + Sanitize(group) + "_" + Sanitize(key).
// The prefix is used verbatim, including an empty one.
func VariableName(group, key, prefix string) string {
	return prefix + Sanitize(group) + "_" + Sanitize(key)
}

// DefaultVariableName is VariableName with DefaultPrefix.
func DefaultVariableName(group, key string) string {
	return VariableName(group, key, DefaultPrefix)
}

// ExportLine formats a single export statement: export NAME='escaped'.
func ExportLine(name, value string) string {
	return "export " + name + "='" + Escape(value) + "'"
}
