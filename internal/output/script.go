package output

import (
	"strings"

	"cdk2env/internal/interfaces"
	"cdk2env/internal/models"
	"cdk2env/pkg/shellenv"
)

// Header lines written above the export statements. The last line is
// completed with the path of the generated script.
var headerLines = []string{
	"#!/usr/bin/env bash",
	"# Auto-generated from CDK outputs.json. Do not edit manually.",
	"# Source this file:",
	"#   source ",
}

// ShellFormatter renders export statements for bash/sh
type ShellFormatter struct {
	Prefix string
}

// NewShellFormatter creates a formatter that prepends prefix to every
// variable name. An empty prefix means shellenv.DefaultPrefix.
func NewShellFormatter(prefix string) interfaces.ScriptFormatter {
	if prefix == "" {
		prefix = shellenv.DefaultPrefix
	}
	return &ShellFormatter{Prefix: prefix}
}

// Format renders the header, one export line per entry in document order,
// and a single trailing newline.
func (f *ShellFormatter) Format(doc *models.OutputDocument, sourcePath string) string {
	lines := make([]string, 0, len(headerLines)+1+doc.EntryCount())
	lines = append(lines, headerLines[:len(headerLines)-1]...)
	lines = append(lines, headerLines[len(headerLines)-1]+sourcePath, "")

	for _, group := range doc.Groups {
		for _, entry := range group.Entries {
			name := shellenv.VariableName(group.Name, entry.Key, f.Prefix)
			lines = append(lines, shellenv.ExportLine(name, entry.Value))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
