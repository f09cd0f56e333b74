// Package shared provides common utility functions used across multiple
// packages in the schemalab codebase.
package shared

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// ArtifactName derives the generated file name for a schema input: the
// schema's base name with its extension swapped for ext.
func ArtifactName(schemaPath string, ext string) string {
	base := filepath.Base(schemaPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
