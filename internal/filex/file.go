// Package filex holds filesystem helpers shared by the export pipeline.
package filex

import (
	"fmt"
	"os"
	"regexp"
)

// unsafeChars matches every character that may not appear in an output
// file or directory name.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.\- ]`)

// SanitizeName replaces every disallowed character with an underscore.
// The result has the same length (in runes) as the input, so two inputs
// of different length can never collide; two different inputs of the same
// length still can, and the last writer wins.
func SanitizeName(s string) string {
	return unsafeChars.ReplaceAllString(s, "_")
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
