package common

import (
	"path/filepath"
	"strings"
)

// Stem returns the base name of a file path without its extension.
// Returns empty string if p is empty.
func Stem(p string) string {
	if p == "" {
		return ""
	}

	base := filepath.Base(p)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
