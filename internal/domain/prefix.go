package domain

import (
	"path/filepath"
	"strings"
)

// ExtractPrefix derives the identifier prefix from the base directory's name:
// the leaf path segment up to its first hyphen, or the whole leaf when it
// contains none. Extraction is idempotent and never fails.
func ExtractPrefix(basePath string) string {
	if strings.TrimSpace(basePath) == "" {
		return ""
	}
	leaf := filepath.Base(filepath.Clean(basePath))
	prefix, _, _ := strings.Cut(leaf, "-")
	return prefix
}
