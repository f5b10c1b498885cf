package watch

import (
	"path/filepath"
	"strings"
)

// IsSubdir reports whether child is a strict subdirectory of parent. A
// directory is not a subdirectory of itself.
func IsSubdir(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	if rel == "" || rel == "." || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
