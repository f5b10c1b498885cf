// Package deps expands a task's glob patterns into the concrete dependency
// set for one build cycle. Results are never cached: filesystem contents may
// change between cycles, so every cycle resolves from scratch.
package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Resolve expands glob patterns (relative ones against base) into absolute,
// de-duplicated file paths, sorted for deterministic logs. An empty result
// is valid: a task with no dependencies is never triggered by file changes.
func Resolve(base string, patterns []string) ([]string, error) {
	set := make(map[string]struct{})
	for _, pat := range patterns {
		full := pat
		if !filepath.IsAbs(full) {
			full = filepath.Join(base, full)
		}
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", pat, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, err
			}
			set[abs] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// DirectoriesOf returns the distinct parent directories of files, sorted.
func DirectoriesOf(files []string) []string {
	set := make(map[string]struct{})
	for _, f := range files {
		set[filepath.Dir(f)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
