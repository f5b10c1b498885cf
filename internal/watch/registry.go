// Package watch maintains the host compiler's watched-file and
// watched-directory registries on behalf of one plugin instance.
package watch

import "sort"

// Registry is a host-owned set of watched paths. The plugin only adds to and
// rationalizes entries; it never clears entries placed there by other
// collaborators.
type Registry interface {
	Contains(path string) bool
	Add(path string)
	Remove(path string)
	Paths() []string
}

// RegisterFiles adds each file not already present. Idempotent, no removals.
func RegisterFiles(reg Registry, files []string) {
	for _, f := range files {
		if !reg.Contains(f) {
			reg.Add(f)
		}
	}
}

// RegisterDirectories adds each candidate directory unless an existing entry
// already covers it. Existing entries that are strict subdirectories of a
// candidate are evicted first, so the registry never holds two directories
// where one contains the other. Idempotent across cycles with an unchanged
// dependency set.
func RegisterDirectories(reg Registry, dirs []string) {
	for _, dir := range dirs {
		if reg.Contains(dir) {
			continue
		}
		covered := false
		for _, existing := range reg.Paths() {
			if IsSubdir(dir, existing) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		for _, existing := range reg.Paths() {
			if IsSubdir(existing, dir) {
				reg.Remove(existing)
			}
		}
		reg.Add(dir)
	}
}

// Set is a map-backed Registry for hosts that keep no registry of their own.
type Set struct {
	m map[string]struct{}
}

func NewSet() *Set { return &Set{m: map[string]struct{}{}} }

func (s *Set) Contains(path string) bool {
	_, ok := s.m[path]
	return ok
}

func (s *Set) Add(path string)    { s.m[path] = struct{}{} }
func (s *Set) Remove(path string) { delete(s.m, path) }

// Paths returns the entries sorted, keeping logs deterministic.
func (s *Set) Paths() []string {
	out := make([]string, 0, len(s.m))
	for p := range s.m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
