// Package change computes which dependency files moved since the previous
// build cycle.
package change

import "time"

// Snapshot is the file→mtime mapping retained from one completed cycle. The
// zero value (None) means no cycle has completed yet, which is distinct from
// a cycle that observed zero files.
type Snapshot struct {
	times map[string]time.Time
	taken bool
}

// None is the pre-first-run snapshot.
func None() Snapshot { return Snapshot{} }

// Capture copies times into a new snapshot. The source map is copied
// wholesale so a later cycle can never observe a half-updated snapshot.
func Capture(times map[string]time.Time) Snapshot {
	cp := make(map[string]time.Time, len(times))
	for k, v := range times {
		cp[k] = v
	}
	return Snapshot{times: cp, taken: true}
}

// Taken reports whether any cycle has completed.
func (s Snapshot) Taken() bool { return s.taken }

// Len is the number of files the snapshot observed.
func (s Snapshot) Len() int { return len(s.times) }

// Time returns the recorded mtime for path, if the snapshot has one.
func (s Snapshot) Time(path string) (time.Time, bool) {
	t, ok := s.times[path]
	return t, ok
}

// Since returns the paths in current whose timestamp moved strictly past
// the one in prev, falling back to runStart for paths prev never saw. A zero
// current time means the host could not resolve a timestamp for the file; it
// compares as infinitely new and is always reported.
func Since(current map[string]time.Time, prev Snapshot, runStart time.Time) map[string]struct{} {
	changed := make(map[string]struct{})
	for path, now := range current {
		prevTime := runStart
		if t, ok := prev.Time(path); ok {
			prevTime = t
		}
		if now.IsZero() || prevTime.Before(now) {
			changed[path] = struct{}{}
		}
	}
	return changed
}

// Intersect filters files down to those present in changed, preserving the
// order of files.
func Intersect(files []string, changed map[string]struct{}) []string {
	var out []string
	for _, f := range files {
		if _, ok := changed[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
