// Package config resolves pipeline and engine options into immutable
// structs, merging deprecated option spellings with their replacements.
package config

import (
	"fmt"

	"tempo/internal/spec"
)

const (
	// DefaultTaskLabel names a task whose config gives no name and whose
	// driver name is empty. Used only in human-readable log lines.
	DefaultTaskLabel = "stream task"

	DefaultDestination = "./"
)

// Watch holds the resolved watch-mode options.
type Watch struct {
	IncludeSourceDirectories bool
	SkipInitialRun           bool
	AlwaysRun                bool
	ChangedFilesOnly         bool
}

// Resolved is one plugin instance's configuration after merging current and
// deprecated option spellings. Immutable once built.
type Resolved struct {
	Name        string
	Uses        string
	Source      []string
	Destination string
	Discard     bool // destination was explicitly null
	Watch       Watch
}

// Warning is a non-fatal finding raised while resolving options.
type Warning struct {
	Message string
}

// ResolveTask merges a task spec into a Resolved config plus any deprecation
// warnings. A set deprecated option wins over its watch_mode counterpart; a
// disagreement between the two raises a sharper warning.
func ResolveTask(ts spec.TaskSpec) (Resolved, []Warning, error) {
	if len(ts.Source) == 0 {
		return Resolved{}, nil, fmt.Errorf("task %q: source is required", taskLabel(ts))
	}

	r := Resolved{
		Name:        ts.Name,
		Uses:        ts.Uses,
		Source:      append([]string(nil), ts.Source...),
		Destination: DefaultDestination,
		Watch: Watch{
			IncludeSourceDirectories: ts.WatchMode.IncludeSourceDirectories,
			SkipInitialRun:           ts.WatchMode.SkipInitialRun,
			AlwaysRun:                ts.WatchMode.AlwaysRun,
			ChangedFilesOnly:         ts.WatchMode.ChangedFilesOnly,
		},
	}
	if ts.Destination.Set {
		if ts.Destination.Null {
			r.Discard = true
			r.Destination = ""
		} else {
			r.Destination = ts.Destination.Value
		}
	}

	var warns []Warning
	if ts.WatchSourceDirectories != nil {
		if *ts.WatchSourceDirectories != ts.WatchMode.IncludeSourceDirectories {
			warns = append(warns, Warning{Message: "watch_source_directories conflicts with watch_mode.include_source_directories; the deprecated value wins"})
		} else {
			warns = append(warns, Warning{Message: "watch_source_directories is deprecated, use watch_mode.include_source_directories"})
		}
		r.Watch.IncludeSourceDirectories = *ts.WatchSourceDirectories
	}
	if ts.Always != nil {
		if *ts.Always != ts.WatchMode.AlwaysRun {
			warns = append(warns, Warning{Message: "always conflicts with watch_mode.always_run; the deprecated value wins"})
		} else {
			warns = append(warns, Warning{Message: "always is deprecated, use watch_mode.always_run"})
		}
		r.Watch.AlwaysRun = *ts.Always
	}

	if r.Name == "" {
		r.Name = r.Uses
	}
	if r.Name == "" {
		r.Name = DefaultTaskLabel
	}
	return r, warns, nil
}

func taskLabel(ts spec.TaskSpec) string {
	if ts.Name != "" {
		return ts.Name
	}
	if ts.Uses != "" {
		return ts.Uses
	}
	return DefaultTaskLabel
}
