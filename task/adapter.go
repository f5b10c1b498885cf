// Package task defines the streaming transform contract and the driver
// registry the pipeline compiler resolves names against.
package task

import (
	"context"
	"fmt"
	"time"
)

// File is one file-like record flowing through a transform stream.
type File struct {
	Path    string
	Data    []byte
	ModTime time.Time
}

// Transform consumes a stream of file records and produces a stream of file
// records. Implementations must close out when finished, then deliver the
// terminal error (if any) on errs and close it. Only one task runs per
// plugin instance; sequencing multiple tasks is not supported.
type Transform func(ctx context.Context, in <-chan File) (out <-chan File, errs <-chan error)

/*──────── registry ───────*/

var registry = map[string]Transform{}

// Register is called from main() for each transform the harness compiles in.
func Register(name string, fn Transform) {
	registry[name] = fn
}

// New returns a transform by name.
func New(name string) (Transform, error) {
	if fn, ok := registry[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown task %q", name)
}
