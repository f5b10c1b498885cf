// Package sink defines the destination for a task's output stream.
package sink

import (
	"fmt"

	"tempo/task"
)

// Adapter is the common behaviour every destination exposes.
type Adapter interface {
	Configure(any) error   // driver-specific config ⇒ struct
	Write(task.File) error // consume one output record
	Close() error          // idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
