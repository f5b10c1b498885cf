// Package discard drops task output. Wired when a pipeline sets its
// destination to an explicit null.
package discard

import (
	"tempo/sink"
	"tempo/task"
)

type driver struct{}

func (driver) Configure(any) error   { return nil }
func (driver) Write(task.File) error { return nil }
func (driver) Close() error          { return nil }

/*────────── auto-register ──────────*/
func init() {
	sink.Register("discard", func() sink.Adapter { return driver{} })
}
