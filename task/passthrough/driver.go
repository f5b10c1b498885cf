// Package passthrough forwards every record unchanged. It exists so the
// harness has a task to run; real transforms live with the host build.
package passthrough

import (
	"context"

	"tempo/task"
)

func Transform(ctx context.Context, in <-chan task.File) (<-chan task.File, <-chan error) {
	out := make(chan task.File)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(out)
		for f := range in {
			select {
			case out <- f:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()
	return out, errs
}
