// Package plugin ties dependency resolution, change detection, and the run
// decision together into one build-cycle pipeline.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"tempo/internal/change"
	"tempo/internal/config"
	"tempo/internal/deps"
	"tempo/internal/logging"
	"tempo/internal/telemetry"
	"tempo/internal/timefmt"
	"tempo/internal/watch"
	"tempo/sink"
	"tempo/task"
)

var (
	// ErrTaskInterrupted marks a failure inside the task's own stream.
	ErrTaskInterrupted = errors.New("task execution was interrupted")
	// ErrDestinationWrite marks a failure writing task output to the sink.
	ErrDestinationWrite = errors.New("task produced output but writing it failed")
)

// Host is the per-cycle surface the build tool hands to the plugin: its
// watch registries, the timestamps it observed, and whether watch mode is
// active. Run returning is the cycle-complete signal; the host must not
// start another cycle for the same instance until then.
type Host struct {
	Files      watch.Registry
	Dirs       watch.Registry
	Timestamps map[string]time.Time
	WatchMode  bool
}

// Plugin runs one streaming task against a glob-specified dependency set,
// deciding each build cycle whether the task needs to run and which files it
// gets.
type Plugin struct {
	cfg       config.Resolved
	transform task.Transform
	dest      sink.Adapter
	rep       Reporter
	base      string

	runStart time.Time
	prev     change.Snapshot
}

// New builds a plugin instance. dest may be nil to drop output; rep may be
// nil to report through the process logger. runStart is captured here, once.
func New(base string, cfg config.Resolved, tr task.Transform, dest sink.Adapter, rep Reporter) *Plugin {
	if rep == nil {
		rep = DefaultReporter()
	}
	return &Plugin{
		cfg:       cfg,
		transform: tr,
		dest:      dest,
		rep:       rep,
		base:      base,
		runStart:  time.Now(),
		prev:      change.None(),
	}
}

// Run executes one build cycle. Every failure is surfaced through the
// reporter and leaves the host's build alive; the returned error is
// non-nil only when ctx is cancelled.
func (p *Plugin) Run(ctx context.Context, host *Host) error {
	log := logging.L().With("plugin", p.cfg.Name, "cycle", uuid.NewString())

	if err := p.validate(); err != nil {
		// Cycle aborted before resolution, so no snapshot is captured.
		p.rep.Warn(Item{Plugin: p.cfg.Name, Message: "invalid configuration, skipping cycle", Cause: err})
		telemetry.CycleDone("invalid")
		return nil
	}

	files, err := deps.Resolve(p.base, p.cfg.Source)
	if err != nil {
		p.rep.Error(Item{Plugin: p.cfg.Name, Message: "resolving dependencies failed", Cause: err})
		telemetry.CycleDone("error")
		return nil
	}

	watch.RegisterFiles(host.Files, files)
	if p.cfg.Watch.IncludeSourceDirectories {
		watch.RegisterDirectories(host.Dirs, deps.DirectoriesOf(files))
	}

	changed := change.Since(host.Timestamps, p.prev, p.runStart)
	changedDeps := change.Intersect(files, changed)
	telemetry.SetCycleCounts(len(files), len(changedDeps))

	// The snapshot moves forward whatever happens below, so a failing task
	// cannot pin the plugin in its first-run state.
	defer func() { p.prev = change.Capture(host.Timestamps) }()

	d := decision{
		noPrevTimestamps: !p.prev.Taken() || p.prev.Len() == 0,
		filesChanged:     len(changedDeps) > 0,
		alwaysRun:        p.cfg.Watch.AlwaysRun,
		watchActive:      host.WatchMode,
		skipInitialRun:   p.cfg.Watch.SkipInitialRun,
	}
	if !d.shouldRun() {
		if d.shouldSkip() {
			// A deliberate skip is a host-visible notice, unlike an idle
			// cycle with nothing to do.
			p.rep.Warn(Item{Plugin: p.cfg.Name, Message: "skipping initial run"})
			telemetry.CycleDone("skip")
		} else {
			log.Debug("no changes, nothing to do")
			telemetry.CycleDone("noop")
		}
		return nil
	}

	input := files
	if p.cfg.Watch.ChangedFilesOnly && d.filesChanged {
		input = changedDeps
	}

	log.Info("starting", "files", len(input))
	start := time.Now()
	if err := p.execute(ctx, host.Timestamps, input); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.rep.Error(Item{Plugin: p.cfg.Name, Message: err.Error(), Cause: err})
		telemetry.CycleDone("error")
		return nil
	}
	elapsed := time.Since(start)
	telemetry.ObserveTask(elapsed.Seconds())
	telemetry.CycleDone("run")
	log.Info("finished", "took", timefmt.Duration(elapsed.Milliseconds()))
	return nil
}

func (p *Plugin) validate() error {
	if len(p.cfg.Source) == 0 {
		return errors.New("source is required")
	}
	if p.transform == nil {
		return errors.New("task is required")
	}
	return nil
}

// execute feeds the input files through the transform and pipes its output
// stream to the destination, sequentially: the write consumes the task's
// output, so the two never overlap.
func (p *Plugin) execute(ctx context.Context, stamps map[string]time.Time, paths []string) error {
	in := make(chan task.File)
	feedErr := make(chan error, 1)
	// Closed on return so the feeder never outlives the cycle: a transform
	// may deliver its terminal error without draining in.
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(in)
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				feedErr <- err
				return
			}
			select {
			case in <- task.File{Path: path, Data: data, ModTime: stamps[path]}:
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	out, errs := p.transform(ctx, in)

	var writeErr error
	for f := range out {
		if writeErr != nil || p.dest == nil {
			continue // keep draining so the task can finish
		}
		if err := p.dest.Write(f); err != nil {
			writeErr = err
		}
	}
	if err := <-errs; err != nil {
		return fmt.Errorf("%w: %w", ErrTaskInterrupted, err)
	}
	select {
	case err := <-feedErr:
		return fmt.Errorf("%w: %w", ErrTaskInterrupted, err)
	default:
	}
	if writeErr != nil {
		return fmt.Errorf("%w: %w", ErrDestinationWrite, writeErr)
	}
	return nil
}
