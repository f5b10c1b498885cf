// Package pipeline compiles a pipeline YAML into a configured plugin
// instance, wiring the named task driver and the destination sink.
package pipeline

import (
	"fmt"
	"path/filepath"

	"tempo/internal/config"
	"tempo/internal/plugin"
	"tempo/sink"
	_ "tempo/sink/discard"
	"tempo/sink/fsdir"
	"tempo/task"
)

func Compile(path, baseDir string) (*plugin.Plugin, error) {
	cfgFile, err := config.LoadPipeline(path)
	if err != nil {
		return nil, err
	}

	resolved, warns, err := config.ResolveTask(cfgFile.Task)
	if err != nil {
		return nil, err
	}
	rep := plugin.DefaultReporter()
	for _, w := range warns {
		rep.Warn(plugin.Item{Plugin: resolved.Name, Message: w.Message})
	}

	tr, err := task.New(resolved.Uses)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", resolved.Name, err)
	}

	dest, err := buildSink(resolved, baseDir)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", resolved.Name, err)
	}

	return plugin.New(baseDir, resolved, tr, dest, rep), nil
}

func buildSink(r config.Resolved, baseDir string) (sink.Adapter, error) {
	if r.Discard {
		return sink.NewAdapter("discard")
	}
	dir := r.Destination
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(baseDir, dir)
	}
	s, err := sink.NewAdapter("fsdir")
	if err != nil {
		return nil, err
	}
	if err := s.Configure(fsdir.Config{Dir: dir, Base: baseDir}); err != nil {
		return nil, err
	}
	return s, nil
}
