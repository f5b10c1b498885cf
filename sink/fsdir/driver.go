// Package fsdir writes task output records into a destination directory,
// mirroring each record's path relative to the plugin base.
package fsdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tempo/sink"
	"tempo/task"
)

type Config struct {
	Dir  string `yaml:"dir"`
	Base string `yaml:"base"` // records outside Base fall back to their base name
}

type driver struct {
	cfg Config
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("fsdir-sink: expected Config, got %T", raw)
	}
	if c.Dir == "" {
		return fmt.Errorf("fsdir-sink: dir is required")
	}
	d.cfg = c
	return nil
}

func (d *driver) Write(f task.File) error {
	dst := filepath.Join(d.cfg.Dir, d.relName(f.Path))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, f.Data, 0o644)
}

// relName keeps the record's directory structure under the destination.
// Without it, dependency files from different directories sharing a base
// name would overwrite each other.
func (d *driver) relName(path string) string {
	if d.cfg.Base != "" {
		rel, err := filepath.Rel(d.cfg.Base, path)
		if err == nil && !filepath.IsAbs(rel) &&
			rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return rel
		}
	}
	return filepath.Base(path)
}

func (d *driver) Close() error { return nil }

/*────────── auto-register ──────────*/
func init() {
	sink.Register("fsdir", func() sink.Adapter { return &driver{} })
}
