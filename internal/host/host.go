// Package host is a minimal stand-in for a compiler's build hook: it owns
// the watch registries and stats watched files to produce the per-cycle
// timestamp map. A real host compiler replaces this package entirely.
package host

import (
	"os"
	"time"

	"tempo/internal/plugin"
	"tempo/internal/watch"
)

type Context struct {
	files     *watch.Set
	dirs      *watch.Set
	watchMode bool
}

func New(watchMode bool) *Context {
	return &Context{files: watch.NewSet(), dirs: watch.NewSet(), watchMode: watchMode}
}

// Snapshot stats every watched file. A file that cannot be statted gets a
// zero time, which the change detector treats as infinitely new.
func (c *Context) Snapshot() map[string]time.Time {
	stamps := make(map[string]time.Time)
	for _, p := range c.files.Paths() {
		info, err := os.Stat(p)
		if err != nil {
			stamps[p] = time.Time{}
			continue
		}
		stamps[p] = info.ModTime()
	}
	return stamps
}

// Hook assembles the per-cycle surface handed to the plugin.
func (c *Context) Hook() *plugin.Host {
	return &plugin.Host{
		Files:      c.files,
		Dirs:       c.dirs,
		Timestamps: c.Snapshot(),
		WatchMode:  c.watchMode,
	}
}
