package engine

import (
	"context"
	"time"

	"tempo/internal/config"
	"tempo/internal/host"
	"tempo/internal/plugin"
)

type Engine struct {
	plug *plugin.Plugin
	host *host.Context
	cfg  config.Engine
}

// Run executes one build cycle, then keeps polling when watch is enabled.
// Cycles never overlap: the next tick is not serviced until the previous
// cycle returns.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.plug.Run(ctx, e.host.Hook()); err != nil {
		return err
	}
	if !e.cfg.Watch {
		return nil
	}

	tick := time.NewTicker(e.cfg.PollInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if err := e.plug.Run(ctx, e.host.Hook()); err != nil {
				return err
			}
		}
	}
}
