package engine

import (
	"context"
	"fmt"

	"tempo/internal/config"
	"tempo/internal/host"
	"tempo/internal/pipeline"
	"tempo/internal/telemetry"
)

func Bootstrap(ctx context.Context, cfg config.Engine) (*Engine, error) {
	// 1. compile the pipeline into a plugin instance
	plug, err := pipeline.Compile(cfg.Pipeline, cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	// 2. metrics
	telemetry.Expose(cfg.MetricsPort)

	return &Engine{
		plug: plug,
		host: host.New(cfg.Watch),
		cfg:  cfg,
	}, nil
}
