package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tempo/internal/config"
	"tempo/internal/engine"
	"tempo/internal/logging"
	"tempo/task"
	"tempo/task/passthrough"
)

func main() {
	logging.InitFromEnv()

	cfgPath := os.Getenv("TEMPO_CONFIG")
	if cfgPath == "" {
		cfgPath = "tempo.yml"
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	task.Register("passthrough", passthrough.Transform)

	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("engine: %v", err)
	}
}
