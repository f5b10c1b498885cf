package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Engine is the harness configuration.
type Engine struct {
	Pipeline     string        `koanf:"pipeline"`
	BaseDir      string        `koanf:"base_dir"`
	MetricsPort  int           `koanf:"metrics_port"`
	Watch        bool          `koanf:"watch"`
	PollInterval time.Duration `koanf:"poll_interval"`
}

// LoadEngine merges YAML (if present) with env-vars
// (prefix `TEMPO__`, delimiter `__`).
func LoadEngine(path string) (Engine, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Engine{}, err
		}
	}
	_ = k.Load(env.Provider("TEMPO__", "__", nil), nil)

	var cfg Engine
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyEngineDefaults(&cfg)
	return cfg, nil
}

func applyEngineDefaults(c *Engine) {
	if c.Pipeline == "" {
		c.Pipeline = "pipeline.yml"
	}
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 9100
	}
	if c.PollInterval == 0 {
		c.PollInterval = 2 * time.Second
	}
}
