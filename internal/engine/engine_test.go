package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tempo/internal/config"
	"tempo/task"
	"tempo/task/passthrough"
)

func init() {
	task.Register("passthrough", passthrough.Transform)
}

func TestBootstrapAndRun_OneCycle(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	pipe := filepath.Join(base, "pipeline.yml")
	body := `schema_version: v1
task:
  name: copy-txt
  uses: passthrough
  source: "*.txt"
  destination: out
`
	if err := os.WriteFile(pipe, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Engine{Pipeline: pipe, BaseDir: base, MetricsPort: 0}
	ctx := context.Background()
	e, err := Bootstrap(ctx, cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(base, "out", "a.txt"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("content = %q", got)
	}
}
