package config

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"tempo/internal/spec"
)

func parseTask(t *testing.T, src string) spec.TaskSpec {
	t.Helper()
	var f spec.File
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	return f.Task
}

func TestResolveTask_Defaults(t *testing.T) {
	ts := parseTask(t, `
task:
  uses: copy
  source: "assets/**/*.js"
`)
	r, warns, err := ResolveTask(ts)
	if err != nil {
		t.Fatalf("ResolveTask: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if !reflect.DeepEqual(r.Source, []string{"assets/**/*.js"}) {
		t.Errorf("scalar source should become a one-element list, got %v", r.Source)
	}
	if r.Destination != DefaultDestination || r.Discard {
		t.Errorf("destination default: %q discard=%v", r.Destination, r.Discard)
	}
	if r.Name != "copy" {
		t.Errorf("name should fall back to the driver name, got %q", r.Name)
	}
	if r.Watch != (Watch{}) {
		t.Errorf("watch options default to false, got %+v", r.Watch)
	}
}

func TestResolveTask_SourceRequired(t *testing.T) {
	if _, _, err := ResolveTask(spec.TaskSpec{Uses: "copy"}); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestResolveTask_DestinationNullDiscards(t *testing.T) {
	ts := parseTask(t, `
task:
  uses: copy
  source: ["a.txt"]
  destination: null
`)
	r, _, err := ResolveTask(ts)
	if err != nil {
		t.Fatalf("ResolveTask: %v", err)
	}
	if !r.Discard {
		t.Fatal("explicit null destination must suppress writing")
	}
}

func TestResolveTask_DeprecatedAlwaysWinsWithWarning(t *testing.T) {
	ts := parseTask(t, `
task:
  name: minify
  uses: copy
  source: ["a.txt"]
  always: true
  watch_mode:
    always_run: false
`)
	r, warns, err := ResolveTask(ts)
	if err != nil {
		t.Fatalf("ResolveTask: %v", err)
	}
	if !r.Watch.AlwaysRun {
		t.Error("deprecated always=true must win over watch_mode.always_run=false")
	}
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "conflicts") {
		t.Errorf("want one conflict warning, got %v", warns)
	}
}

func TestResolveTask_DeprecatedAgreementStillWarns(t *testing.T) {
	ts := parseTask(t, `
task:
  uses: copy
  source: ["a.txt"]
  watch_source_directories: true
  watch_mode:
    include_source_directories: true
`)
	r, warns, err := ResolveTask(ts)
	if err != nil {
		t.Fatalf("ResolveTask: %v", err)
	}
	if !r.Watch.IncludeSourceDirectories {
		t.Error("include_source_directories should be true")
	}
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "deprecated") {
		t.Errorf("want one deprecation warning, got %v", warns)
	}
}

func TestResolveTask_DefaultLabel(t *testing.T) {
	r, _, err := ResolveTask(spec.TaskSpec{Source: spec.Patterns{"a.txt"}})
	if err != nil {
		t.Fatalf("ResolveTask: %v", err)
	}
	if r.Name != DefaultTaskLabel {
		t.Errorf("got %q, want %q", r.Name, DefaultTaskLabel)
	}
}
