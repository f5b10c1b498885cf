// Package spec holds the YAML shapes of a tempo pipeline file.
package spec

import "gopkg.in/yaml.v3"

// Nullable is a string option that distinguishes absent, explicit null, and
// a value. yaml.v3 only invokes the unmarshaler when the key is present.
type Nullable struct {
	Set   bool
	Null  bool
	Value string
}

func (n *Nullable) UnmarshalYAML(node *yaml.Node) error {
	n.Set = true
	if node.Tag == "!!null" {
		n.Null = true
		return nil
	}
	return node.Decode(&n.Value)
}

// Patterns accepts a single glob string or a list of them.
type Patterns []string

func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*p = list
		return nil
	}
	var one string
	if err := node.Decode(&one); err != nil {
		return err
	}
	*p = Patterns{one}
	return nil
}

type WatchModeSpec struct {
	IncludeSourceDirectories bool `yaml:"include_source_directories"`
	SkipInitialRun           bool `yaml:"skip_initial_run"`
	AlwaysRun                bool `yaml:"always_run"`
	ChangedFilesOnly         bool `yaml:"changed_files_only"`
}

type TaskSpec struct {
	Name        string        `yaml:"name"`
	Uses        string        `yaml:"uses"` // registered transform driver
	Source      Patterns      `yaml:"source"`
	Destination Nullable      `yaml:"destination"` // explicit null suppresses writing
	WatchMode   WatchModeSpec `yaml:"watch_mode"`

	// Deprecated scalar spellings kept for older pipeline files. When set
	// they shadow their watch_mode counterparts.
	WatchSourceDirectories *bool `yaml:"watch_source_directories"`
	Always                 *bool `yaml:"always"`
}

type File struct {
	SchemaVersion string   `yaml:"schema_version"`
	Task          TaskSpec `yaml:"task"`
}
