package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/masmgr/commitgraph/internal/filter"
	"github.com/masmgr/commitgraph/internal/git"
)

// DefaultPath is the configuration file used when no path is given.
const DefaultPath = "config.json"

// Config is the configuration for one graph run.
type Config struct {
	GraphVisualizerPath string `json:"graph_visualizer_path" yaml:"graph_visualizer_path"` // PlantUML renderer, used by downstream tooling
	RepositoryPath      string `json:"repository_path" yaml:"repository_path"`
	OutputPath          string `json:"output_path" yaml:"output_path"`
	TargetFile          string `json:"target_file" yaml:"target_file"` // Relative to RepositoryPath; may be a glob
	Backend             string `json:"backend,omitempty" yaml:"backend,omitempty"` // "cli" (default) or "gogit"
	Workers             int    `json:"workers,omitempty" yaml:"workers,omitempty"` // Default: 1
}

// ErrInvalidConfig is matched by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Error describes a configuration problem.
type Error struct {
	Path  string // Configuration file, if known
	Field string // Offending key, if any
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("configuration")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidConfig.
func (e *Error) Is(target error) bool { return target == ErrInvalidConfig }

// DefaultConfig returns a configuration with default values for the optional fields.
func DefaultConfig() *Config {
	return &Config{
		Backend: string(git.BackendCLI),
		Workers: 1,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, merging with defaults.
// The file must exist. Required fields are checked by Validate.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	if isYAML(path) {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, &Error{Path: path, Err: fmt.Errorf("malformed YAML: %w", err)}
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("malformed JSON: %w", err)}
		}
	}

	return cfg, nil
}

// Validate checks that required fields are present and optional fields are usable.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"graph_visualizer_path", c.GraphVisualizerPath},
		{"repository_path", c.RepositoryPath},
		{"output_path", c.OutputPath},
		{"target_file", c.TargetFile},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &Error{Field: f.key, Err: errors.New("required field is missing")}
		}
	}

	if err := filter.ValidateTarget(c.TargetFile); err != nil {
		return &Error{Field: "target_file", Err: err}
	}
	if _, err := git.ParseBackend(c.Backend); err != nil {
		return &Error{Field: "backend", Err: err}
	}
	if c.Workers < 1 {
		return &Error{Field: "workers", Err: fmt.Errorf("must be at least 1, got %d", c.Workers)}
	}
	return nil
}

// SaveConfig saves configuration to a file. The format follows the file extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return os.WriteFile(path, data, 0644)
}

// Template returns an example configuration for `config init`.
func Template() *Config {
	cfg := DefaultConfig()
	cfg.GraphVisualizerPath = "/usr/share/plantuml/plantuml.jar"
	cfg.RepositoryPath = "."
	cfg.OutputPath = "output/graph.puml"
	cfg.TargetFile = "README.md"
	return cfg
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
