package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/debug"
	"github.com/deltapad/textcore/format"
	"github.com/deltapad/textcore/query"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// EnvVar names a config file used when none is given explicitly.
const EnvVar = "DELTAPAD_CONFIG"

var ErrConfig = errors.New("config error")

type Config struct {
	Query    QueryConfig    `json:"query"`
	Classify ClassifyConfig `json:"classify"`
	Diff     DiffConfig     `json:"diff"`
	Output   OutputConfig   `json:"output"`
}

type QueryConfig struct {
	Max int `json:"max"`
}

type ClassifyConfig struct {
	SampleLimit   int          `json:"sampleLimit"`
	MinConfidence float32      `json:"minConfidence"`
	Fallback      classify.Tag `json:"fallback"`
}

type DiffConfig struct {
	Lines    bool `json:"lines"`
	Semantic bool `json:"semantic"`
}

type OutputConfig struct {
	Format format.Format `json:"format"`
	// Color is auto, always or never.
	Color string `json:"color"`
}

func Default() *Config {
	return &Config{
		Query: QueryConfig{Max: query.DefaultMax},
		Classify: ClassifyConfig{
			SampleLimit:   classify.DefaultSampleLimit,
			MinConfidence: classify.DefaultMinConfidence,
			Fallback:      classify.Plaintext,
		},
		Output: OutputConfig{Format: format.TextFormat, Color: "auto"},
	}
}

// Load applies the YAML document d to the defaults. Empty input yields the
// defaults.
func Load(d []byte) (*Config, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return Default(), nil
	}
	patch, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	base, err := json.Marshal(Default())
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(base, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: could not merge: %w", ErrConfig, err)
	}
	if debug.Config() {
		debug.Logf("config merged: %s", merged)
	}
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads the config at path. An empty path falls back to $EnvVar,
// and to the defaults when that is unset too.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	cfg, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Query.Max <= 0 {
		return fmt.Errorf("%w: query.max must be positive, got %d", ErrConfig, c.Query.Max)
	}
	if c.Classify.SampleLimit <= 0 {
		return fmt.Errorf("%w: classify.sampleLimit must be positive, got %d", ErrConfig, c.Classify.SampleLimit)
	}
	if c.Classify.MinConfidence < 0 || c.Classify.MinConfidence > 1 {
		return fmt.Errorf("%w: classify.minConfidence must be in [0, 1], got %v", ErrConfig, c.Classify.MinConfidence)
	}
	if c.Classify.Fallback != "" {
		t, ok := classify.ParseTag(string(c.Classify.Fallback))
		if !ok {
			return fmt.Errorf("%w: classify.fallback: unknown language %q", ErrConfig, c.Classify.Fallback)
		}
		c.Classify.Fallback = t
	}
	switch c.Output.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color must be auto, always or never, got %q", ErrConfig, c.Output.Color)
	}
	return nil
}

// Classifier returns a classifier with the configured settings.
func (c *Config) Classifier() *classify.Classifier {
	return &classify.Classifier{
		SampleLimit:   c.Classify.SampleLimit,
		MinConfidence: c.Classify.MinConfidence,
	}
}

func (c *Config) QueryOptions() []query.QueryOption {
	return []query.QueryOption{query.Max(c.Query.Max)}
}
