// Package config loads and validates the needledrop.yml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/needledrop/needledrop/internal/yearspec"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "needledrop.yml"

// Config represents the top-level needledrop.yml configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Datasets DatasetsConfig `yaml:"datasets"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
}

// DatasetsConfig holds the paths of the four input CSV files.
type DatasetsConfig struct {
	Awards    string `yaml:"awards"`
	Streaming string `yaml:"streaming"`
	Lifetime  string `yaml:"lifetime"`
	Producers string `yaml:"producers"`
}

// AnalysisConfig controls how the datasets are joined and ranked.
type AnalysisConfig struct {
	JoinPolicy string `yaml:"join_policy"` // "left" (default) or "inner"
	TopN       int    `yaml:"top_n"`       // length of ranked lists, default 10
	Years      string `yaml:"years"`       // ceremony year range like "2019-2024", empty = all
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // chart and summary directory, default "visuals"
	Charts *bool  `yaml:"charts"` // render PNG charts, default true
	HTML   *bool  `yaml:"html"`   // render interactive HTML charts, default true
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no needledrop.yml exists:
// the four conventional dataset paths under dataDir and charts into
// "visuals".
func Default(dataDir string) *Config {
	cfg := &Config{
		Version: "1.0",
		Datasets: DatasetsConfig{
			Awards:    filepath.Join(dataDir, "grammy_awards.csv"),
			Streaming: filepath.Join(dataDir, "spotify_streaming_data.csv"),
			Lifetime:  filepath.Join(dataDir, "artist_lifetime_awards.csv"),
			Producers: filepath.Join(dataDir, "producers.csv"),
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Validate performs strict validation on the configuration. Dataset paths
// must be configured but are not required to exist here - a missing file
// surfaces as the loader's not-found error at run time.
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: all four dataset paths
	datasets := map[string]string{
		"awards":    c.Datasets.Awards,
		"streaming": c.Datasets.Streaming,
		"lifetime":  c.Datasets.Lifetime,
		"producers": c.Datasets.Producers,
	}
	for name, path := range datasets {
		if path == "" {
			return fmt.Errorf("datasets.%s path is required", name)
		}
	}

	// Validate join policy enum if provided
	if p := c.Analysis.JoinPolicy; p != "" && p != "left" && p != "inner" {
		return fmt.Errorf("invalid analysis.join_policy: %s (must be 'left' or 'inner')", p)
	}

	// top_n: 0 is indistinguishable from unset in YAML, so zero falls
	// through to the default; only negatives can be rejected.
	if c.Analysis.TopN < 0 {
		return fmt.Errorf("analysis.top_n must not be negative, got %d", c.Analysis.TopN)
	}

	if _, err := yearspec.ParseRange(c.Analysis.Years); err != nil {
		return fmt.Errorf("invalid analysis.years: %w", err)
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Analysis.JoinPolicy == "" {
		c.Analysis.JoinPolicy = "left"
	}
	if c.Analysis.TopN == 0 {
		c.Analysis.TopN = 10
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "visuals"
	}
	if c.Output.Charts == nil {
		enabled := true
		c.Output.Charts = &enabled
	}
	if c.Output.HTML == nil {
		enabled := true
		c.Output.HTML = &enabled
	}
}

// YearRange returns the parsed ceremony year range. Validate rejects
// malformed values, so a parse failure here collapses to the open range.
func (c *Config) YearRange() yearspec.Range {
	r, _ := yearspec.ParseRange(c.Analysis.Years)
	return r
}

// ChartsEnabled reports whether PNG chart rendering is on.
func (c *Config) ChartsEnabled() bool {
	return c.Output.Charts == nil || *c.Output.Charts
}

// HTMLEnabled reports whether HTML chart rendering is on.
func (c *Config) HTMLEnabled() bool {
	return c.Output.HTML == nil || *c.Output.HTML
}
