// Package config holds the run configuration loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ringarchive/matchbook/pkg/matchbook/internalerr"
	"github.com/ringarchive/matchbook/pkg/matchbook/parse"
	"github.com/ringarchive/matchbook/pkg/matchbook/years"
)

// Config is the full run configuration.
type Config struct {
	Source SourceConfig       `yaml:"source"`
	Output OutputConfig       `yaml:"output"`
	LLM    LLMConfig          `yaml:"llm"`
	Filter parse.FilterConfig `yaml:"filter"`
	Years  years.Config       `yaml:"years"`
	RunLog RunLogConfig       `yaml:"runlog"`
}

// SourceConfig selects where input files come from. Dir and IndexURL
// are mutually exclusive; exactly one must be set.
type SourceConfig struct {
	Dir      string `yaml:"dir"`
	Pattern  string `yaml:"pattern"`
	IndexURL string `yaml:"index_url"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LLMConfig configures the external formatter. An empty APIKey
// disables the AI path and every event takes the fallback.
type LLMConfig struct {
	Endpoint        string  `yaml:"endpoint"`
	APIKey          string  `yaml:"api_key"`
	Model           string  `yaml:"model"`
	Temperature     float64 `yaml:"temperature"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

type RunLogConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// Default returns the configuration used when no file is given: local
// ./results in, ./out out, AI formatter disabled.
func Default() Config {
	return Config{
		Source: SourceConfig{Dir: "results", Pattern: "**/*.md"},
		Output: OutputConfig{Dir: "out"},
		LLM: LLMConfig{
			Model:           "gemini-2.0-flash",
			Temperature:     0.1,
			MaxOutputTokens: 8192,
		},
		Filter: parse.DefaultFilterConfig(),
		Years:  years.DefaultConfig(),
	}
}

// Load reads path and overlays it on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot start a run.
func (c Config) Validate() error {
	if c.Source.Dir == "" && c.Source.IndexURL == "" {
		return fmt.Errorf("%w: source needs dir or index_url", internalerr.ErrInvalidConfig)
	}
	if c.Source.Dir != "" && c.Source.IndexURL != "" {
		return fmt.Errorf("%w: source dir and index_url are mutually exclusive", internalerr.ErrInvalidConfig)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output dir is required", internalerr.ErrInvalidConfig)
	}
	if c.LLM.APIKey != "" && c.LLM.Model == "" {
		return fmt.Errorf("%w: llm model is required when api_key is set", internalerr.ErrInvalidConfig)
	}
	if c.Filter.ShortLine <= 0 || c.Filter.MidLine <= c.Filter.ShortLine || c.Filter.LongLine <= c.Filter.MidLine {
		return fmt.Errorf("%w: filter thresholds must increase short < mid < long", internalerr.ErrInvalidConfig)
	}
	if c.Years.Min > c.Years.Max {
		return fmt.Errorf("%w: years min exceeds max", internalerr.ErrInvalidConfig)
	}
	return nil
}
