package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ringarchive/matchbook/pkg/matchbook/internalerr"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchbook.yaml")
	doc := `
source:
  index_url: https://results.test/archive/
  dir: ""
output:
  dir: /tmp/seasons
llm:
  api_key: test-key
years:
  manual:
    specialfile: 1999
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.IndexURL != "https://results.test/archive/" || cfg.Source.Dir != "" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("default model lost: %q", cfg.LLM.Model)
	}
	if cfg.Filter.ShortLine != 50 {
		t.Errorf("default filter lost: %+v", cfg.Filter)
	}
	if cfg.Years.Manual["specialfile"] != 1999 {
		t.Errorf("manual years = %+v", cfg.Years.Manual)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no source", func(c *Config) { c.Source.Dir = ""; c.Source.IndexURL = "" }},
		{"both sources", func(c *Config) { c.Source.IndexURL = "https://x.test/" }},
		{"no output", func(c *Config) { c.Output.Dir = "" }},
		{"key without model", func(c *Config) { c.LLM.APIKey = "k"; c.LLM.Model = "" }},
		{"inverted thresholds", func(c *Config) { c.Filter.MidLine = 10 }},
		{"inverted years", func(c *Config) { c.Years.Min = 2031 }},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", c.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}
