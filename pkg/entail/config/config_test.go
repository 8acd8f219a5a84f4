package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/entail/pkg/entail/colormap"
	"github.com/cognicore/entail/pkg/entail/internalerr"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "entail.yaml")

	content := `api:
  base_url: http://localhost:8000
  api_key: k
  timeout: 5s
colormap:
  name: RdBu
  format: rgbaString
  nshades: 40
topk:
  premise: 4
  hypothesis: 2
interpreter: integrated_gradient
db: /tmp/entail.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8000" || cfg.API.APIKey != "k" {
		t.Errorf("api = %+v", cfg.API)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Colormap.Name != "RdBu" || cfg.Colormap.Format != colormap.FormatRGBAString || cfg.Colormap.Shades != 40 {
		t.Errorf("colormap = %+v", cfg.Colormap)
	}
	if cfg.TopK.Premise != 4 || cfg.TopK.Hypothesis != 2 {
		t.Errorf("topk = %+v", cfg.TopK)
	}
	if cfg.Interpreter != "integrated_gradient" || cfg.DB != "/tmp/entail.db" {
		t.Errorf("interpreter/db = %q %q", cfg.Interpreter, cfg.DB)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	os.WriteFile(path, []byte("api:\n  base_url: http://models\n"), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Colormap != colormap.DefaultConfig() {
		t.Errorf("colormap defaults lost: %+v", cfg.Colormap)
	}
	if cfg.TopK.Premise != 3 || cfg.TopK.Hypothesis != 3 {
		t.Errorf("topk defaults lost: %+v", cfg.TopK)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("timeout default lost: %v", cfg.API.Timeout)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("Should error on non-existent file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("colormap: [unclosed\n"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("Should error on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown palette", func(c *Config) { c.Colormap.Name = "sepia" }},
		{"unknown format", func(c *Config) { c.Colormap.Format = "hsl" }},
		{"unknown interpreter", func(c *Config) { c.Interpreter = "attention_rollout" }},
		{"negative topk", func(c *Config) { c.TopK.Premise = -1 }},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
