package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/entail/pkg/entail/colormap"
	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/interpret"
)

// Config is the entail tool configuration
type Config struct {
	API         API             `yaml:"api"`
	Colormap    colormap.Config `yaml:"colormap"`
	TopK        TopK            `yaml:"topk"`
	Interpreter string          `yaml:"interpreter"`
	DB          string          `yaml:"db"`
}

// API locates the model server
type API struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// TopK holds the initial number of highlighted tokens per sentence
type TopK struct {
	Premise    int `yaml:"premise"`
	Hypothesis int `yaml:"hypothesis"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		API:         API{Timeout: 30 * time.Second},
		Colormap:    colormap.DefaultConfig(),
		TopK:        TopK{Premise: 3, Hypothesis: 3},
		Interpreter: string(interpret.SimpleGradient),
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail deep inside a run
func (c *Config) Validate() error {
	if err := c.Colormap.Validate(); err != nil {
		return err
	}
	if _, err := interpret.ParseKind(c.Interpreter); err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if c.TopK.Premise < 0 || c.TopK.Hypothesis < 0 {
		return fmt.Errorf("%w: topk must not be negative", internalerr.ErrInvalidConfig)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api timeout must not be negative", internalerr.ErrInvalidConfig)
	}
	return nil
}
