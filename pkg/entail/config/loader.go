package config

import "fmt"

// Loader resolves the configuration from an optional file
type Loader struct {
	Path string
}

// Load returns defaults when Path is empty, otherwise the file merged
// over the defaults. The result is validated either way.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()
	if l.Path != "" {
		loaded, err := Load(l.Path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
