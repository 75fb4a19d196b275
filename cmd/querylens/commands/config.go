package commands

import (
	"fmt"

	"github.com/sant0-9/querylens/internal/config"
)

// LoadConfig reads config.yaml, falling back to defaults when it does not
// exist, and applies the environment overlay.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
