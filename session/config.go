package session

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// LoadConfig resolves the configuration a front end was started with:
// the named preset, overlaid by the YAML file at path (if any), with seed
// taking precedence when non-zero.
func LoadConfig(preset, path string, seed uint64) (tetris.Config, error) {
	cfg, err := tetris.Preset(preset)
	if err != nil {
		return tetris.Config{}, err
	}

	if path != "" {
		cfg, err = tetris.LoadConfigFile(cfg, path)
		if err != nil {
			return tetris.Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if seed != 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return tetris.Config{}, err
	}
	return cfg, nil
}
