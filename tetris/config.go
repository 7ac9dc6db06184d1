package tetris

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable parts of the progression curve.
type Config struct {
	// LinesPerLevel is how many cleared lines raise the level by one.
	LinesPerLevel int `yaml:"lines_per_level"`
	// BaseFallInterval is the gravity interval at level 1.
	BaseFallInterval time.Duration `yaml:"base_fall_interval"`
	// SpeedStep is subtracted from the interval for every level above 1.
	SpeedStep time.Duration `yaml:"speed_step"`
	// MinFallInterval is the floor the interval never drops below.
	MinFallInterval time.Duration `yaml:"min_fall_interval"`
	// Seed fixes the piece sequence. Zero seeds from a random source.
	Seed uint64 `yaml:"seed"`
}

// ClassicConfig levels up every 10 lines, starting at 300ms per row and
// speeding up by 25ms per level down to 80ms.
func ClassicConfig() Config {
	return Config{
		LinesPerLevel:    10,
		BaseFallInterval: 300 * time.Millisecond,
		SpeedStep:        25 * time.Millisecond,
		MinFallInterval:  80 * time.Millisecond,
	}
}

// ArcadeConfig levels up every 5 lines, starting at 500ms per row and
// speeding up by 50ms per level down to 50ms.
func ArcadeConfig() Config {
	return Config{
		LinesPerLevel:    5,
		BaseFallInterval: 500 * time.Millisecond,
		SpeedStep:        50 * time.Millisecond,
		MinFallInterval:  50 * time.Millisecond,
	}
}

// DefaultConfig returns the classic preset.
func DefaultConfig() Config {
	return ClassicConfig()
}

// Preset resolves a preset by name. The empty name selects the default.
func Preset(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return ClassicConfig(), nil
	case "arcade":
		return ArcadeConfig(), nil
	default:
		return Config{}, fmt.Errorf("unknown preset %q", name)
	}
}

// Validate checks that the curve is well formed.
func (c Config) Validate() error {
	switch {
	case c.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines_per_level must be positive, got %d", ErrInvalidConfig, c.LinesPerLevel)
	case c.BaseFallInterval <= 0:
		return fmt.Errorf("%w: base_fall_interval must be positive, got %s", ErrInvalidConfig, c.BaseFallInterval)
	case c.SpeedStep < 0:
		return fmt.Errorf("%w: speed_step must not be negative, got %s", ErrInvalidConfig, c.SpeedStep)
	case c.MinFallInterval <= 0:
		return fmt.Errorf("%w: min_fall_interval must be positive, got %s", ErrInvalidConfig, c.MinFallInterval)
	case c.MinFallInterval > c.BaseFallInterval:
		return fmt.Errorf("%w: min_fall_interval %s exceeds base_fall_interval %s", ErrInvalidConfig, c.MinFallInterval, c.BaseFallInterval)
	}
	return nil
}

// LevelFor returns the level reached after clearing lines rows.
func (c Config) LevelFor(lines int) int {
	return 1 + lines/c.LinesPerLevel
}

// FallInterval returns the gravity interval at level, clamped to the floor.
func (c Config) FallInterval(level int) time.Duration {
	interval := c.BaseFallInterval - time.Duration(level-1)*c.SpeedStep
	if interval < c.MinFallInterval {
		interval = c.MinFallInterval
	}
	return interval
}

// ParseConfig decodes YAML over base. Fields missing from data keep the
// values of base.
func ParseConfig(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file and parses it over base.
func LoadConfigFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(base, data)
}
