package tetris_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	classic, err := tetris.Preset("classic")
	require.NoError(t, err)
	assert.Equal(t, tetris.ClassicConfig(), classic)
	assert.Equal(t, 10, classic.LinesPerLevel)

	arcade, err := tetris.Preset(" Arcade ")
	require.NoError(t, err)
	assert.Equal(t, tetris.ArcadeConfig(), arcade)
	assert.Equal(t, 5, arcade.LinesPerLevel)

	def, err := tetris.Preset("")
	require.NoError(t, err)
	assert.Equal(t, tetris.DefaultConfig(), def)

	_, err = tetris.Preset("marathon")
	assert.Error(t, err)

	assert.NoError(t, tetris.ClassicConfig().Validate())
	assert.NoError(t, tetris.ArcadeConfig().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tetris.Config)
	}{
		{"zero lines per level", func(c *tetris.Config) { c.LinesPerLevel = 0 }},
		{"zero base interval", func(c *tetris.Config) { c.BaseFallInterval = 0 }},
		{"negative step", func(c *tetris.Config) { c.SpeedStep = -time.Millisecond }},
		{"zero floor", func(c *tetris.Config) { c.MinFallInterval = 0 }},
		{"floor above base", func(c *tetris.Config) { c.MinFallInterval = time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tetris.ErrInvalidConfig)

			_, err := tetris.NewGame(cfg)
			assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
		})
	}
}

func TestLevelAndSpeedCurve(t *testing.T) {
	cfg := tetris.ClassicConfig()

	assert.Equal(t, 1, cfg.LevelFor(0))
	assert.Equal(t, 1, cfg.LevelFor(9))
	assert.Equal(t, 2, cfg.LevelFor(10))
	assert.Equal(t, 4, cfg.LevelFor(35))

	assert.Equal(t, 300*time.Millisecond, cfg.FallInterval(1))
	assert.Equal(t, 275*time.Millisecond, cfg.FallInterval(2))
	assert.Equal(t, 100*time.Millisecond, cfg.FallInterval(9))
	assert.Equal(t, 80*time.Millisecond, cfg.FallInterval(10))
	assert.Equal(t, 80*time.Millisecond, cfg.FallInterval(100))
}

func TestParseConfigOverlaysBase(t *testing.T) {
	data := []byte("lines_per_level: 7\nbase_fall_interval: 400ms\nseed: 12\n")

	cfg, err := tetris.ParseConfig(tetris.ArcadeConfig(), data)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.LinesPerLevel)
	assert.Equal(t, 400*time.Millisecond, cfg.BaseFallInterval)
	assert.Equal(t, uint64(12), cfg.Seed)
	assert.Equal(t, tetris.ArcadeConfig().SpeedStep, cfg.SpeedStep)
	assert.Equal(t, tetris.ArcadeConfig().MinFallInterval, cfg.MinFallInterval)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := tetris.ParseConfig(tetris.DefaultConfig(), []byte("lines_per_level: [1, 2"))
	assert.Error(t, err)

	_, err = tetris.ParseConfig(tetris.DefaultConfig(), []byte("min_fall_interval: 2s\n"))
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed_step: 10ms\n"), 0o644))

	cfg, err := tetris.LoadConfigFile(tetris.ClassicConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.SpeedStep)
	assert.Equal(t, 10, cfg.LinesPerLevel)

	_, err = tetris.LoadConfigFile(tetris.ClassicConfig(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProgressionRecord(t *testing.T) {
	cfg := tetris.ClassicConfig()
	p := tetris.NewProgression(cfg)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, cfg.BaseFallInterval, p.FallInterval)

	p.Record(3, cfg)
	assert.Equal(t, 900, p.Score)
	assert.Equal(t, 3, p.Lines)

	before := p
	p.Record(0, cfg)
	assert.Equal(t, before, p)

	p.Record(4, cfg)
	p.Record(4, cfg)
	assert.Equal(t, 900+1600+1600, p.Score)
	assert.Equal(t, 11, p.Lines)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, cfg.FallInterval(2), p.FallInterval)
}
