package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"showStats": true,
		"shadows": false,
		"window": { "title": "Koi", "width": 1280, "height": 720 },
		"feeder": { "pelletsPerTick": 3, "maxPellets": 500 },
		"camera": { "orbitRadius": 20 }
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ShowStats)
	assert.False(t, cfg.Shadows)
	assert.Equal(t, "Koi", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, 3, cfg.Feeder.PelletsPerTick)
	assert.Equal(t, 500, cfg.Feeder.MaxPellets)
	assert.Equal(t, 0.003, cfg.Feeder.Gravity)
	assert.Equal(t, 20.0, cfg.Camera.OrbitRadius)
	assert.Equal(t, 0.0003, cfg.Camera.OrbitRate)
	assert.Equal(t, filepath.Join(dir, FileName), ConfigFileUsed())
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.ShowStats)
	assert.True(t, cfg.Shadows)
	assert.Equal(t, "./screenshots", cfg.ScreenshotDir)
	assert.Equal(t, "", cfg.ScriptPath)
	assert.Equal(t, "Pond Feeder", cfg.Window.Title)
	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, 540, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, 2, cfg.Feeder.PelletsPerTick)
	assert.Equal(t, 0, cfg.Feeder.MaxPellets)
	assert.Equal(t, 0.003, cfg.Feeder.Gravity)
	assert.Equal(t, 0.5, cfg.Feeder.GroundY)
	assert.Equal(t, 0.05, cfg.Feeder.Jitter)
	assert.Equal(t, 15.0, cfg.Camera.OrbitRadius)
	assert.Equal(t, 0.0003, cfg.Camera.OrbitRate)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, "", ConfigFileUsed())
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load(writeConfig(t, `{"logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load(writeConfig(t, `{"window": {"width": 0}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid window size")
}

func TestValidate(t *testing.T) {
	valid := Config{Window: WindowConfig{Width: 1, Height: 1}, Feeder: FeederConfig{Gravity: 0.003}}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(*Config)
		want string
	}{
		{"negative height", func(c *Config) { c.Window.Height = -1 }, "invalid window size"},
		{"negative per tick", func(c *Config) { c.Feeder.PelletsPerTick = -1 }, "pelletsPerTick"},
		{"negative max", func(c *Config) { c.Feeder.MaxPellets = -5 }, "maxPellets"},
		{"zero gravity unbounded", func(c *Config) { c.Feeder.Gravity = 0 }, "feeder.gravity"},
		{"upward gravity unbounded", func(c *Config) { c.Feeder.Gravity = -0.01 }, "feeder.gravity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.edit(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	capped := valid
	capped.Feeder.Gravity = 0
	capped.Feeder.MaxPellets = 100
	assert.NoError(t, capped.Validate(), "zero gravity is fine with a pellet cap")
}
