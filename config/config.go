package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "pondfeeder.cfg.json"

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string `json:"title" mapstructure:"title"`
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	TPS    int    `json:"tps" mapstructure:"tps"`
}

// FeederConfig holds pellet simulation settings.
type FeederConfig struct {
	PelletsPerTick int     `json:"pelletsPerTick" mapstructure:"pelletsPerTick"`
	MaxPellets     int     `json:"maxPellets" mapstructure:"maxPellets"`
	Gravity        float64 `json:"gravity" mapstructure:"gravity"`
	GroundY        float64 `json:"groundY" mapstructure:"groundY"`
	Jitter         float64 `json:"jitter" mapstructure:"jitter"`
}

// CameraConfig holds orbit settings.
type CameraConfig struct {
	OrbitRadius float64 `json:"orbitRadius" mapstructure:"orbitRadius"`
	OrbitRate   float64 `json:"orbitRate" mapstructure:"orbitRate"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel      string       `json:"logLevel" mapstructure:"logLevel"`
	Debug         bool         `json:"debug" mapstructure:"debug"`
	ShowStats     bool         `json:"showStats" mapstructure:"showStats"`
	Shadows       bool         `json:"shadows" mapstructure:"shadows"`
	ScreenshotDir string       `json:"screenshotDir" mapstructure:"screenshotDir"`
	ScriptPath    string       `json:"scriptPath" mapstructure:"scriptPath"`
	Window        WindowConfig `json:"window" mapstructure:"window"`
	Feeder        FeederConfig `json:"feeder" mapstructure:"feeder"`
	Camera        CameraConfig `json:"camera" mapstructure:"camera"`
}

// setDefaults registers the default value of every key.
func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("showStats", false)
	viper.SetDefault("shadows", true)
	viper.SetDefault("screenshotDir", "./screenshots")
	viper.SetDefault("scriptPath", "")

	viper.SetDefault("window.title", "Pond Feeder")
	viper.SetDefault("window.width", 960)
	viper.SetDefault("window.height", 540)
	viper.SetDefault("window.tps", 60)

	viper.SetDefault("feeder.pelletsPerTick", 2)
	viper.SetDefault("feeder.maxPellets", 0)
	viper.SetDefault("feeder.gravity", 0.003)
	viper.SetDefault("feeder.groundY", 0.5)
	viper.SetDefault("feeder.jitter", 0.05)

	viper.SetDefault("camera.orbitRadius", 15.0)
	viper.SetDefault("camera.orbitRate", 0.0003)
}

// Load reads configuration from the JSON file in configDir on top of the
// defaults. A missing file is not an error; a malformed one is.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the animation cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Feeder.PelletsPerTick < 0 {
		return fmt.Errorf("invalid feeder.pelletsPerTick %d", c.Feeder.PelletsPerTick)
	}
	if c.Feeder.MaxPellets < 0 {
		return fmt.Errorf("invalid feeder.maxPellets %d", c.Feeder.MaxPellets)
	}
	// Without gravity pellets never reach groundY, so the live set needs a cap.
	if c.Feeder.Gravity <= 0 && c.Feeder.MaxPellets == 0 {
		return fmt.Errorf("invalid feeder.gravity %g with unbounded maxPellets", c.Feeder.Gravity)
	}
	return nil
}

// ConfigFileUsed returns the path of the file Load read, or "" if defaults
// were used.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
