package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "BREATHE"
	configName     = "breathe"
	DefaultTrack   = "music.mp3"
	defaultLoopEnd = 300 * time.Second
	defaultFade    = 2 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	Track     string        `mapstructure:"track"`
	LoopEnd   time.Duration `mapstructure:"loop_end"`
	Fade      time.Duration `mapstructure:"fade"`
	AutoReset bool          `mapstructure:"auto_reset"`
	Window    WindowConfig  `mapstructure:"window"`
	Log       LogConfig     `mapstructure:"log"`
}

// WindowConfig is the initial window size.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// LogConfig selects the log level and destination. An empty File means stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Track:   DefaultTrack,
		LoopEnd: defaultLoopEnd,
		Fade:    defaultFade,
		Window:  WindowConfig{Width: WindowWidth, Height: WindowHeight},
		Log:     LogConfig{Level: "info"},
	}
}

// NewViper returns a viper instance with defaults, BREATHE_* environment
// overrides and, when present, the config file. An explicit path must exist;
// the implicit ./breathe.yaml is optional.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("track", d.Track)
	v.SetDefault("loop_end", d.LoopEnd)
	v.SetDefault("fade", d.Fade)
	v.SetDefault("auto_reset", d.AutoReset)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the player cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Track) == "" {
		return errors.New("track must not be empty")
	}
	if c.LoopEnd <= 0 {
		return fmt.Errorf("loop_end must be positive, got %s", c.LoopEnd)
	}
	if c.Fade <= 0 {
		return fmt.Errorf("fade must be positive, got %s", c.Fade)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

type fileConfig struct {
	Track     string     `yaml:"track"`
	LoopEnd   string     `yaml:"loop_end"`
	Fade      string     `yaml:"fade"`
	AutoReset bool       `yaml:"auto_reset"`
	Window    fileWindow `yaml:"window"`
	Log       fileLog    `yaml:"log"`
}

type fileWindow struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type fileLog struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// WriteDefault writes the built-in configuration as YAML to path. It refuses
// to overwrite an existing file.
func WriteDefault(path string) error {
	d := Defaults()
	data, err := yaml.Marshal(fileConfig{
		Track:     d.Track,
		LoopEnd:   d.LoopEnd.String(),
		Fade:      d.Fade.String(),
		AutoReset: d.AutoReset,
		Window:    fileWindow{Width: d.Window.Width, Height: d.Window.Height},
		Log:       fileLog{Level: d.Log.Level, File: d.Log.File},
	})
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file already exists: %s", path)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	return f.Close()
}
