// Package config loads quartal settings from built-in defaults, an optional
// quartal.yaml, QUARTAL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jsphweid/quartal/constants"
)

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Output   string         `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DefaultsConfig holds the chord used when a command is given no arguments.
type DefaultsConfig struct {
	Root string `mapstructure:"root"`
	Size int    `mapstructure:"size"`
	Unit string `mapstructure:"unit"`
	Mode string `mapstructure:"mode"`
}

// NewViper returns a viper instance with defaults and environment lookup
// configured. Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// flat aliases so QUARTAL_ADDR works as well as QUARTAL_SERVER_ADDR
	v.BindEnv("server.addr", constants.EnvPrefix+"_SERVER_ADDR", constants.EnvPrefix+"_ADDR")
	return v
}

// Load reads the config file, if any, and unmarshals v.
func Load(v *viper.Viper) (*Config, error) {
	if path := constants.GetConfigPath(); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(constants.AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := userConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return unmarshal(v)
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		panic("default config does not validate: " + err.Error())
	}
	return cfg
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", constants.DefaultLogLevel)
	v.SetDefault("log.format", constants.DefaultLogFormat)

	v.SetDefault("server.addr", constants.DefaultAddr)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("defaults.root", constants.DefaultRoot)
	v.SetDefault("defaults.size", constants.DefaultSize)
	v.SetDefault("defaults.unit", constants.DefaultUnit)
	v.SetDefault("defaults.mode", constants.DefaultMode)

	v.SetDefault("output", constants.DefaultOutput)
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", constants.AppName)
}
