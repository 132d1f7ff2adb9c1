// Package config loads server settings from the environment, an optional
// config file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "WORDTILES"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds server settings
type Config struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	StorageType string        `mapstructure:"storage_type"`
	RedisURL    string        `mapstructure:"redis_url"`
	GameTTL     time.Duration `mapstructure:"game_ttl"`
	LogLevel    string        `mapstructure:"log_level"`
	StaticDir   string        `mapstructure:"static_dir"`
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored and existing variables are never overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads settings. Environment variables (WORDTILES_PORT etc.) win over
// the config file, which wins over defaults. An empty configFile looks for
// an optional config.yaml in the working directory.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "")
	v.SetDefault("port", 8080)
	v.SetDefault("storage_type", StorageMemory)
	v.SetDefault("redis_url", "")
	v.SetDefault("game_ttl", 24*time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("static_dir", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings for consistency
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.StorageType {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url required when storage_type is redis")
		}
	default:
		return fmt.Errorf("invalid storage_type %q: must be %q or %q", c.StorageType, StorageMemory, StorageRedis)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
