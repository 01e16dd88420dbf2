package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	StorePath      string `mapstructure:"store_path"`
	DBPath         string `mapstructure:"db_path"`
	CommandTimeout int    `mapstructure:"command_timeout"`
	ConnectTimeout int    `mapstructure:"connect_timeout"`
	HistoryLimit   int    `mapstructure:"history_limit"`
}

var Default = Config{
	CommandTimeout: 120,
	ConnectTimeout: 10,
	HistoryLimit:   20,
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	configDir := filepath.Join(home, ".projectsync")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetDefault("store_path", filepath.Join(configDir, "projects.json"))
	viper.SetDefault("db_path", filepath.Join(configDir, "history.db"))
	viper.SetDefault("command_timeout", Default.CommandTimeout)
	viper.SetDefault("connect_timeout", Default.ConnectTimeout)
	viper.SetDefault("history_limit", Default.HistoryLimit)

	viper.SetEnvPrefix("PROJECTSYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
