package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Port     int
	DBPath   string
	Timezone string
}

// Load reads configuration from SELENE_-prefixed environment variables with
// sensible self-hosting defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SELENE")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("db_path", filepath.Join("data", "selene.db"))
	v.SetDefault("timezone", "UTC")

	cfg := Config{
		Port:     v.GetInt("port"),
		DBPath:   v.GetString("db_path"),
		Timezone: v.GetString("timezone"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("db path must not be empty")
	}
	return cfg, nil
}
