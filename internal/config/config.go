package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix marks environment variables read by Load, e.g. CLIMATE_DATA_PATH.
const EnvPrefix = "CLIMATE_"

type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ReportConfig struct {
	// Limit caps rows printed per listing; 0 prints everything.
	Limit int `mapstructure:"limit"`
}

// Load builds the configuration from defaults, an optional config file
// (yaml, toml, json, ...) and CLIMATE_* environment variables, in that order.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data.path", "data.csv")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.format", "text")
	v.SetDefault("report.limit", 50)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// CLIMATE_REPORT_LIMIT -> report.limit
	for _, envStr := range os.Environ() {
		key, value, ok := strings.Cut(envStr, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		propKey := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		propKey = strings.Replace(propKey, "_", ".", 1)
		v.Set(propKey, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
