package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task-intelligence engine specifics
	Engine EngineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EngineConfig tunes the analysis engine.
type EngineConfig struct {
	// IANA timezone for Vietnamese date parsing.
	Timezone string

	Cache  CacheConfig
	Limits LimitsConfig
}

// CacheConfig tunes the analysis-result cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// LimitsConfig tunes request throttling on the analysis API.
type LimitsConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Engine
	cfg.Engine.Timezone = viper.GetString("engine.timezone")
	cfg.Engine.Cache.Size = viper.GetInt("engine.cache.size")
	cfg.Engine.Cache.TTL = viper.GetDuration("engine.cache.ttl")
	cfg.Engine.Limits.RateLimitPerMin = viper.GetInt("engine.limits.rate_limit_per_min")

	if _, err := time.LoadLocation(cfg.Engine.Timezone); err != nil {
		return nil, fmt.Errorf("invalid engine.timezone %q: %w", cfg.Engine.Timezone, err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("engine.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("engine.cache.size", 1000)
	viper.SetDefault("engine.cache.ttl", "5m")
	viper.SetDefault("engine.limits.rate_limit_per_min", 120)
}
