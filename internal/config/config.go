package config

import (
	"strings"

	"header-shim-go/shim"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Client Client `mapstructure:"client"`
	Logger Logger `mapstructure:"logger"`
}

// Client holds the configuration for the outbound HTTP client.
type Client struct {
	UserAgent      string  `mapstructure:"user_agent"`
	HeaderName     string  `mapstructure:"header_name"`
	Override       bool    `mapstructure:"override"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("client.user_agent", shim.DefaultUserAgent)
	viper.SetDefault("client.header_name", shim.HeaderUserAgent)
	viper.SetDefault("client.override", false)
	viper.SetDefault("client.timeout_seconds", 10)
	viper.SetDefault("client.rate_limit", 2) // requests per second
	viper.SetDefault("client.rate_limit_burst", 1)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
