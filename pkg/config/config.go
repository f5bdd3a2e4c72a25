package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	AlertHarvest AlertHarvestConfig `mapstructure:"alertharvest"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port            string `mapstructure:"port"`
	AllowedOrigins  string `mapstructure:"allowedOrigins"`
	ShutdownTimeout int    `mapstructure:"shutdownTimeout"`
}

// AlertHarvestConfig holds the upstream AlertHarvest connection configuration.
// The base URL is read once at startup, never per call.
type AlertHarvestConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// LoadConfig loads the application configuration from file or environment variables
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	// Set default values
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.allowedOrigins", "*")
	viper.SetDefault("server.shutdownTimeout", 10)
	viper.SetDefault("alertharvest.url", "http://127.0.0.1:8000")
	viper.SetDefault("alertharvest.timeoutSeconds", 10)

	// Allow environment variables to override config file
	viper.SetEnvPrefix("AH_GATEWAY")
	viper.AutomaticEnv()

	// ALERTHARVEST_URL is the variable the upstream service has always
	// documented, so honor it alongside the prefixed form.
	viper.BindEnv("alertharvest.url", "AH_GATEWAY_ALERTHARVEST_URL", "ALERTHARVEST_URL")
	viper.BindEnv("alertharvest.timeoutSeconds", "AH_GATEWAY_ALERTHARVEST_TIMEOUT_SECONDS")

	// If config file is provided, read it
	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			logrus.Warnf("Error reading config file: %v", err)
		}
	}

	// Unmarshal config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
