// Package config provides configuration management for oneliners.
// It handles loading configuration from environment variables and .env
// files. The store file location itself is not configurable: it is always
// derived from the user's home directory.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration settings.
type Config struct {
	StrictClipboard bool `mapstructure:"strict_clipboard"` // Report clipboard copy failures instead of silently ignoring them
}

// GetEnvVars loads configuration from environment variables and .env files.
// It first attempts to load from a .env file if present, then reads from
// environment variables. Returns a populated Config struct or exits on
// configuration errors.
func GetEnvVars() Config {
	if _, err := os.Stat(".env"); err == nil {
		// Initialize Viper from .env file
		viper.SetConfigFile(".env")

		// Read the .env file
		if err := viper.ReadInConfig(); err != nil {
			fmt.Printf("Error reading .env file: %s\n", err)
			os.Exit(1)
		}
	}

	// Enable reading environment variables
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("strict_clipboard", false)

	// Setup conf struct with items from environment variables
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		fmt.Printf("Error unmarshalling Viper conf: %s\n", err)
		os.Exit(1)
	}

	return conf
}
