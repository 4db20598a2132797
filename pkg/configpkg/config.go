// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"

	"github.com/spf13/viper"
)

// Environment names recognized by the app.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	ServerAddress      string   `mapstructure:"SERVER_ADDRESS"`
	Environement       string   `mapstructure:"GO_ENV"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Load read configuration from file or environment variables.
//
// The app.env file in path is optional. Environment variables override it.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// Defaults also register the keys, so AutomaticEnv values reach Unmarshal.
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("GO_ENV", EnvProduction)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://127.0.0.1:8000", "http://localhost:8000"})

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
