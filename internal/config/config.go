// Package config loads process configuration with viper: environment
// variables prefixed CIRCUITSIM_, an optional config file, and a set of
// defaults sane enough to run the server demo with no setup at all.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config wraps a viper instance with this service's defaults and env
// binding already applied.
type Config struct {
	*viper.Viper
}

// Options controls where Load looks for an optional config file. Both
// fields may be left zero: Load still succeeds, backed by defaults and
// environment variables alone.
type Options struct {
	ConfigName string // base name, no extension, e.g. "circuitsim"
	ConfigPath string // directory to search, e.g. "."
}

// Load builds a Config from defaults, an optional config file, and
// environment variables (highest precedence), in that order.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)
	v.SetDefault("local_only", false)
	v.SetDefault("cors_allow_origin", "")

	v.SetEnvPrefix("circuitsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigName != "" {
		v.SetConfigName(opts.ConfigName)
		v.AddConfigPath(opts.ConfigPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return &Config{v}, nil
}
