package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/WillyV3/taskview/internal/config"
)

// loadConfig reads the config file if there is one. A missing default file is
// fine; a missing explicit --config is not.
func loadConfig(explicit bool) (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return config.Decode(viper.GetViper())
}
