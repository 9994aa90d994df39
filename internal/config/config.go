// Package config provides configuration loading for taskview.
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/WillyV3/taskview/internal/task"
	"github.com/WillyV3/taskview/internal/theme"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the home directory.
const FileName = ".taskview.json"

// EnvPrefix prefixes environment overrides, e.g. TASKVIEW_THEME.
const EnvPrefix = "TASKVIEW"

// Config is the root configuration.
type Config struct {
	Theme     theme.Mode    `json:"theme"      mapstructure:"theme"`
	Filter    task.Filter   `json:"filter"     mapstructure:"filter"`
	Demo      bool          `json:"demo"       mapstructure:"demo"`
	AltScreen bool          `json:"alt_screen" mapstructure:"alt_screen"`
	// CharLimit caps the add-task field; 0 means unlimited.
	CharLimit int           `json:"char_limit" mapstructure:"char_limit"`
	StatusTTL time.Duration `json:"status_ttl" mapstructure:"status_ttl"`
	Log       LogConfig     `json:"log"        mapstructure:"log"`
}

// LogConfig controls the log sink. With no file, logging is off.
type LogConfig struct {
	File  string `json:"file,omitempty" mapstructure:"file"`
	Debug bool   `json:"debug"          mapstructure:"debug"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Theme:     theme.Dark,
		Filter:    task.FilterAll,
		AltScreen: true,
		StatusTTL: 3 * time.Second,
	}
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("theme", d.Theme.String())
	v.SetDefault("filter", d.Filter.String())
	v.SetDefault("demo", d.Demo)
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("char_limit", d.CharLimit)
	v.SetDefault("status_ttl", d.StatusTTL.String())
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		modeHook,
		filterHook,
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	modeType   = reflect.TypeOf(theme.Mode(""))
	filterType = reflect.TypeOf(task.Filter(""))
)

func modeHook(from, to reflect.Type, data any) (any, error) {
	if to != modeType || from.Kind() != reflect.String {
		return data, nil
	}
	return theme.ParseMode(reflect.ValueOf(data).String())
}

func filterHook(from, to reflect.Type, data any) (any, error) {
	if to != filterType || from.Kind() != reflect.String {
		return data, nil
	}
	return task.ParseFilter(reflect.ValueOf(data).String())
}
