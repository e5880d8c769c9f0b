package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "shapecast"
	configFileType = "yaml"
	envPrefix      = "SHAPECAST"

	cfgKeyLogLevel   = "log_level"
	cfgKeyLang       = "lang"
	cfgKeyNumberMode = "number_mode"

	defaultLogLevel   = "info"
	defaultLang       = "en"
	defaultNumberMode = "float64"
)

// loadConfig reads shapecast.yaml into v. An explicit path must exist; when
// none is given the file is looked up in "." and $HOME/.config/shapecast,
// and a missing file is not an error. Environment variables prefixed with
// SHAPECAST_ override the file.
func loadConfig(v *viper.Viper, path string) error {
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLang, defaultLang)
	v.SetDefault(cfgKeyNumberMode, defaultNumberMode)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configFileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
