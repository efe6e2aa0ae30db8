// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from an optional file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Config holds application configuration.
type Config struct {
	Log    LogConfig
	Output OutputConfig
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	Level LogLevel
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Precision int
	Styled    bool
}

// Load reads configuration from file and env. Env var overrides use prefix MATCALC_.
// The file is $MATCALC_CONFIG when set, else $HOME/.config/matcalc/config.yaml;
// a missing file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", string(LogLevelWarn))
	v.SetDefault("output.precision", matrix.DefaultPrecision)
	v.SetDefault("output.styled", true)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("MATCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MATCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Output.Precision < 0 || c.Output.Precision > matrix.MaxPrecision {
		return Config{}, fmt.Errorf("output.precision %d out of range [0, %d]", c.Output.Precision, matrix.MaxPrecision)
	}

	return c, nil
}
