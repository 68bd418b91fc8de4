// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads keyreport settings from defaults, an optional YAML
// file, KEYREPORT_* environment variables and command-line flags, in that
// order of increasing precedence.
package config // import "github.com/toeirei/keyreport/internal/config"

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "keyreport"
	envPrefix  = "keyreport"
)

// Config holds every setting the report run needs.
type Config struct {
	Input    InputConfig  `mapstructure:"input" yaml:"input"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
	Report   ReportConfig `mapstructure:"report" yaml:"report"`
	Language string       `mapstructure:"language" yaml:"language"`
	Verbose  bool         `mapstructure:"verbose" yaml:"verbose"`
}

type InputConfig struct {
	// Dir holds one <host><Suffix> file per host.
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Suffix string `mapstructure:"suffix" yaml:"suffix"`
}

type OutputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type ReportConfig struct {
	Fingerprints bool `mapstructure:"fingerprints" yaml:"fingerprints"`
}

// Defaults returns the settings keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"input.dir":           "./fetched_data/",
		"input.suffix":        "_raw_auth_keys.txt",
		"output.path":         "authorized_keys_report_raw_mode.html",
		"report.fingerprints": false,
		"language":            "en",
		"verbose":             false,
	}
}

// GetConfigPath returns the per-user config file location.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, configName, configName+".yaml"), nil
}

// LoadConfig builds a T from defaults, the config file, the environment and
// the flags of cmd. bindings maps config keys to flag names; only flags the
// user actually set override lower layers. A missing config file is fine
// unless explicitPath names it.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, bindings map[string]string, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if userPath, err := GetConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(userPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != nil || !errors.As(err, &notFound) {
			return c, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, flag := range bindings {
			f := cmd.Flags().Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return c, err
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to path, creating parent directories.
func WriteConfigFile[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}
	return os.WriteFile(path, data, 0o600)
}
