package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
)

// configName is the config file name without extension.
const configName = ".gitattrib"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for gitattrib settings.
const envPrefix = "GITATTRIB"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load resolves configuration from file, env vars and defaults. A non-empty
// configPath is used as the explicit config file; otherwise the file is
// searched in CWD and $HOME. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("max_commits", DefaultMaxCommits)
	viperCfg.SetDefault("since", "")
	viperCfg.SetDefault("until", DefaultUntil)
	viperCfg.SetDefault("first_parent", false)
	viperCfg.SetDefault("source_root", DefaultSourceRoot)
	viperCfg.SetDefault("formats", []string{render.FormatJSON})
	viperCfg.SetDefault("output_dir", DefaultOutputDir)
	viperCfg.SetDefault("min_ai_percentage", 0.0)
	viperCfg.SetDefault("enforce", false)
}
