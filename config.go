// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/arbor/commands"
	"github.com/cybrota/arbor/store"
)

const configFileName = ".arbor.yaml"

type LogConfig struct {
	Level string `yaml:"level"`
}

type IngestConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	SkipInvalid  bool `yaml:"skip_invalid"`
}

type QueryConfig struct {
	MatchCacheTTL time.Duration `yaml:"match_cache_ttl"`
	Suggestions   int           `yaml:"suggestions"`
}

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Ingest IngestConfig `yaml:"ingest"`
	Query  QueryConfig  `yaml:"query"`
}

var defaultConfig = Config{
	Log: LogConfig{
		Level: "info",
	},
	Ingest: IngestConfig{
		ShowProgress: true,
		SkipInvalid:  true,
	},
	Query: QueryConfig{
		MatchCacheTTL: store.DefaultMatchCacheExpiration,
		Suggestions:   commands.DefaultSuggestions,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.arbor.yaml. Any problem with the file falls back to
// the defaults, a missing file is not an error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return defaults(), fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// keys absent from the file keep their default values
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if config.Query.Suggestions < 0 {
		config.Query.Suggestions = 0
	}
	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Arbor Configuration Settings\n")
	fmt.Fprintf(w, "============================\n\n")
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
