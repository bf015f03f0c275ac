// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for arrive with support
// for multiple configuration sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables (a ./.env file is loaded into the environment first)
//  3. Configuration file
//  4. Built-in defaults
//
// The session token is deliberately not configurable here; it belongs to the
// persisted state and is managed with `arv token`.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/paths"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .arrive.yaml (current directory)
//   - <user-config-dir>/arrive/config.yaml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	cfg.Paths.CacheDir = expandPath(cfg.Paths.CacheDir)
	cfg.Paths.StateDir = expandPath(cfg.Paths.StateDir)

	return cfg, nil
}

func defaultPaths() []string {
	candidates := []string{".arrive.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, paths.BaseDir, "config.yaml"))
	}
	return candidates
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// loadDotEnv populates the environment from path without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ARRIVE_BASE_URL"); v != "" {
		cfg.Website.BaseURL = v
	}
	if v := os.Getenv("ARRIVE_USER_AGENT"); v != "" {
		cfg.Website.UserAgent = v
	}
	if v := os.Getenv("ARRIVE_CACHE_DIR"); v != "" {
		cfg.Paths.CacheDir = v
	}
	if v := os.Getenv("ARRIVE_STATE_DIR"); v != "" {
		cfg.Paths.StateDir = v
	}
	if v := os.Getenv("ARRIVE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Resolver returns the directory resolver for this configuration: the
// configured directories where set, the platform defaults otherwise.
func (c *Config) Resolver() paths.Resolver {
	return paths.Static{
		Cache:    c.Paths.CacheDir,
		State:    c.Paths.StateDir,
		Fallback: paths.Platform{},
	}
}

// Validate checks if the configuration contains valid values. This should be
// called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Website.BaseURL == "" {
		return fmt.Errorf("%w: website base URL cannot be empty", arverrors.ErrConfiguration)
	}
	u, err := url.Parse(c.Website.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid website base URL %q: %v", arverrors.ErrConfiguration, c.Website.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: website base URL %q must use http or https", arverrors.ErrConfiguration, c.Website.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: website base URL %q has no host", arverrors.ErrConfiguration, c.Website.BaseURL)
	}
	return nil
}
