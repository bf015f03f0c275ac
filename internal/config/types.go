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

// Package config types define the configuration structures used throughout
// arrive. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import "github.com/arrivehq/arrive/internal/aoc"

// Config represents the complete configuration for arrive.
type Config struct {
	Website WebsiteConfig `yaml:"website"`
	Paths   PathsConfig   `yaml:"paths"`
	Log     LogConfig     `yaml:"log"`
}

// WebsiteConfig points arrive at the puzzle website. Overriding the base URL
// is mostly useful against a local mock of the site.
type WebsiteConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

// PathsConfig overrides the platform cache and state directories. Empty
// values keep the platform default.
type PathsConfig struct {
	CacheDir string `yaml:"cache_dir"`
	StateDir string `yaml:"state_dir"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config that talks to the public website and keeps
// files in the platform directories.
func DefaultConfig() *Config {
	return &Config{
		Website: WebsiteConfig{
			BaseURL: aoc.DefaultBaseURL,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
