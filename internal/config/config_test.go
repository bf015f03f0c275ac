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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/paths"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Website.BaseURL != "https://adventofcode.com" {
		t.Errorf("BaseURL = %s, want https://adventofcode.com", cfg.Website.BaseURL)
	}
	if cfg.Website.UserAgent != "" {
		t.Errorf("UserAgent = %q, want empty", cfg.Website.UserAgent)
	}
	if cfg.Paths.CacheDir != "" || cfg.Paths.StateDir != "" {
		t.Errorf("Paths = %+v, want platform defaults", cfg.Paths)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
website:
  base_url: http://localhost:8080
  user_agent: my-agent/1.0

paths:
  cache_dir: /custom/cache
  state_dir: /custom/state

log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Website.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %s, want http://localhost:8080", cfg.Website.BaseURL)
	}
	if cfg.Website.UserAgent != "my-agent/1.0" {
		t.Errorf("UserAgent = %s, want my-agent/1.0", cfg.Website.UserAgent)
	}
	if cfg.Paths.CacheDir != "/custom/cache" {
		t.Errorf("CacheDir = %s, want /custom/cache", cfg.Paths.CacheDir)
	}
	if cfg.Paths.StateDir != "/custom/state" {
		t.Errorf("StateDir = %s, want /custom/state", cfg.Paths.StateDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
	}
}

func TestLoadConfigFile_PartialKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: info\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Website.BaseURL != "https://adventofcode.com" {
		t.Errorf("BaseURL = %s, want default", cfg.Website.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("website: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ARRIVE_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("ARRIVE_USER_AGENT", "env-agent")
	t.Setenv("ARRIVE_CACHE_DIR", "/env/cache")
	t.Setenv("ARRIVE_STATE_DIR", "/env/state")
	t.Setenv("ARRIVE_LOG_LEVEL", "trace")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Website.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("BaseURL = %s, want http://127.0.0.1:9999", cfg.Website.BaseURL)
	}
	if cfg.Website.UserAgent != "env-agent" {
		t.Errorf("UserAgent = %s, want env-agent", cfg.Website.UserAgent)
	}
	if cfg.Paths.CacheDir != "/env/cache" {
		t.Errorf("CacheDir = %s, want /env/cache", cfg.Paths.CacheDir)
	}
	if cfg.Paths.StateDir != "/env/state" {
		t.Errorf("StateDir = %s, want /env/state", cfg.Paths.StateDir)
	}
	if cfg.Log.Level != "trace" {
		t.Errorf("Log.Level = %s, want trace", cfg.Log.Level)
	}
}

func TestEnvironmentOverridesBeatFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: info\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ARRIVE_LOG_LEVEL", "error")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %s, want error", cfg.Log.Level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "ARRIVE_DOTENV_TEST_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte(key+"=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := loadDotEnv(envPath); err != nil {
		t.Fatalf("loadDotEnv failed: %v", err)
	}
	if got := os.Getenv(key); got != "from-dotenv" {
		t.Errorf("%s = %q, want from-dotenv", key, got)
	}

	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestResolver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paths.CacheDir = "/c"
	cfg.Paths.StateDir = "/s"

	r := cfg.Resolver()
	cache, err := r.CacheDir()
	if err != nil || cache != "/c" {
		t.Errorf("CacheDir() = %q, %v; want /c", cache, err)
	}
	st, err := r.StateDir()
	if err != nil || st != "/s" {
		t.Errorf("StateDir() = %q, %v; want /s", st, err)
	}
	if got, err := paths.StateFilePath(r); err != nil || got != filepath.Join("/s", "state.yaml") {
		t.Errorf("StateFilePath() = %q, %v", got, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "local http mock",
			modify:  func(c *Config) { c.Website.BaseURL = "http://localhost:8080" },
			wantErr: false,
		},
		{
			name:    "empty base URL",
			modify:  func(c *Config) { c.Website.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "relative base URL",
			modify:  func(c *Config) { c.Website.BaseURL = "adventofcode.com" },
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			modify:  func(c *Config) { c.Website.BaseURL = "ftp://adventofcode.com" },
			wantErr: true,
		},
		{
			name:    "missing host",
			modify:  func(c *Config) { c.Website.BaseURL = "https://" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, arverrors.ErrConfiguration) {
				t.Errorf("Validate() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := os.Getenv("HOME")
	t.Setenv("ARRIVE_TEST_DIR", "/from/env")

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"$ARRIVE_TEST_DIR/cache", "/from/env/cache"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%s) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}
