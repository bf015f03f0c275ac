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

// Package paths resolves the directories arrive keeps its files in.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

const (
	// BaseDir is appended to every platform directory.
	BaseDir = "arrive"

	// StateFile is the name of the persisted state record inside the state directory.
	StateFile = "state.yaml"
)

// Resolver locates the cache and state directories. Both returned paths
// already include BaseDir.
type Resolver interface {
	CacheDir() (string, error)
	StateDir() (string, error)
}

// Platform resolves directories the way the host OS expects them.
type Platform struct{}

// CacheDir returns <user-cache-dir>/arrive.
func (Platform) CacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve cache directory: %v", arverrors.ErrConfiguration, err)
	}
	return filepath.Join(dir, BaseDir), nil
}

// StateDir returns $XDG_STATE_HOME/arrive, falling back to ~/.local/state/arrive
// on unix-likes and the user config directory elsewhere.
func (Platform) StateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" && filepath.IsAbs(dir) {
		return filepath.Join(dir, BaseDir), nil
	}

	switch runtime.GOOS {
	case "windows", "darwin", "ios", "plan9":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: cannot resolve state directory: %v", arverrors.ErrConfiguration, err)
		}
		return filepath.Join(dir, BaseDir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve state directory: %v", arverrors.ErrConfiguration, err)
	}
	return filepath.Join(home, ".local", "state", BaseDir), nil
}

// Static returns fixed directories. Empty fields fall through to Fallback,
// which lets config overrides replace one directory but not the other.
type Static struct {
	Cache    string
	State    string
	Fallback Resolver
}

func (s Static) CacheDir() (string, error) {
	if s.Cache != "" {
		return s.Cache, nil
	}
	if s.Fallback == nil {
		return "", fmt.Errorf("%w: no cache directory configured", arverrors.ErrConfiguration)
	}
	return s.Fallback.CacheDir()
}

func (s Static) StateDir() (string, error) {
	if s.State != "" {
		return s.State, nil
	}
	if s.Fallback == nil {
		return "", fmt.Errorf("%w: no state directory configured", arverrors.ErrConfiguration)
	}
	return s.Fallback.StateDir()
}

// StateFilePath joins the resolved state directory with StateFile.
func StateFilePath(r Resolver) (string, error) {
	dir, err := r.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFile), nil
}
