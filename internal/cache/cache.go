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

// Package cache stores puzzle inputs on disk so each one is downloaded once.
//
// Inputs are plain files named <year>_<DD>.txt holding the bytes exactly as
// the website sent them. Nothing is ever invalidated or deleted: a user's
// input for a puzzle does not change once published.
package cache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/paths"
)

// Entry is the result of a cache lookup: either *Cached or *Missing.
type Entry interface {
	entry()
}

// Cached is a hit. File is open for reading and owned by the caller.
type Cached struct {
	File *os.File
}

// Missing is a miss. Path is where the input belongs; nothing has been
// created there yet.
type Missing struct {
	Path string
}

func (*Cached) entry()  {}
func (*Missing) entry() {}

// ReadAll reads the cached input and closes the file.
func (c *Cached) ReadAll() ([]byte, error) {
	defer c.File.Close()
	data, err := io.ReadAll(c.File)
	if err != nil {
		return nil, arverrors.NewIOError("read cached input", c.File.Name(), err)
	}
	return data, nil
}

// Write fills the miss. It fails if something else created the file since
// the lookup.
func (m *Missing) Write(content []byte) error {
	f, err := os.OpenFile(m.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return arverrors.NewIOError("create cache file", m.Path, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return arverrors.NewIOError("write cache file", m.Path, err)
	}
	if err := f.Close(); err != nil {
		return arverrors.NewIOError("close cache file", m.Path, err)
	}
	return nil
}

// Cache maps (year, day) to files under the resolved cache directory.
type Cache struct {
	resolver paths.Resolver
	log      zerolog.Logger
}

// New creates a Cache rooted at resolver's cache directory.
func New(resolver paths.Resolver, log zerolog.Logger) *Cache {
	return &Cache{resolver: resolver, log: log}
}

// FileName is the cache file name for a puzzle, e.g. 2023_05.txt.
func FileName(year, day uint) string {
	return fmt.Sprintf("%d_%02d.txt", year, day)
}

// Path returns where the input for (year, day) is stored, creating the
// cache directory if needed.
func (c *Cache) Path(year, day uint) (string, error) {
	dir, err := c.resolver.CacheDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", arverrors.NewIOError("create cache directory", dir, err)
	}
	return filepath.Join(dir, FileName(year, day)), nil
}

// Fetch looks up the input for (year, day).
func (c *Cache) Fetch(year, day uint) (Entry, error) {
	target, err := c.Path(year, day)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(target)
	switch {
	case err == nil:
		if info, statErr := f.Stat(); statErr == nil {
			c.log.Debug().Str("path", target).Str("size", humanize.Bytes(uint64(info.Size()))).Msg("cache hit")
		}
		return &Cached{File: f}, nil
	case os.IsNotExist(err):
		c.log.Debug().Str("path", target).Msg("cache miss")
		return &Missing{Path: target}, nil
	default:
		return nil, arverrors.NewIOError("open cache file", target, err)
	}
}

// ForceWrite replaces the input for (year, day) regardless of what is cached.
func (c *Cache) ForceWrite(year, day uint, content []byte) error {
	target, err := c.Path(year, day)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return arverrors.NewIOError("write cache file", target, err)
	}
	c.log.Debug().Str("path", target).Str("size", humanize.Bytes(uint64(len(content)))).Msg("cache overwritten")
	return nil
}
