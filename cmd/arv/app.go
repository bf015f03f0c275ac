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

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/arrivehq/arrive/internal/aoc"
	"github.com/arrivehq/arrive/internal/cache"
	"github.com/arrivehq/arrive/internal/config"
	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/logging"
	"github.com/arrivehq/arrive/internal/render"
	"github.com/arrivehq/arrive/internal/state"
	"github.com/arrivehq/arrive/internal/verdict"
)

// app holds what every command needs. Flags are bound by newRootCommand and
// the components are built by init once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	log      zerolog.Logger
	client   aoc.Client
	store    *state.Store
	cache    *cache.Cache
	syncer   *aoc.Syncer
	renderer *render.Renderer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.Nop(),
	}
}

// init loads configuration and wires the components. A client set before
// init is kept, which is how tests substitute the website.
func (a *app) init() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", arverrors.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = zerolog.DebugLevel.String()
	}
	a.log = logging.New(a.stderr, level)

	resolver := cfg.Resolver()
	a.store = state.NewStore(resolver, a.log)
	a.cache = cache.New(resolver, a.log)

	if a.client == nil {
		a.client = aoc.NewHTTPClient(cfg.Website.BaseURL,
			aoc.WithUserAgent(cfg.Website.UserAgent),
			aoc.WithLogger(a.log),
		)
	}
	a.syncer = aoc.NewSyncer(a.client, verdict.NewInspector(), a.log)

	a.renderer, err = render.New(cfg.Website.BaseURL)
	if err != nil {
		return err
	}
	return nil
}
