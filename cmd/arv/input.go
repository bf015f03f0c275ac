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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arrivehq/arrive/internal/cache"
	"github.com/arrivehq/arrive/internal/state"
)

func newInputCommand(a *app) *cobra.Command {
	var (
		force  bool
		puzzle puzzleFlags
	)

	cmd := &cobra.Command{
		Use:   "input",
		Short: "Print the input of the selected puzzle",
		Long: `Print the input of the selected puzzle exactly as the website serves it.

The first request downloads the input and keeps a copy in the cache directory;
later requests are served from that copy without contacting the website.
Use --force to download again and replace the cached copy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store.Load()
			if err != nil {
				return err
			}
			year, day, err := puzzle.resolve(cmd, st)
			if err != nil {
				return err
			}
			return a.runInput(cmd.Context(), st, year, day, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Download again and overwrite the cached input")
	puzzle.register(cmd, "fetch input for")

	return cmd
}

func (a *app) runInput(ctx context.Context, st *state.State, year, day uint, force bool) error {
	if force {
		content, err := a.syncer.FetchInput(ctx, st, year, day)
		if err != nil {
			return err
		}
		fmt.Fprint(a.stdout, content)
		return a.cache.ForceWrite(year, day, []byte(content))
	}

	entry, err := a.cache.Fetch(year, day)
	if err != nil {
		return err
	}

	switch e := entry.(type) {
	case *cache.Cached:
		content, err := e.ReadAll()
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(content)
		return err
	case *cache.Missing:
		content, err := a.syncer.FetchInput(ctx, st, year, day)
		if err != nil {
			return err
		}
		fmt.Fprint(a.stdout, content)
		return e.Write([]byte(content))
	default:
		return fmt.Errorf("unexpected cache entry %T", entry)
	}
}
