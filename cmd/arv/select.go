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
	"github.com/spf13/cobra"
)

func newSelectCommand(a *app) *cobra.Command {
	var puzzle puzzleFlags

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the puzzle to work on",
		Long: `Select the puzzle that input and submit operate on.

--day alone keeps the selected year. --year must be combined with --day.`,
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
			if err := st.Select(year, day); err != nil {
				return err
			}
			a.log.Debug().Uint("year", year).Uint("day", day).Msg("puzzle selected")
			return a.store.Save(st)
		},
	}

	puzzle.register(cmd, "select")
	cmd.MarkFlagsOneRequired("year", "day")

	return cmd
}
