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

	"github.com/spf13/cobra"

	"github.com/arrivehq/arrive/internal/state"
)

// puzzleFlags are the --year/--day pair shared by input and select.
type puzzleFlags struct {
	year uint
	day  uint
}

func (p *puzzleFlags) register(cmd *cobra.Command, verb string) {
	cmd.Flags().UintVarP(&p.year, "year", "y", 0, fmt.Sprintf("Year to %s (requires --day)", verb))
	cmd.Flags().UintVarP(&p.day, "day", "d", 0, fmt.Sprintf("Day to %s", verb))
}

// resolve returns the puzzle named by the flags, filling what was not given
// from the current selection. --year without --day is rejected because the
// selected day may not make sense for another year.
func (p *puzzleFlags) resolve(cmd *cobra.Command, st *state.State) (year, day uint, err error) {
	yearSet := cmd.Flags().Changed("year")
	daySet := cmd.Flags().Changed("day")

	if yearSet && !daySet {
		return 0, 0, fmt.Errorf("--year requires --day")
	}

	year, day = st.Year, st.Day
	if yearSet {
		year = p.year
	}
	if daySet {
		day = p.day
	}

	if err := state.ValidatePuzzle("", year, day); err != nil {
		return 0, 0, fmt.Errorf("invalid puzzle: %v", err)
	}
	return year, day, nil
}
