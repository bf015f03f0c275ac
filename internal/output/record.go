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

package output

import "github.com/arrivehq/arrive/internal/state"

// Record is the status of one tracked puzzle.
type Record struct {
	Year     uint   `json:"year"`
	Day      uint   `json:"day"`
	Stage    string `json:"stage"`
	Stars    int    `json:"stars"`
	Selected bool   `json:"selected"`
}

// NewRecord converts tracked progress into a Record. selected marks the
// puzzle that is currently chosen with `arv select`.
func NewRecord(p state.PuzzleProgress, selected bool) Record {
	return Record{
		Year:     p.Year,
		Day:      p.Day,
		Stage:    p.Stage.String(),
		Stars:    stars(p.Stage),
		Selected: selected,
	}
}

// Records builds one Record per tracked puzzle in (year, day) order.
func Records(st *state.State) []Record {
	sorted := st.Sorted()
	records := make([]Record, 0, len(sorted))
	for _, p := range sorted {
		records = append(records, NewRecord(p, p.Year == st.Year && p.Day == st.Day))
	}
	return records
}

func stars(s state.Stage) int {
	switch s {
	case state.StageSecond:
		return 1
	case state.StageComplete:
		return 2
	default:
		return 0
	}
}
