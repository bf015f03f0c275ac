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

	"github.com/arrivehq/arrive/internal/output"
	"github.com/arrivehq/arrive/internal/state"
)

func newStatusCommand(a *app) *cobra.Command {
	var (
		jsonOutput bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the selected puzzle and solved parts",
		Long: `Show the selected puzzle and every puzzle with recorded progress.

--json prints one NDJSON record per tracked puzzle instead. --output writes
the same records to a file, replacing its contents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store.Load()
			if err != nil {
				return err
			}
			switch {
			case outputFile != "":
				return a.exportStatus(st, outputFile)
			case jsonOutput:
				return writeRecords(output.NewWriter(a.stdout), st)
			default:
				return a.printStatus(st)
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit one NDJSON record per tracked puzzle")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the NDJSON records to a file instead of stdout")

	return cmd
}

func (a *app) printStatus(st *state.State) error {
	fmt.Fprintf(a.stdout, "selected: %d/%02d\n", st.Year, st.Day)
	if len(st.Days) == 0 {
		return nil
	}
	fmt.Fprintln(a.stdout)
	return writeRecords(output.NewTextWriter(a.stdout), st)
}

func (a *app) exportStatus(st *state.State, path string) error {
	w, err := output.NewFileWriter(path)
	if err != nil {
		return err
	}
	if err := writeRecords(w, st); err != nil {
		return err
	}
	fmt.Fprintf(a.stderr, "Wrote %d puzzle records to %s\n", w.Count(), path)
	return nil
}

// writeRecords writes every tracked puzzle and closes w.
func writeRecords(w output.RecordWriter, st *state.State) error {
	for _, record := range output.Records(st) {
		if err := w.Write(record); err != nil {
			_ = w.Close()
			return err
		}
	}
	return w.Close()
}
