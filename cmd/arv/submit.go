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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

func newSubmitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [solution]",
		Short: "Submit an answer for the selected puzzle",
		Long: `Submit an answer for the next unsolved part of the selected puzzle.

If the solution argument is omitted it is read from stdin, with surrounding
whitespace removed. The website's reply is printed in either case, so wrong
answers and rate limit notices are shown as the website words them. The
puzzle only advances to its next part when the answer is accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solution, err := a.readSolution(args)
			if err != nil {
				return err
			}
			return a.runSubmit(cmd, solution)
		},
	}
	return cmd
}

func (a *app) readSolution(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read solution from stdin: %w", err)
	}
	solution := strings.TrimSpace(string(data))
	if solution == "" {
		return "", fmt.Errorf("no solution given on the command line or stdin")
	}
	return solution, nil
}

func (a *app) runSubmit(cmd *cobra.Command, solution string) error {
	st, err := a.store.Load()
	if err != nil {
		return err
	}

	sub, err := a.syncer.Submit(cmd.Context(), st, solution)
	if err != nil {
		return err
	}

	// The reply is shown even if the new stage cannot be stored.
	a.printReply(sub.Body)
	return a.store.Save(st)
}

// printReply renders the website reply, falling back to the raw body when
// the page does not have the expected structure.
func (a *app) printReply(body string) {
	text, err := a.renderer.Parse(body)
	if err == nil {
		fmt.Fprint(a.stdout, text)
		return
	}
	if !errors.Is(err, arverrors.ErrParse) {
		a.log.Warn().Err(err).Msg("rendering failed")
	}

	banner := lipgloss.NewRenderer(a.stderr).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("3"))
	fmt.Fprintln(a.stderr, banner.Render("warning: could not render the website reply, showing it unmodified"))
	fmt.Fprintf(a.stderr, "  (%v)\n", err)
	fmt.Fprint(a.stdout, body)
}
