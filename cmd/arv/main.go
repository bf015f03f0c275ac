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
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/pkg/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, newApp(os.Stdin, os.Stdout, os.Stderr), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, a *app, args []string) int {
	rootCmd := newRootCommand(a)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return mapErrorToExitCode(err)
	}
	return 0
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arv",
		Short: "Fetch Advent of Code inputs and submit answers",
		Long: `arv downloads puzzle inputs from Advent of Code, keeps a local copy of
each one, and submits answers for the currently selected puzzle while
tracking which parts have been solved.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./.arrive.yaml or <user-config-dir>/arrive/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.AddCommand(
		newTokenCommand(a),
		newInputCommand(a),
		newSubmitCommand(a),
		newSelectCommand(a),
		newStatusCommand(a),
	)

	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, arverrors.ErrMissingToken) {
		return 2 // Authentication errors
	}
	var statusErr *arverrors.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return 2 // The website rejected the session token
		}
	}

	if errors.Is(err, arverrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	if errors.Is(err, arverrors.ErrValidation) || errors.Is(err, arverrors.ErrSerialization) {
		return 4 // Corrupt state file
	}

	return 1 // General error
}
