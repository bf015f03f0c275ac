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

	"github.com/arrivehq/arrive/internal/aoc"
)

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the website session token",
		Long: `Manage the session token used to authenticate with the website.

The token is the value of the "session" cookie of a logged-in browser tab.
Open the browser's developer tools, look under the storage or data section
for cookies of the website, and copy the value of "session".`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := aoc.ValidateToken(args[0]); err != nil {
				return err
			}
			st, err := a.store.Load()
			if err != nil {
				return err
			}
			st.SetToken(args[0])
			return a.store.Save(st)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store.Load()
			if err != nil {
				return err
			}
			token, err := st.Token()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, token)
			return nil
		},
	})

	return cmd
}
