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

// Package aoc talks to the puzzle website.
//
// The package has two layers:
//   - Client, implemented by HTTPClient, issues the two requests the website
//     supports (download an input, post an answer) and turns transport and
//     status failures into arrive's error taxonomy.
//   - Syncer binds a Client to the loaded state: it supplies the session
//     token, picks the answer level from the puzzle's stage, and advances the
//     stage only when the reply confirms the answer.
//
// Basic usage:
//
//	client := aoc.NewHTTPClient(aoc.DefaultBaseURL)
//	syncer := aoc.NewSyncer(client, verdict.NewInspector(), log)
//	sub, err := syncer.Submit(ctx, st, "42")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(sub.Stage)
//
// There are no retries and no timeout beyond the transport defaults; a failed
// request fails the command.
package aoc
