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

// Package main implements the arv command-line interface.
// arv fetches Advent of Code puzzle inputs, caches them locally, submits
// answers and tracks which stars have been earned.
//
// The CLI supports:
//   - Storing the website session token (arv token set|show)
//   - Printing the selected puzzle's input, cached after the first download
//   - Submitting an answer for the next unsolved part of the selected puzzle
//   - Selecting a puzzle by year and day
//   - Showing the selection and per-puzzle progress, optionally as NDJSON
//
// Usage:
//
//	arv token set <session-cookie>
//	arv select --year 2023 --day 5
//	arv input > input.txt
//	./solve < input.txt | arv submit
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Missing or rejected session token
//   - 3: Network error
//   - 4: Corrupt state file
package main
