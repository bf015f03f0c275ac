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

// Package state persists the user's selection, session token and per-puzzle
// progress between invocations.
//
// The record lives in a single YAML file (state.yaml) inside the platform
// state directory. It is loaded once per command, mutated in memory, and
// written back by commands that change it:
//
//	year: 2023
//	day: 5
//	session_token: 53616c7465645f5f...
//	days:
//	  - year: 2023
//	    day: 5
//	    stage: second
//
// The file may be edited by hand, so every load re-validates the bounds of
// the selection and of each progress entry. Corrupt or out-of-bounds files
// are reported, never repaired, so that recorded progress is not silently
// discarded.
package state
