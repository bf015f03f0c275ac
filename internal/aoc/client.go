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

package aoc

import "context"

// DefaultBaseURL is the origin of the puzzle website.
const DefaultBaseURL = "https://adventofcode.com"

// Client defines the requests arrive makes to the puzzle website.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchInput downloads the raw puzzle input for (year, day). The body is
	// returned byte for byte.
	FetchInput(ctx context.Context, token string, year, day uint) (string, error)

	// SubmitAnswer posts answer for the given part (level 1 or 2) and returns
	// the reply page whatever it says.
	SubmitAnswer(ctx context.Context, token string, year, day uint, level int, answer string) (string, error)
}
