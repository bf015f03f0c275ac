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

// Package version holds build identification for arrive.
package version

import "fmt"

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

const (
	// Repository is the canonical home of the project.
	Repository = "https://github.com/arrivehq/arrive"

	// Authors is reported to the puzzle website so its operators can reach us.
	Authors = "arrive maintainers <arrive@arrivehq.dev>"
)

// UserAgent identifies arrive to the puzzle website as
// <repository>@<version> by <authors>.
func UserAgent() string {
	return fmt.Sprintf("%s@%s by %s", Repository, Version, Authors)
}
