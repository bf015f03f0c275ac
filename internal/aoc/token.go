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

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

// ValidateToken checks that token can be sent as the session cookie value.
// The token itself is never included in the error.
func ValidateToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: session token is empty", arverrors.ErrConfiguration)
	}
	if !httpguts.ValidHeaderFieldValue(token) || strings.ContainsAny(token, " \t;,\"\\") {
		return fmt.Errorf("%w: session token contains characters not allowed in a cookie", arverrors.ErrConfiguration)
	}
	return nil
}
