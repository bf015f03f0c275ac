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

// Package errors defines the error taxonomy shared by every arrive component.
// Sentinels are matched with errors.Is and map to specific exit codes in the
// CLI; the typed errors carry the diagnostic detail for the user.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrConfiguration indicates a platform directory could not be resolved
	// or the configuration is invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO indicates a file could not be created, opened, read or written.
	ErrIO = errors.New("file operation failed")

	// ErrSerialization indicates the persisted state file is malformed.
	// Maps to exit code 4.
	ErrSerialization = errors.New("malformed state file")

	// ErrValidation indicates a year or day is out of bounds.
	// Maps to exit code 4 when it comes from the state file.
	ErrValidation = errors.New("validation failed")

	// ErrMissingToken indicates no session token has been stored.
	// Maps to exit code 2.
	ErrMissingToken = errors.New("missing session token, have you run `arv token set`?")

	// ErrNetworkFailure indicates the request never produced a response.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrHTTPStatus indicates the website answered with a non-200 status.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrAlreadyComplete indicates both parts of the selected puzzle are solved.
	ErrAlreadyComplete = errors.New("puzzle already complete")

	// ErrParse indicates a response page did not have the expected structure.
	ErrParse = errors.New("unexpected html structure")
)

// IOError records the failed file operation and the path it was applied to.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO so callers don't need errors.As for the common case.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// ValidationError names the offending field of an out-of-bounds record.
type ValidationError struct {
	Field  string
	Value  uint
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StatusError carries a non-200 response so the body can be shown to the user.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("website returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("website returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrHTTPStatus }

// NewIOError wraps err with the operation and path it failed on.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
