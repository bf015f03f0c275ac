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

package state

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/paths"
)

// Store loads and saves the single state file found through a paths.Resolver.
type Store struct {
	resolver paths.Resolver
	log      zerolog.Logger
}

// NewStore creates a Store. Pass zerolog.Nop() to keep it quiet.
func NewStore(resolver paths.Resolver, log zerolog.Logger) *Store {
	return &Store{resolver: resolver, log: log}
}

// Load reads the state file, creating it with Default() when it is empty or
// absent. A malformed file fails with ErrSerialization and an out-of-bounds
// one with ErrValidation; neither is repaired.
func (s *Store) Load() (*State, error) {
	stateFile, err := s.ensureStateFile()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(stateFile, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, arverrors.NewIOError("open state file", stateFile, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, arverrors.NewIOError("read state file", stateFile, err)
	}

	if len(data) == 0 {
		st := Default()
		out, err := marshal(st)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(out); err != nil {
			return nil, arverrors.NewIOError("write default state to", stateFile, err)
		}
		s.log.Debug().Str("path", stateFile).Msg("created default state")
		return st, nil
	}

	st, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stateFile, err)
	}
	s.log.Debug().Str("path", stateFile).Int("days", len(st.Days)).Msg("loaded state")
	return st, nil
}

// Save overwrites the state file with st. The write goes through a temporary
// file and a rename so a crash never leaves a half-written record behind.
// There is no locking: concurrent invocations race and the last one wins.
func (s *Store) Save(st *State) error {
	if err := st.Validate(); err != nil {
		return err
	}

	stateFile, err := s.ensureStateFile()
	if err != nil {
		return err
	}

	data, err := marshal(st)
	if err != nil {
		return err
	}

	tempFile := stateFile + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o600); err != nil {
		return arverrors.NewIOError("write temporary state file", tempFile, err)
	}

	file, err := os.Open(tempFile)
	if err != nil {
		_ = os.Remove(tempFile)
		return arverrors.NewIOError("open temporary state file", tempFile, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tempFile)
		return arverrors.NewIOError("sync temporary state file", tempFile, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempFile)
		return arverrors.NewIOError("close temporary state file", tempFile, err)
	}

	if err := os.Rename(tempFile, stateFile); err != nil {
		_ = os.Remove(tempFile)
		return arverrors.NewIOError("replace state file", stateFile, err)
	}

	s.log.Debug().Str("path", stateFile).Msg("saved state")
	return nil
}

// ensureStateFile resolves the state file path and creates its directory.
func (s *Store) ensureStateFile() (string, error) {
	stateFile, err := paths.StateFilePath(s.resolver)
	if err != nil {
		return "", err
	}
	stateDir := filepath.Dir(stateFile)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return "", arverrors.NewIOError("create state directory", stateDir, err)
	}
	return stateFile, nil
}

func marshal(st *State) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return nil, fmt.Errorf("%w: %v", arverrors.ErrSerialization, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", arverrors.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*State, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var st State
	if err := dec.Decode(&st); err != nil {
		return nil, fmt.Errorf("%w: %v", arverrors.ErrSerialization, err)
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return &st, nil
}

// ValidatePuzzle checks that year and day name a puzzle that can exist.
// field prefixes the field names in the returned ValidationError.
func ValidatePuzzle(field string, year, day uint) error {
	if year < MinYear {
		return &arverrors.ValidationError{
			Field:  field + "year",
			Value:  year,
			Reason: fmt.Sprintf("must be %d or later", MinYear),
		}
	}
	if day < MinDay || day > MaxDay {
		return &arverrors.ValidationError{
			Field:  field + "day",
			Value:  day,
			Reason: fmt.Sprintf("must be between %d and %d", MinDay, MaxDay),
		}
	}
	return nil
}

// Validate checks the selection and every progress entry.
func (st *State) Validate() error {
	if err := ValidatePuzzle("", st.Year, st.Day); err != nil {
		return err
	}
	seen := make(map[[2]uint]bool, len(st.Days))
	for i, d := range st.Days {
		field := fmt.Sprintf("days[%d].", i)
		if err := ValidatePuzzle(field, d.Year, d.Day); err != nil {
			return err
		}
		key := [2]uint{d.Year, d.Day}
		if seen[key] {
			return &arverrors.ValidationError{
				Field:  field + "day",
				Value:  d.Day,
				Reason: fmt.Sprintf("duplicate entry for %d/%02d", d.Year, d.Day),
			}
		}
		seen[key] = true
	}
	return nil
}

// Token returns the stored session token.
func (st *State) Token() (string, error) {
	if st.SessionToken == nil || *st.SessionToken == "" {
		return "", arverrors.ErrMissingToken
	}
	return *st.SessionToken, nil
}

// SetToken stores the session token used for every website request.
func (st *State) SetToken(token string) {
	st.SessionToken = &token
}

// Select changes the current puzzle after checking its bounds.
func (st *State) Select(year, day uint) error {
	if err := ValidatePuzzle("", year, day); err != nil {
		return err
	}
	st.Year = year
	st.Day = day
	return nil
}

// ProgressForCurrent returns the progress entry of the selected puzzle,
// appending one at StageFirst if the puzzle has not been seen before. The
// pointer stays valid until Days is appended to again.
func (st *State) ProgressForCurrent() *PuzzleProgress {
	for i := range st.Days {
		if st.Days[i].Year == st.Year && st.Days[i].Day == st.Day {
			return &st.Days[i]
		}
	}
	st.Days = append(st.Days, PuzzleProgress{Year: st.Year, Day: st.Day, Stage: StageFirst})
	return &st.Days[len(st.Days)-1]
}

// Sorted returns a copy of the progress entries ordered by year, then day.
// The persisted order is left untouched.
func (st *State) Sorted() []PuzzleProgress {
	sorted := make([]PuzzleProgress, len(st.Days))
	copy(sorted, st.Days)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Day < sorted[j].Day
	})
	return sorted
}
