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
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// MinYear is the first year the puzzle website ran.
	MinYear uint = 2015

	// MinDay and MaxDay bound the puzzle days of a year.
	MinDay uint = 1
	MaxDay uint = 25
)

// Stage tracks how far a two-part puzzle has been solved. It only ever moves
// forward: StageFirst -> StageSecond -> StageComplete.
type Stage int

const (
	StageFirst Stage = iota
	StageSecond
	StageComplete
)

var stageNames = map[Stage]string{
	StageFirst:    "first",
	StageSecond:   "second",
	StageComplete: "complete",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ParseStage is the inverse of Stage.String.
func ParseStage(name string) (Stage, error) {
	for stage, n := range stageNames {
		if n == name {
			return stage, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q (want first, second or complete)", name)
}

// Advance moves to the next stage. Advancing a complete puzzle is a no-op.
func (s *Stage) Advance() {
	switch *s {
	case StageFirst:
		*s = StageSecond
	case StageSecond:
		*s = StageComplete
	}
}

// Level is the puzzle part the website expects an answer for. ok is false
// once the puzzle is complete.
func (s Stage) Level() (level int, ok bool) {
	switch s {
	case StageFirst:
		return 1, true
	case StageSecond:
		return 2, true
	default:
		return 0, false
	}
}

// MarshalYAML writes the stage by name.
func (s Stage) MarshalYAML() (interface{}, error) {
	if _, ok := stageNames[s]; !ok {
		return nil, fmt.Errorf("cannot marshal %s", s)
	}
	return s.String(), nil
}

// UnmarshalYAML rejects anything but a known stage name.
func (s *Stage) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseStage(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}

// MarshalText lets the stage appear by name in JSON status output.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PuzzleProgress is the completion stage of one puzzle. Entries are created
// on the first submission for a puzzle and never removed.
type PuzzleProgress struct {
	Year  uint  `yaml:"year" json:"year"`
	Day   uint  `yaml:"day" json:"day"`
	Stage Stage `yaml:"stage" json:"stage"`
}

// State is the whole persisted record: the selected puzzle, the session
// token and the progress of every puzzle submitted to so far.
type State struct {
	Year         uint             `yaml:"year"`
	Day          uint             `yaml:"day"`
	SessionToken *string          `yaml:"session_token,omitempty"`
	Days         []PuzzleProgress `yaml:"days,omitempty"`
}

// Default returns the record written when no state exists yet.
func Default() *State {
	return &State{
		Year: MinYear,
		Day:  MinDay,
	}
}
