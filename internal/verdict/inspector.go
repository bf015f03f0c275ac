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

package verdict

import "strings"

// Phrases the website uses in its answer replies.
const (
	CorrectPhrase    = "That's the right answer!"
	IncorrectPhrase  = "That's not the right answer"
	TooRecentPhrase  = "You gave an answer too recently"
	WrongLevelPhrase = "You don't seem to be solving the right level"
)

// Verdict is an informational classification of an answer reply. Only
// Correct has any effect on stored progress.
type Verdict int

const (
	Unknown Verdict = iota
	Correct
	Incorrect
	TooRecent
	WrongLevel
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case TooRecent:
		return "too recent"
	case WrongLevel:
		return "wrong level"
	default:
		return "unknown"
	}
}

// Inspector decides what a reply body means.
type Inspector interface {
	// IsCorrect reports whether the reply confirms the answer. It is the
	// only predicate allowed to advance a puzzle's stage.
	IsCorrect(body string) bool

	// Classify names the reply for logging and exit messages.
	Classify(body string) Verdict
}

// PhraseInspector matches the website's English copy.
type PhraseInspector struct{}

// NewInspector creates a PhraseInspector.
func NewInspector() Inspector {
	return &PhraseInspector{}
}

// IsCorrect checks for CorrectPhrase.
func (i *PhraseInspector) IsCorrect(body string) bool {
	return strings.Contains(body, CorrectPhrase)
}

// Classify checks the known phrases, success first.
func (i *PhraseInspector) Classify(body string) Verdict {
	switch {
	case i.IsCorrect(body):
		return Correct
	case strings.Contains(body, IncorrectPhrase):
		return Incorrect
	case strings.Contains(body, TooRecentPhrase):
		return TooRecent
	case strings.Contains(body, WrongLevelPhrase):
		return WrongLevel
	default:
		return Unknown
	}
}
