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
	"context"
	"fmt"

	"github.com/rs/zerolog"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/state"
	"github.com/arrivehq/arrive/internal/verdict"
)

// Submission is the outcome of one answer submission.
type Submission struct {
	Year     uint
	Day      uint
	Level    int
	Verdict  verdict.Verdict
	Stage    state.Stage
	Advanced bool

	// Body is the website's reply, kept for display whatever the verdict.
	Body string
}

// Syncer runs website operations against the loaded state.
type Syncer struct {
	client    Client
	inspector verdict.Inspector
	log       zerolog.Logger
}

// NewSyncer creates a Syncer.
func NewSyncer(client Client, inspector verdict.Inspector, log zerolog.Logger) *Syncer {
	return &Syncer{client: client, inspector: inspector, log: log}
}

// FetchInput downloads the input for (year, day) with the stored token.
func (s *Syncer) FetchInput(ctx context.Context, st *state.State, year, day uint) (string, error) {
	token, err := st.Token()
	if err != nil {
		return "", err
	}
	return s.client.FetchInput(ctx, token, year, day)
}

// Submit posts solution for the selected puzzle. The progress entry is
// created at StageFirst if needed; a complete puzzle fails with
// ErrAlreadyComplete before anything is sent. The stage advances only when
// the reply confirms the answer. Any other reply (wrong answer, cooldown)
// still returns a Submission so the caller can show it.
func (s *Syncer) Submit(ctx context.Context, st *state.State, solution string) (*Submission, error) {
	progress := st.ProgressForCurrent()

	level, ok := progress.Stage.Level()
	if !ok {
		return nil, fmt.Errorf("%d/%02d: %w", progress.Year, progress.Day, arverrors.ErrAlreadyComplete)
	}

	token, err := st.Token()
	if err != nil {
		return nil, err
	}

	body, err := s.client.SubmitAnswer(ctx, token, progress.Year, progress.Day, level, solution)
	if err != nil {
		return nil, err
	}

	sub := &Submission{
		Year:    progress.Year,
		Day:     progress.Day,
		Level:   level,
		Verdict: s.inspector.Classify(body),
		Body:    body,
	}

	if s.inspector.IsCorrect(body) {
		progress.Stage.Advance()
		sub.Advanced = true
		s.log.Info().
			Uint("year", progress.Year).
			Uint("day", progress.Day).
			Stringer("stage", progress.Stage).
			Msg("answer accepted")
	} else {
		s.log.Debug().Stringer("verdict", sub.Verdict).Msg("answer not accepted")
	}
	sub.Stage = progress.Stage

	return sub, nil
}
