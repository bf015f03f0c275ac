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

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

// SubmitCall records the arguments of one SubmitAnswer call.
type SubmitCall struct {
	Token  string
	Year   uint
	Day    uint
	Level  int
	Answer string
}

// FetchCall records the arguments of one FetchInput call.
type FetchCall struct {
	Token string
	Year  uint
	Day   uint
}

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Input is returned by FetchInput
	Input string

	// AnswerReply is returned by SubmitAnswer
	AnswerReply string

	// Error to return
	Error error

	// Behavior flags
	ShouldFailNetwork bool
	StatusCode        int

	// Track calls for verification
	FetchCalls  []FetchCall
	SubmitCalls []SubmitCall
}

// NewMockClient creates a mock client that serves input and replies with reply.
func NewMockClient(input, reply string) *MockClient {
	return &MockClient{Input: input, AnswerReply: reply}
}

// CallCount returns the number of requests the mock has served.
func (m *MockClient) CallCount() int {
	return len(m.FetchCalls) + len(m.SubmitCalls)
}

// FetchInput implements the Client interface
func (m *MockClient) FetchInput(ctx context.Context, token string, year, day uint) (string, error) {
	m.FetchCalls = append(m.FetchCalls, FetchCall{Token: token, Year: year, Day: day})
	if err := m.fail(ctx); err != nil {
		return "", err
	}
	return m.Input, nil
}

// SubmitAnswer implements the Client interface
func (m *MockClient) SubmitAnswer(ctx context.Context, token string, year, day uint, level int, answer string) (string, error) {
	m.SubmitCalls = append(m.SubmitCalls, SubmitCall{Token: token, Year: year, Day: day, Level: level, Answer: answer})
	if err := m.fail(ctx); err != nil {
		return "", err
	}
	return m.AnswerReply, nil
}

func (m *MockClient) fail(ctx context.Context) error {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailNetwork {
		return fmt.Errorf("%w: dial tcp: connection refused", arverrors.ErrNetworkFailure)
	}
	if m.StatusCode != 0 {
		return &arverrors.StatusError{StatusCode: m.StatusCode, Body: "mock status"}
	}
	return m.Error
}
