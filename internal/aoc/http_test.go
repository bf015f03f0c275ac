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
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/internal/testutil"
	"github.com/arrivehq/arrive/pkg/version"
)

func TestFetchInput_Request(t *testing.T) {
	server := testutil.NewPuzzleServer(t, "", "")
	client := NewHTTPClient(server.URL)

	_, err := client.FetchInput(context.Background(), "s3cr3t", 2023, 5)
	require.NoError(t, err)

	reqs := server.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/2023/day/5/input", reqs[0].Path)
	assert.Equal(t, "session=s3cr3t", reqs[0].Header.Get("Cookie"))
	assert.Equal(t, version.UserAgent(), reqs[0].Header.Get("User-Agent"))
}

func TestFetchInput_BodyVerbatim(t *testing.T) {
	input := "  3   4\n4 3\n\n\n"
	server := testutil.NewPuzzleServer(t, input, "")
	client := NewHTTPClient(server.URL + "/")

	got, err := client.FetchInput(context.Background(), "tok", 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestSubmitAnswer_Request(t *testing.T) {
	server := testutil.NewPuzzleServer(t, "", testutil.AnswerPage("That's the right answer!"))
	client := NewHTTPClient(server.URL, WithUserAgent("arrive-test"))

	body, err := client.SubmitAnswer(context.Background(), "tok", 2022, 11, 2, "a b&c=1")
	require.NoError(t, err)
	assert.Contains(t, body, "That's the right answer!")

	reqs := server.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/2022/day/11/answer", reqs[0].Path)
	assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].Header.Get("Content-Type"))
	assert.Equal(t, "session=tok", reqs[0].Header.Get("Cookie"))
	assert.Equal(t, "arrive-test", reqs[0].Header.Get("User-Agent"))
	assert.Equal(t, "level=2&answer=a+b%26c%3D1", reqs[0].Body)
}

func TestAnswerForm(t *testing.T) {
	tests := []struct {
		level  int
		answer string
		want   string
	}{
		{1, "42", "level=1&answer=42"},
		{2, "-17", "level=2&answer=-17"},
		{1, "ABC DEF", "level=1&answer=ABC+DEF"},
	}
	for _, tt := range tests {
		if got := answerForm(tt.level, tt.answer); got != tt.want {
			t.Errorf("answerForm(%d, %q) = %q, want %q", tt.level, tt.answer, got, tt.want)
		}
	}
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad request", http.StatusBadRequest, "Puzzle inputs differ by user.  Please log in to get your puzzle input."},
		{"not found", http.StatusNotFound, "404 Not Found"},
		{"server error", http.StatusInternalServerError, "Internal Server Error"},
		{"redirect-free non-200", http.StatusAccepted, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewErrorServer(t, tt.status, tt.body)
			client := NewHTTPClient(server.URL)

			_, err := client.FetchInput(context.Background(), "tok", 2023, 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, arverrors.ErrHTTPStatus))

			var statusErr *arverrors.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.body, statusErr.Body)

			_, err = client.SubmitAnswer(context.Background(), "tok", 2023, 1, 1, "1")
			assert.True(t, errors.Is(err, arverrors.ErrHTTPStatus))
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	server := testutil.NewPuzzleServer(t, "", "")
	url := server.URL
	server.Close()

	client := NewHTTPClient(url)
	_, err := client.FetchInput(context.Background(), "tok", 2023, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arverrors.ErrNetworkFailure), "got %v", err)
	assert.False(t, errors.Is(err, arverrors.ErrHTTPStatus))
}

func TestUserAgentTransportLeavesRequestUntouched(t *testing.T) {
	var seen string
	rt := newUserAgentTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("User-Agent")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	}), "ua/1.0")

	req, err := http.NewRequest(http.MethodGet, "https://example.invalid/", strings.NewReader(""))
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "ua/1.0", seen)
	assert.Empty(t, req.Header.Get("User-Agent"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestInvalidTokenIsNotANetworkFailure(t *testing.T) {
	server := testutil.NewPuzzleServer(t, "input", "")
	client := NewHTTPClient(server.URL)

	for _, token := range []string{"abc\x00def", "line\nbreak", "a;b", "two words"} {
		_, err := client.FetchInput(context.Background(), token, 2023, 1)
		assert.True(t, errors.Is(err, arverrors.ErrConfiguration), "token %q: got %v", token, err)
		assert.False(t, errors.Is(err, arverrors.ErrNetworkFailure), "token %q", token)
		assert.NotContains(t, err.Error(), token)
	}
	assert.Zero(t, server.RequestCount())
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		token   string
		wantErr bool
	}{
		{"53616c7465645f5f0123456789abcdef", false},
		{"", true},
		{"tok\x7f", true},
		{"tok\r\n", true},
		{"tok;path=/", true},
		{"tok\ttab", true},
	}
	for _, tt := range tests {
		err := ValidateToken(tt.token)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
		}
	}
}
