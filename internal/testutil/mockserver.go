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

// Package testutil provides common test helpers for arrive
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is a request as the mock website saw it.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// MockServer is a stand-in for the puzzle website that records every request.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewMockServer starts a server that records requests and then hands them
// to handler. The server is closed when the test ends.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		m.mu.Lock()
		m.requests = append(m.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		m.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// NewPuzzleServer serves input on every GET and reply on every POST.
func NewPuzzleServer(t *testing.T, input, reply string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_, _ = io.WriteString(w, reply)
			return
		}
		_, _ = io.WriteString(w, input)
	})
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = io.WriteString(w, body)
	})
}

// Requests returns a copy of everything the server has received.
func (m *MockServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// RequestCount returns the number of requests received.
func (m *MockServer) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// AnswerPage wraps message the way the website wraps answer replies.
func AnswerPage(message string) string {
	return `<!DOCTYPE html>
<html lang="en-us">
<head><title>Day 5 - Advent of Code 2023</title><style>body{}</style></head>
<body>
<header><h1 class="title-global"><a href="/">Advent of Code</a></h1></header>
<main>
<article><p>` + message + `</p></article>
</main>
</body>
</html>
`
}
