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

package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestPuzzleServer(t *testing.T) {
	server := NewPuzzleServer(t, "input data\n", "reply page")

	resp, err := http.Get(server.URL + "/2023/day/5/input")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "input data\n" {
		t.Errorf("GET body = %q", body)
	}

	resp, err = http.Post(server.URL+"/2023/day/5/answer", "application/x-www-form-urlencoded", strings.NewReader("level=1&answer=42"))
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "reply page" {
		t.Errorf("POST body = %q", body)
	}

	reqs := server.Requests()
	if len(reqs) != 2 || server.RequestCount() != 2 {
		t.Fatalf("recorded %d requests, want 2", len(reqs))
	}
	if reqs[1].Method != http.MethodPost || reqs[1].Body != "level=1&answer=42" {
		t.Errorf("second request = %+v", reqs[1])
	}
}

func TestErrorServer(t *testing.T) {
	server := NewErrorServer(t, http.StatusBadRequest, "Puzzle inputs differ by user.")

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnswerPage(t *testing.T) {
	page := AnswerPage("hello")
	if !strings.Contains(page, "<main>") || !strings.Contains(page, "<p>hello</p>") {
		t.Errorf("AnswerPage() = %q", page)
	}
}
