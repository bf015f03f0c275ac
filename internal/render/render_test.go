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

package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("https://adventofcode.com")
	require.NoError(t, err)
	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "right answer with link",
			page: `<html><body><header><a href="/">Advent of Code</a></header>
<main>
<article><p>That's the right answer!  You are <em>one gold star</em> closer to saving Christmas. <a href="/2023/day/5#part2">[Continue to Part Two]</a></p></article>
</main></body></html>`,
			want: "That's the right answer! You are one gold star closer to saving Christmas. [Continue to Part Two][1]\n" +
				"\n" +
				"[1]: https://adventofcode.com/2023/day/5#part2\n",
		},
		{
			name: "paragraphs and mixed links",
			page: `<main><article><p>First.</p><p>See <a href="https://example.com/x">this</a> and <a href="2">that</a>.</p></article></main>`,
			want: "First.\n\nSee this[1] and that[2].\n\n[1]: https://example.com/x\n[2]: https://adventofcode.com/2\n",
		},
		{
			name: "no links",
			page: `<main><article><p>You gave an answer too recently.</p></article></main>`,
			want: "You gave an answer too recently.\n",
		},
		{
			name: "preformatted text and scripts",
			page: "<main><pre><code>1 2\n  3</code></pre><script>var x = 1;</script></main>",
			want: "1 2\n  3\n",
		},
		{
			name: "list items and line breaks",
			page: `<main><ul><li>one</li><li>two<br>three</li></ul></main>`,
			want: "- one\n\n- two\nthree\n",
		},
		{
			name: "anchor without href is plain text",
			page: `<main><p><a name="part2">Part Two</a></p></main>`,
			want: "Part Two\n",
		},
	}

	r := newTestRenderer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Parse(tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_OnlyMainIsRendered(t *testing.T) {
	r := newTestRenderer(t)
	got, err := r.Parse(`<header><p>Header text</p></header><main><p>Body</p></main><footer>Footer</footer>`)
	require.NoError(t, err)
	assert.Equal(t, "Body\n", got)
}

func TestParse_MissingMain(t *testing.T) {
	r := newTestRenderer(t)

	for _, page := range []string{
		"",
		"plain text reply",
		`<html><body><article><p>That's the right answer!</p></article></body></html>`,
	} {
		_, err := r.Parse(page)
		assert.True(t, errors.Is(err, arverrors.ErrParse), "page %q: got %v", page, err)
	}
}

func TestNew_RejectsRelativeOrigin(t *testing.T) {
	_, err := New("adventofcode.com")
	assert.True(t, errors.Is(err, arverrors.ErrConfiguration))

	_, err = New("://bad")
	assert.True(t, errors.Is(err, arverrors.ErrConfiguration))
}
