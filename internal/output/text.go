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

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Star boxes, first star then second.
const (
	boxEmpty   = "☐"
	boxChecked = "🗹"
)

// TextWriter writes one "YYYY/DD <boxes>" line per record. The selected
// puzzle is rendered bold when the output supports it.
type TextWriter struct {
	out      io.Writer
	selected lipgloss.Style
}

// NewTextWriter creates a TextWriter. Styling is detected from w, so plain
// buffers and pipes receive no escape sequences.
func NewTextWriter(w io.Writer) *TextWriter {
	r := lipgloss.NewRenderer(w)
	return &TextWriter{
		out:      w,
		selected: r.NewStyle().Bold(true),
	}
}

// Write writes a single record line.
func (t *TextWriter) Write(record Record) error {
	line := fmt.Sprintf("%d/%02d %s", record.Year, record.Day, Boxes(record.Stars))
	if record.Selected {
		line = t.selected.Render(line)
	}
	if _, err := fmt.Fprintln(t.out, line); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close is a no-op; the caller owns the underlying writer.
func (t *TextWriter) Close() error { return nil }

// Boxes renders earned stars as two boxes.
func Boxes(stars int) string {
	s := ""
	for i := 0; i < 2; i++ {
		if i < stars {
			s += boxChecked
		} else {
			s += boxEmpty
		}
	}
	return s
}
