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
	"encoding/json"
	"fmt"
	"io"
	"os"

	arverrors "github.com/arrivehq/arrive/internal/errors"
)

// Writer emits one JSON object per record, newline terminated.
type Writer struct {
	encoder *json.Encoder
	count   int
	file    *os.File
}

// NewWriter creates a Writer on w. Closing it leaves w open.
func NewWriter(w io.Writer) *Writer {
	return &Writer{encoder: json.NewEncoder(w)}
}

// NewFileWriter creates a Writer that owns the file at path, truncating it.
// Close must be called to flush and release the file.
func NewFileWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, arverrors.NewIOError("create status file", path, err)
	}
	return &Writer{encoder: json.NewEncoder(f), file: f}, nil
}

// Write encodes record as a single line.
func (w *Writer) Write(record Record) error {
	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write %d/%02d: %w", record.Year, record.Day, err)
	}
	w.count++
	return nil
}

// Count is the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Close closes the file opened by NewFileWriter.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	if err := w.file.Close(); err != nil {
		return arverrors.NewIOError("close status file", w.file.Name(), err)
	}
	return nil
}
