// Package jsonl streams tagged values as line-delimited JSON, one
// encoded object per line.
package jsonl

import (
	"bufio"
	"bytes"
	"io"

	"github.com/srand/tagjson"
)

// maxLineSize bounds a single encoded line; the bufio.Scanner default
// of 64 KB is too small for large object graphs.
const maxLineSize = 16 * 1024 * 1024

// Writer writes one tagged value per line to an underlying writer.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write encodes v and appends it as a single line.
func (w *Writer) Write(v any) error {
	data, err := tagjson.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Reader reads one tagged value per line from an underlying reader.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}
}

// Read decodes the next non-blank line. It returns io.EOF when the
// input is exhausted.
func (r *Reader) Read() (any, error) {
	for r.scanner.Scan() {
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		return tagjson.Unmarshal(line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// ReadAll decodes every remaining line in order.
func (r *Reader) ReadAll() ([]any, error) {
	var out []any
	for {
		v, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
