package output

import (
	"bufio"
	"io"
)

// TextWriter writes each record as its plain document text. Records are
// separated by a blank line.
type TextWriter struct {
	w       *bufio.Writer
	written int
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write writes one record.
func (w *TextWriter) Write(rec Record) error {
	if w.written > 0 {
		if _, err := w.w.WriteString("\n"); err != nil {
			return err
		}
	}
	if _, err := w.w.WriteString(rec.Text()); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	w.written++
	return w.w.Flush()
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
