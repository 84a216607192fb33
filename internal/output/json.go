package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONWriter buffers records and writes them on Flush: one record as an
// object, several as an array.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	records []Record
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

// Write buffers a record.
func (w *JSONWriter) Write(rec Record) error {
	w.records = append(w.records, rec)
	return nil
}

// Flush writes the buffered records and resets the buffer.
func (w *JSONWriter) Flush() error {
	if len(w.records) == 0 {
		return w.w.Flush()
	}

	var v any = w.records
	if len(w.records) == 1 {
		v = w.records[0]
	}

	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	if w.pretty {
		enc.SetIndent("", w.indent)
	}
	if err := enc.Encode(v); err != nil {
		return err
	}

	w.records = nil
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes one JSON object per line as records arrive.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single record as a JSON line.
func (w *JSONLWriter) Write(rec Record) error {
	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return w.w.Flush()
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
