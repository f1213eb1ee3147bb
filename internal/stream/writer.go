// Package stream provides buffered character streams that encode to and
// decode from a byte stream with a golang.org/x/text encoding.
package stream

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultBufferSize matches the customary 8 KiB buffer of character streams.
const DefaultBufferSize = 8192

// Writer encodes characters into the underlying writer. Characters the
// encoding cannot represent are replaced with the encoding's replacement byte.
type Writer struct {
	buf *bufio.Writer
	enc *transform.Writer
}

// NewWriter returns a Writer with the default buffer size.
func NewWriter(w io.Writer, e encoding.Encoding) *Writer {
	return NewWriterSize(w, e, DefaultBufferSize)
}

// NewWriterSize returns a Writer whose character buffer holds at least size
// bytes.
func NewWriterSize(w io.Writer, e encoding.Encoding, size int) *Writer {
	enc := transform.NewWriter(w, encoding.ReplaceUnsupported(e.NewEncoder()))
	return &Writer{
		buf: bufio.NewWriterSize(enc, size),
		enc: enc,
	}
}

// WriteChars buffers chars and returns how many were accepted.
func (w *Writer) WriteChars(chars []rune) (int, error) {
	for i, c := range chars {
		if _, err := w.buf.WriteRune(c); err != nil {
			return i, err
		}
	}
	return len(chars), nil
}

// Flush pushes buffered characters through the encoder. Encoder state that
// needs more input (a partial multibyte sequence) stays pending.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Close flushes the buffer and the encoder's final state. It does not close
// the underlying writer.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	return w.enc.Close()
}
