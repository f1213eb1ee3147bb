package stream

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	srcChunk = 4096
	// Single-byte charsets expand to at most three UTF-8 bytes per input byte.
	dstChunk = 4 * srcChunk
)

// Reader decodes characters from the underlying reader.
//
// Unlike transform.Reader it does not remember io.EOF: once the underlying
// reader has more data (because another handle appended to the same file), a
// later read picks it up.
type Reader struct {
	buf *bufio.Reader
}

// NewReader returns a Reader with the default buffer size.
func NewReader(r io.Reader, e encoding.Encoding) *Reader {
	return NewReaderSize(r, e, DefaultBufferSize)
}

// NewReaderSize returns a Reader whose decoded buffer holds at least size
// bytes.
func NewReaderSize(r io.Reader, e encoding.Encoding, size int) *Reader {
	return &Reader{
		buf: bufio.NewReaderSize(&decoder{
			src: r,
			t:   e.NewDecoder(),
			in:  make([]byte, srcChunk),
			out: make([]byte, dstChunk),
		}, size),
	}
}

// ReadChars reads up to len(chars) characters into chars. It returns io.EOF
// only when no character at all was available.
func (r *Reader) ReadChars(chars []rune) (int, error) {
	for i := range chars {
		c, _, err := r.buf.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return 0, io.EOF
				}
				return i, nil
			}
			return i, err
		}
		chars[i] = c
	}
	return len(chars), nil
}

// decoder is an io.Reader that runs src through t. Incomplete multibyte input
// is carried over to the next call.
type decoder struct {
	src io.Reader
	t   transform.Transformer

	in       []byte
	in0, in1 int

	out        []byte
	out0, out1 int
}

func (d *decoder) Read(p []byte) (int, error) {
	for {
		if d.out0 < d.out1 {
			n := copy(p, d.out[d.out0:d.out1])
			d.out0 += n
			return n, nil
		}

		if d.in0 < d.in1 {
			nDst, nSrc, err := d.t.Transform(d.out, d.in[d.in0:d.in1], false)
			d.in0 += nSrc
			d.out0, d.out1 = 0, nDst
			if err != nil && !errors.Is(err, transform.ErrShortSrc) && !errors.Is(err, transform.ErrShortDst) {
				return 0, err
			}
			if nDst > 0 {
				continue
			}
		}

		if d.in0 > 0 {
			d.in1 = copy(d.in, d.in[d.in0:d.in1])
			d.in0 = 0
		}

		n, err := d.src.Read(d.in[d.in1:])
		d.in1 += n
		if n > 0 {
			continue
		}
		// bufio.Reader bounds repeated empty reads with io.ErrNoProgress.
		return 0, err
	}
}
