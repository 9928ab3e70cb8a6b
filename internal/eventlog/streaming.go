package eventlog

// streaming.go provides reader/writer wrappers used around the CSV codec:
//
//   - BOMSkippingReader: drops a leading UTF-8 BOM (0xEF 0xBB 0xBF)
//   - CountingReader / CountingWriter: track bytes for debug logging
//
// Tags are kept byte-for-byte, so invalid UTF-8 is passed through rather
// than sanitized.

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
// Exports that pass through Windows tools often gain one, and it would
// otherwise end up in the first tag_number.
type BOMSkippingReader struct {
	r       *bufio.Reader
	checked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{r: bufio.NewReader(r)}
}

// Read implements io.Reader. The BOM check happens on the first call.
func (b *BOMSkippingReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		// A Peek error is kept by bufio and surfaces on the Read below.
		head, _ := b.r.Peek(len(utf8BOM))
		if bytes.Equal(head, utf8BOM) {
			_, _ = b.r.Discard(len(utf8BOM))
		}
	}
	return b.r.Read(p)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.BytesRead += int64(n)
	return n, err
}

// CountingWriter wraps an io.Writer to track bytes written.
type CountingWriter struct {
	writer       io.Writer
	BytesWritten int64
}

// NewCountingWriter creates a counting writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{writer: w}
}

// Write implements io.Writer.
func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.writer.Write(p)
	c.BytesWritten += int64(n)
	return n, err
}

// wrapForReading strips the BOM and counts bytes, in that order, so the
// count reflects what the source actually delivered.
func wrapForReading(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewBOMSkippingReader(counter), counter
}
