package edges

import (
	"fmt"
	"io"
)

// Decoder reads edges one record at a time from the front of a stream.
//
// A Decoder is not safe for concurrent use. Once Next has returned an error
// every later call returns that same error.
type Decoder struct {
	r   io.Reader
	c   io.Closer
	buf [RecordSize]byte
	off int64
	err error
}

// NewDecoder returns a Decoder reading records from r, starting at r's
// current position. If r is an io.Closer, Close closes it.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{r: r}
	if c, ok := r.(io.Closer); ok {
		d.c = c
	}
	return d
}

// Next decodes the next edge. It returns io.EOF when the stream ends exactly
// on a record boundary, a *TruncatedError when it ends inside a record, and
// an error wrapping ErrIO when the underlying read fails.
func (d *Decoder) Next() (Edge, error) {
	if d.err != nil {
		return Edge{}, d.err
	}
	e, err := d.next()
	if err != nil {
		d.err = err
		return Edge{}, err
	}
	return e, nil
}

func (d *Decoder) next() (Edge, error) {
	n, err := io.ReadFull(d.r, d.buf[:VertexIDSize])
	switch err {
	case nil:
	case io.EOF:
		return Edge{}, io.EOF
	case io.ErrUnexpectedEOF:
		return Edge{}, &TruncatedError{Offset: d.off, Have: n}
	default:
		return Edge{}, d.readError(err)
	}

	m, err := io.ReadFull(d.r, d.buf[VertexIDSize:])
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		return Edge{}, &TruncatedError{Offset: d.off, Have: n + m}
	default:
		return Edge{}, d.readError(err)
	}

	d.off += RecordSize
	return decodeRecord(d.buf[:]), nil
}

func (d *Decoder) readError(err error) error {
	return fmt.Errorf("%w: record at offset %d: %w", ErrIO, d.off, err)
}

// Offset returns the number of bytes consumed by successfully decoded records.
func (d *Decoder) Offset() int64 { return d.off }

// Close releases the underlying stream. It is safe to call more than once;
// only the first call closes anything.
func (d *Decoder) Close() error {
	d.err = ErrClosed
	if d.c == nil {
		return nil
	}
	c := d.c
	d.c = nil
	return c.Close()
}

// ReadAll decodes every edge in r. On failure it returns the edges decoded
// before the failing record together with the error.
func ReadAll(r io.Reader) ([]Edge, error) {
	d := &Decoder{r: r}
	var edges []Edge
	for {
		e, err := d.Next()
		if err == io.EOF {
			return edges, nil
		}
		if err != nil {
			return edges, err
		}
		edges = append(edges, e)
	}
}
