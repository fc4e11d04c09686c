package edges

import (
	"bufio"
	"io"
)

// Encoder writes edges in the record layout read by Decoder.
// Output is buffered; call Flush when done.
type Encoder struct {
	w   *bufio.Writer
	buf [RecordSize]byte
	n   int64
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode appends one record.
func (enc *Encoder) Encode(e Edge) error {
	encodeRecord(enc.buf[:], e)
	if _, err := enc.w.Write(enc.buf[:]); err != nil {
		return err
	}
	enc.n++
	return nil
}

// Count returns the number of records encoded so far.
func (enc *Encoder) Count() int64 { return enc.n }

func (enc *Encoder) Flush() error { return enc.w.Flush() }

// WriteAll encodes edges to w in order.
func WriteAll(w io.Writer, edges []Edge) error {
	enc := NewEncoder(w)
	for _, e := range edges {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return enc.Flush()
}
