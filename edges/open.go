package edges

import (
	"bufio"
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/ncw/directio"
)

// Open opens the edge file at path for sequential reading.
//
// The file is read in aligned blocks with O_DIRECT. Filesystems that reject
// O_DIRECT (tmpfs, some overlays) are read through the page cache instead.
// Failures are returned as *OpenError.
func Open(path string) (*Decoder, error) {
	f, err := directio.OpenFile(path, os.O_RDONLY, 0666)
	if err == nil {
		br := newBlockReader(f)
		if !errors.Is(br.fill(), syscall.EINVAL) {
			return &Decoder{r: br, c: f}, nil
		}
		f.Close()
	} else if !errors.Is(err, syscall.EINVAL) {
		return nil, newOpenError(path, err)
	}

	f, err = os.Open(path)
	if err != nil {
		return nil, newOpenError(path, err)
	}
	return &Decoder{r: bufio.NewReaderSize(f, directio.BlockSize), c: f}, nil
}

// blockReader serves bytes out of directio-aligned blocks.
type blockReader struct {
	f     *os.File
	block []byte
	pos   int
	n     int
	err   error
}

func newBlockReader(f *os.File) *blockReader {
	return &blockReader{f: f, block: directio.AlignedBlock(directio.BlockSize)}
}

func (b *blockReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for b.pos == b.n {
		if b.err != nil {
			return 0, b.err
		}
		b.fill()
	}
	n := copy(p, b.block[b.pos:b.n])
	b.pos += n
	return n, nil
}

// fill reads the next block. A block that is not a whole number of
// alignment units can only be the tail of the file, and the file offset is
// no longer aligned after it, so it ends the stream.
func (b *blockReader) fill() error {
	n, err := b.f.Read(b.block)
	b.pos, b.n = 0, n
	switch {
	case err != nil:
	case n == 0:
		err = io.ErrNoProgress
	case n%directio.AlignSize != 0:
		err = io.EOF
	}
	b.err = err
	return err
}
