package edges

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ncw/directio"
)

func TestOpen_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")
	d, err := Open(path)
	if d != nil {
		t.Fatalf("expected nil decoder")
	}
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var oe *OpenError
	if !errors.As(err, &oe) || oe.Path != path {
		t.Fatalf("expected *OpenError for %s, got %#v", path, err)
	}
}

func TestOpen_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file modes")
	}
	path := writeTemp(t, "locked.bin", records([2]int32{1, 2}))
	if err := os.Chmod(path, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	d, err := Open(writeTemp(t, "empty.bin", nil))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	if _, err := d.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestOpen_AcrossBlockBoundaries(t *testing.T) {
	perBlock := directio.BlockSize / RecordSize
	for _, n := range []int{1, perBlock - 1, perBlock, perBlock + 1, 3*perBlock + 7} {
		var pairs [][2]int32
		var want []Edge
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]int32{int32(i), int32(-i)})
			want = append(want, Edge{VertexID(i), VertexID(-i)})
		}

		d, err := Open(writeTemp(t, "graph.bin", records(pairs...)))
		if err != nil {
			t.Fatalf("n=%d: open: %v", n, err)
		}
		got, err := drain(t, d)
		d.Close()
		if err != io.EOF {
			t.Fatalf("n=%d: expected io.EOF, got %v", n, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("n=%d: decoded %d edges, want %d", n, len(got), len(want))
		}
	}
}

func TestOpen_TruncatedAfterFullBlock(t *testing.T) {
	perBlock := directio.BlockSize / RecordSize
	pairs := make([][2]int32, perBlock)
	data := append(records(pairs...), 1, 2, 3, 4, 5)

	d, err := Open(writeTemp(t, "tail.bin", data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	got, err := drain(t, d)
	if len(got) != perBlock {
		t.Fatalf("decoded %d edges, want %d", len(got), perBlock)
	}
	var te *TruncatedError
	if !errors.As(err, &te) || te.Offset != int64(directio.BlockSize) || te.Have != 5 {
		t.Fatalf("expected truncation at %d with 5 bytes, got %v", directio.BlockSize, err)
	}
}

func TestOpen_DirectoryFailsOnRead(t *testing.T) {
	d, err := Open(t.TempDir())
	if err != nil {
		if !errors.Is(err, ErrIO) {
			t.Fatalf("expected ErrIO, got %v", err)
		}
		return
	}
	defer d.Close()

	if _, err := d.Next(); !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
