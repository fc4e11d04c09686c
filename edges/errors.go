package edges

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the input path cannot be opened for reading.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO indicates any other failure opening or reading the input.
	ErrIO = errors.New("i/o error")

	// ErrTruncated indicates the stream ended partway through a record.
	ErrTruncated = errors.New("truncated record")

	// ErrClosed is returned by Next after Close.
	ErrClosed = errors.New("decoder closed")
)

// OpenError reports a failure to open an edge file.
// It matches both its Kind and the underlying error with errors.Is().
type OpenError struct {
	Path string
	Kind error // ErrNotFound, ErrPermissionDenied or ErrIO
	Err  error
}

func newOpenError(path string, err error) *OpenError {
	kind := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	}
	return &OpenError{Path: path, Kind: kind, Err: err}
}

func (e *OpenError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *OpenError) Unwrap() []error { return []error{e.Kind, e.Err} }

// TruncatedError reports a stream that ended inside a record.
// Wraps ErrTruncated for errors.Is() compatibility.
type TruncatedError struct {
	Offset int64 // byte offset of the incomplete record
	Have   int   // bytes of the record that were present, 1..RecordSize-1
}

func (e *TruncatedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Have < VertexIDSize {
		return fmt.Sprintf("%s at offset %d: source id has %d of %d bytes",
			ErrTruncated, e.Offset, e.Have, VertexIDSize)
	}
	if e.Have == VertexIDSize {
		return fmt.Sprintf("%s at offset %d: source id without destination id",
			ErrTruncated, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: destination id has %d of %d bytes",
		ErrTruncated, e.Offset, e.Have-VertexIDSize, VertexIDSize)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }
