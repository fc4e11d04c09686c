// Command read_edges prints every edge of a binary edge file.
//
//	read_edges <input>
//
// Each edge is written to stdout as "edge: (<src> <dst>)". Diagnostics go to
// stderr. Exit status is 0 on a clean end of file, 1 on bad usage, 2 when the
// input cannot be opened, 3 when it is truncated or cannot be read, and 4 when
// stdout cannot be written.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"edgestream/edges"
)

const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitOpenError   = 2
	ExitDecodeError = 3
	ExitWriteError  = 4
)

const usage = "usage: read_edges <input>"

func main() {
	os.Exit(Main(os.Args[1:], os.Stdout, os.Stderr))
}

// Main runs the command with args (program name excluded) and returns the
// exit status.
func Main(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "read_edges: ", 0)

	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return ExitUsage
	}
	path := args[0]

	dec, err := edges.Open(path)
	if err != nil {
		logger.Println(err)
		return ExitOpenError
	}
	defer func() {
		if err := dec.Close(); err != nil {
			logger.Println("close:", err)
		}
	}()

	out := bufio.NewWriter(stdout)
	count, err := printEdges(dec, out)

	// Edges decoded before a failure stay emitted.
	if ferr := out.Flush(); ferr != nil {
		logger.Println("write:", ferr)
		return ExitWriteError
	}

	var werr *writeError
	switch {
	case err == nil:
	case errors.As(err, &werr):
		logger.Println("write:", werr.err)
		return ExitWriteError
	default:
		logger.Printf("%s: %v (after %d edges)", path, err, count)
		return ExitDecodeError
	}

	checkDescriptor(logger, path, count)
	return ExitSuccess
}

type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func printEdges(dec *edges.Decoder, out io.Writer) (int, error) {
	count := 0
	for {
		e, err := dec.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if _, err := fmt.Fprintf(out, "edge: (%d %d)\n", e.Src, e.Dst); err != nil {
			return count, &writeError{err}
		}
		count++
	}
}

// checkDescriptor warns when a descriptor next to the input disagrees with
// what was decoded. It never changes the exit status.
func checkDescriptor(logger *log.Logger, path string, count int) {
	desc, err := edges.LoadDescriptor(path)
	if errors.Is(err, edges.ErrNoDescriptor) {
		return
	}
	if err != nil {
		logger.Println("warning:", err)
		return
	}
	if desc.Graph.Type != 0 {
		logger.Printf("warning: %s declares edge type %d, read as unweighted",
			edges.DescriptorPath(path), desc.Graph.Type)
	}
	if desc.Graph.Edges != 0 && desc.Graph.Edges != count {
		logger.Printf("warning: %s declares %d edges, decoded %d",
			edges.DescriptorPath(path), desc.Graph.Edges, count)
	}
}
