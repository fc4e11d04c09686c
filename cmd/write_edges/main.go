// Command write_edges encodes a text edge list into a binary edge file.
//
//	write_edges -out graph.bin [-in edges.txt] [-ini] [-name small]
//	write_edges -out graph.bin -sample
//
// Input lines hold a source and destination id separated by whitespace.
// Blank lines and lines starting with '#' are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"edgestream/edges"
)

const (
	ExitSuccess    = 0
	ExitUsage      = 1
	ExitIOError    = 2
	ExitParseError = 3
)

// sampleGraph is a small seven-vertex graph used for smoke tests.
var sampleGraph = []edges.Edge{
	{Src: 1, Dst: 4}, {Src: 1, Dst: 6},
	{Src: 2, Dst: 1}, {Src: 2, Dst: 5}, {Src: 2, Dst: 6},
	{Src: 3, Dst: 1}, {Src: 3, Dst: 4},
	{Src: 4, Dst: 1},
	{Src: 5, Dst: 1},
}

func main() {
	os.Exit(Main(os.Args[1:], os.Stdin, os.Stderr))
}

type parseError struct {
	line int
	msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.msg)
}

// Main runs the command with args (program name excluded) and returns the
// exit status. stdin is read when -in is not given.
func Main(args []string, stdin io.Reader, stderr io.Writer) int {
	logger := log.New(stderr, "write_edges: ", 0)

	fs := flag.NewFlagSet("write_edges", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts struct {
		In     string
		Out    string
		Name   string
		Ini    bool
		Sample bool
	}
	fs.StringVar(&opts.In, "in", "", "text edge list to read (default stdin)")
	fs.StringVar(&opts.Out, "out", "", "binary edge file to write")
	fs.StringVar(&opts.Name, "name", "", "graph name for the descriptor (default base of -out)")
	fs.BoolVar(&opts.Ini, "ini", false, "also write a <out>.ini descriptor")
	fs.BoolVar(&opts.Sample, "sample", false, "write the built-in sample graph instead of reading input")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if opts.Out == "" || fs.NArg() != 0 {
		fmt.Fprintln(stderr, "usage: write_edges -out <file> [-in <file>] [-ini] [-name <name>] [-sample]")
		return ExitUsage
	}

	var list []edges.Edge
	if opts.Sample {
		list = sampleGraph
	} else {
		in := stdin
		if opts.In != "" {
			f, err := os.Open(opts.In)
			if err != nil {
				logger.Println(err)
				return ExitIOError
			}
			defer f.Close()
			in = f
		}
		var err error
		if list, err = parseEdges(in); err != nil {
			logger.Printf("%s: %v", inputName(opts.In), err)
			if _, ok := err.(*parseError); ok {
				return ExitParseError
			}
			return ExitIOError
		}
	}

	if err := writeFile(opts.Out, list); err != nil {
		logger.Println(err)
		return ExitIOError
	}

	if opts.Ini {
		name := opts.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(opts.Out), filepath.Ext(opts.Out))
		}
		if err := describe(name, list).WriteFile(opts.Out); err != nil {
			logger.Println(err)
			return ExitIOError
		}
	}

	logger.Println(len(list), "edges written to", opts.Out)
	return ExitSuccess
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

func parseEdges(r io.Reader) ([]edges.Edge, error) {
	var list []edges.Edge
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &parseError{line, fmt.Sprintf("want 2 fields, got %d", len(fields))}
		}
		src, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, &parseError{line, fmt.Sprintf("source id %q: %v", fields[0], err.(*strconv.NumError).Err)}
		}
		dst, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, &parseError{line, fmt.Sprintf("destination id %q: %v", fields[1], err.(*strconv.NumError).Err)}
		}
		list = append(list, edges.Edge{Src: edges.VertexID(src), Dst: edges.VertexID(dst)})
	}
	return list, sc.Err()
}

func writeFile(path string, list []edges.Edge) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return edges.WriteAll(f, list)
}

// describe sizes the vertex range as max id + 1, matching how partitioners
// split [0, vertices) into equal ranges.
func describe(name string, list []edges.Edge) *edges.Descriptor {
	var desc edges.Descriptor
	desc.Graph.Name = name
	desc.Graph.Edges = len(list)
	for _, e := range list {
		for _, v := range []edges.VertexID{e.Src, e.Dst} {
			if int(v)+1 > desc.Graph.Vertices {
				desc.Graph.Vertices = int(v) + 1
			}
		}
	}
	return &desc
}
