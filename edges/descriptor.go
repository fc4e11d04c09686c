package edges

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"
)

// DescriptorExt is appended to an edge file path to locate its descriptor.
const DescriptorExt = ".ini"

// ErrNoDescriptor is returned by LoadDescriptor when no descriptor exists.
var ErrNoDescriptor = errors.New("no graph descriptor")

// Descriptor describes an edge file:
//
//	[graph]
//	name = "small"
//	type = 0
//	vertices = 7
//	edges = 9
//
// Type 0 is the unweighted two-field record read by this package.
type Descriptor struct {
	Graph struct {
		Name     string
		Type     int
		Vertices int
		Edges    int
	}
}

// DescriptorPath returns the descriptor path for an edge file.
func DescriptorPath(edgeFile string) string {
	return edgeFile + DescriptorExt
}

// LoadDescriptor reads the descriptor of edgeFile. Unknown sections and
// variables are ignored.
func LoadDescriptor(edgeFile string) (*Descriptor, error) {
	path := DescriptorPath(edgeFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoDescriptor
	}

	var desc Descriptor
	if err := gcfg.FatalOnly(gcfg.ReadFileInto(&desc, path)); err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return &desc, nil
}

var descriptorQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// WriteFile writes the descriptor of edgeFile.
func (d *Descriptor) WriteFile(edgeFile string) error {
	var b strings.Builder
	b.WriteString("[graph]\n")
	fmt.Fprintf(&b, "name = \"%s\"\n", descriptorQuoter.Replace(d.Graph.Name))
	fmt.Fprintf(&b, "type = %d\n", d.Graph.Type)
	fmt.Fprintf(&b, "vertices = %d\n", d.Graph.Vertices)
	fmt.Fprintf(&b, "edges = %d\n", d.Graph.Edges)
	return os.WriteFile(DescriptorPath(edgeFile), []byte(b.String()), 0666)
}
