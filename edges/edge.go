package edges

import (
	"encoding/binary"
	"fmt"
)

const (
	// VertexIDSize is the width in bytes of one encoded vertex id.
	VertexIDSize = 4
	// RecordSize is the width in bytes of one encoded edge.
	RecordSize = 2 * VertexIDSize
)

// VertexID identifies a vertex. Every bit pattern is a valid id.
type VertexID int32

// Edge is one directed edge as stored in a record.
type Edge struct {
	Src VertexID
	Dst VertexID
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d %d)", e.Src, e.Dst)
}

func decodeRecord(b []byte) Edge {
	return Edge{
		Src: VertexID(int32(binary.LittleEndian.Uint32(b[0:VertexIDSize]))),
		Dst: VertexID(int32(binary.LittleEndian.Uint32(b[VertexIDSize:RecordSize]))),
	}
}

func encodeRecord(b []byte, e Edge) {
	binary.LittleEndian.PutUint32(b[0:VertexIDSize], uint32(e.Src))
	binary.LittleEndian.PutUint32(b[VertexIDSize:RecordSize], uint32(e.Dst))
}
