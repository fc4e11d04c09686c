// Package edges reads and writes headerless binary edge lists.
//
// An edge file is a sequence of fixed-size records with no header, footer,
// length prefix or delimiter:
//
//	[src int32][dst int32] [src int32][dst int32] ...
//
// Each field is a 32-bit two's complement integer stored little-endian, so a
// record is RecordSize (8) bytes and a well-formed file is a multiple of that
// length. A file that ends inside a record is reported as ErrTruncated, never
// as a clean end of stream.
//
// An optional "<file>.ini" descriptor next to the edge file records the graph
// name and its vertex and edge counts. It is informational only.
package edges
