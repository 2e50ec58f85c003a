// Package graph6 implements the graph6 interchange format for
// undirected simple graphs: a single printable line whose first bytes
// encode the vertex count and whose remaining bytes pack the
// upper-triangle adjacency bits, six per byte, each byte offset by +63.
//
// Bit order is column-major over the upper triangle: for i = 1..n-1 and
// j = 0..i-1 the bit for {i,j} is emitted, most significant bit first.
// Unused bits in the final byte are zero on encode and ignored on
// decode, so Decode(Encode(g)) reproduces g bit-exactly.
//
// The vertex count uses the standard three-tier length encoding:
// a single byte for n ≤ 62, the 126-prefixed 18-bit form for
// n ≤ 258047, and the 126 126-prefixed 36-bit form above that.
//
// Decode validates that every byte lies in [63,126] and that the string
// carries enough payload bytes; malformed input yields ErrInvalidByte
// or ErrTruncated instead of silent garbage.
package graph6
