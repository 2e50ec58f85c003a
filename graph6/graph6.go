package graph6

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/overclust/graph"
)

// Sentinel errors for malformed graph6 input.
var (
	// ErrInvalidByte indicates a byte outside the printable range [63,126].
	ErrInvalidByte = errors.New("graph6: byte out of range [63,126]")

	// ErrTruncated indicates the string ends before all adjacency bits
	// (or the vertex count itself) could be read.
	ErrTruncated = errors.New("graph6: truncated input")
)

const (
	offset    = 63  // every emitted byte is the 6-bit group plus this
	maxByte   = 126 // highest legal byte; also the long-form marker
	shortMax  = 62  // largest n encodable in a single byte
	mediumMax = 258047
)

// Decode parses a graph6 string into a graph.
//
// Complexity: O(n²)
func Decode(s string) (*graph.Graph, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < offset || s[i] > maxByte {
			return nil, fmt.Errorf("%w: byte %d at position %d", ErrInvalidByte, s[i], i)
		}
	}

	n, idx, err := decodeOrder(s)
	if err != nil {
		return nil, err
	}

	g := graph.New(n)

	bitBuffer := 0
	bitCount := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if bitCount == 0 {
				if idx >= len(s) {
					return nil, fmt.Errorf("%w: need more adjacency bytes for n=%d", ErrTruncated, n)
				}
				bitBuffer = int(s[idx]) - offset
				idx++
				bitCount = 6
			}
			bitCount--
			if (bitBuffer>>bitCount)&1 == 1 {
				g.AddEdge(i, j)
			}
		}
	}

	return g, nil
}

// decodeOrder reads the vertex count and returns it together with the
// index of the first adjacency byte.
func decodeOrder(s string) (n, idx int, err error) {
	if len(s) == 0 {
		return 0, 0, fmt.Errorf("%w: empty string", ErrTruncated)
	}
	if s[0] != maxByte {
		return int(s[0]) - offset, 1, nil
	}
	if len(s) >= 2 && s[1] == maxByte {
		// 126 126 + six bytes: 36-bit count.
		if len(s) < 8 {
			return 0, 0, fmt.Errorf("%w: incomplete 36-bit vertex count", ErrTruncated)
		}
		for i := 2; i < 8; i++ {
			n = n<<6 | (int(s[i]) - offset)
		}

		return n, 8, nil
	}
	// 126 + three bytes: 18-bit count.
	if len(s) < 4 {
		return 0, 0, fmt.Errorf("%w: incomplete 18-bit vertex count", ErrTruncated)
	}
	for i := 1; i < 4; i++ {
		n = n<<6 | (int(s[i]) - offset)
	}

	return n, 4, nil
}

// Encode renders g as a graph6 string, the exact inverse of Decode.
//
// Complexity: O(n²)
func Encode(g *graph.Graph) string {
	n := g.N()

	var b strings.Builder
	encodeOrder(&b, n)

	bitBuffer := 0
	bitCount := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			bitBuffer <<= 1
			if g.HasEdge(i, j) {
				bitBuffer |= 1
			}
			bitCount++
			if bitCount == 6 {
				b.WriteByte(byte(bitBuffer + offset))
				bitBuffer = 0
				bitCount = 0
			}
		}
	}
	if bitCount > 0 {
		bitBuffer <<= 6 - bitCount
		b.WriteByte(byte(bitBuffer + offset))
	}

	return b.String()
}

// encodeOrder writes the vertex count in the shortest legal form.
func encodeOrder(b *strings.Builder, n int) {
	switch {
	case n <= shortMax:
		b.WriteByte(byte(n + offset))
	case n <= mediumMax:
		b.WriteByte(maxByte)
		for shift := 12; shift >= 0; shift -= 6 {
			b.WriteByte(byte((n>>shift)&0x3f + offset))
		}
	default:
		b.WriteByte(maxByte)
		b.WriteByte(maxByte)
		for shift := 30; shift >= 0; shift -= 6 {
			b.WriteByte(byte((n>>shift)&0x3f + offset))
		}
	}
}
