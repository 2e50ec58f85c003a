package graph6_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/overclust/graph"
	"github.com/katalvlaran/overclust/graph6"
)

func TestDecode_Known(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		n, m  int
		edges [][2]int
	}{
		{"empty on two", "A?", 2, 0, nil},
		{"K2", "A_", 2, 1, [][2]int{{0, 1}}},
		{"K3", "Bw", 3, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}}},
		{"K4", "C~", 4, 6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{"P4 path", "Ch", 4, 3, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graph6.Decode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.N())
			assert.Equal(t, tc.m, g.M())
			for _, e := range tc.edges {
				assert.True(t, g.HasEdge(e[0], e[1]), "missing edge %v", e)
			}
		})
	}
}

func TestEncode_Known(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	assert.Equal(t, "Ch", graph6.Encode(g))

	k3 := graph.New(3)
	k3.AddEdge(0, 1)
	k3.AddEdge(0, 2)
	k3.AddEdge(1, 2)
	assert.Equal(t, "Bw", graph6.Encode(k3))
}

// TestRoundTrip_AllLabelled4 exhausts every labelled graph on four
// vertices through encode→decode and back.
func TestRoundTrip_AllLabelled4(t *testing.T) {
	pairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for mask := 0; mask < 1<<len(pairs); mask++ {
		g := graph.New(4)
		for bit, p := range pairs {
			if mask>>bit&1 == 1 {
				g.AddEdge(p[0], p[1])
			}
		}

		s := graph6.Encode(g)
		back, err := graph6.Decode(s)
		require.NoError(t, err, "mask %d", mask)
		require.Equal(t, s, graph6.Encode(back), "round-trip mismatch for mask %d", mask)
		require.Equal(t, g.M(), back.M())
		for _, p := range pairs {
			require.Equal(t, g.HasEdge(p[0], p[1]), back.HasEdge(p[0], p[1]))
		}
	}
}

func TestRoundTrip_LongForm(t *testing.T) {
	// n = 63 forces the 126-prefixed 18-bit vertex count.
	g := graph.New(63)
	g.AddEdge(0, 62)
	g.AddEdge(10, 20)

	s := graph6.Encode(g)
	require.Equal(t, byte(126), s[0])

	back, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 63, back.N())
	assert.Equal(t, 2, back.M())
	assert.True(t, back.HasEdge(0, 62))
	assert.True(t, back.HasEdge(10, 20))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := graph6.Decode("")
	assert.ErrorIs(t, err, graph6.ErrTruncated)

	// n=4 needs one adjacency byte.
	_, err = graph6.Decode("C")
	assert.ErrorIs(t, err, graph6.ErrTruncated)

	// space is below the printable offset
	_, err = graph6.Decode("C ")
	assert.ErrorIs(t, err, graph6.ErrInvalidByte)

	_, err = graph6.Decode("~?")
	assert.ErrorIs(t, err, graph6.ErrTruncated)
}
