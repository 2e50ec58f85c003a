package sortedset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/overclust/sortedset"
)

func TestContains(t *testing.T) {
	s := []int{1, 3, 5, 9}
	assert.True(t, sortedset.Contains(s, 1))
	assert.True(t, sortedset.Contains(s, 9))
	assert.False(t, sortedset.Contains(s, 0))
	assert.False(t, sortedset.Contains(s, 4))
	assert.False(t, sortedset.Contains(s, 10))
	assert.False(t, sortedset.Contains(nil, 1))
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		x    int
		want []int
	}{
		{"into empty", nil, 4, []int{4}},
		{"front", []int{2, 5}, 1, []int{1, 2, 5}},
		{"middle", []int{2, 5}, 3, []int{2, 3, 5}},
		{"back", []int{2, 5}, 7, []int{2, 5, 7}},
		{"duplicate is a no-op", []int{2, 5}, 5, []int{2, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sortedset.Insert(append([]int(nil), tc.in...), tc.x)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		x    int
		want []int
	}{
		{"front", []int{1, 2, 5}, 1, []int{2, 5}},
		{"middle", []int{1, 2, 5}, 2, []int{1, 5}},
		{"back", []int{1, 2, 5}, 5, []int{1, 2}},
		{"missing is a no-op", []int{1, 2, 5}, 3, []int{1, 2, 5}},
		{"empty", nil, 3, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sortedset.Remove(append([]int(nil), tc.in...), tc.x)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnionIntersectDiff(t *testing.T) {
	a := []int{1, 3, 5, 7}
	b := []int{2, 3, 6, 7, 9}

	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 9}, sortedset.Union(a, b))
	assert.Equal(t, []int{3, 7}, sortedset.Intersect(a, b))
	assert.Equal(t, []int{1, 5}, sortedset.Diff(a, b))
	assert.Equal(t, []int{2, 6, 9}, sortedset.Diff(b, a))

	// inputs untouched
	require.Equal(t, []int{1, 3, 5, 7}, a)
	require.Equal(t, []int{2, 3, 6, 7, 9}, b)
}

func TestUnionIntersectDiff_Empty(t *testing.T) {
	a := []int{4, 8}

	assert.Equal(t, []int{4, 8}, sortedset.Union(a, nil))
	assert.Equal(t, []int{4, 8}, sortedset.Union(nil, a))
	assert.Empty(t, sortedset.Intersect(a, nil))
	assert.Equal(t, []int{4, 8}, sortedset.Diff(a, nil))
	assert.Empty(t, sortedset.Diff(nil, a))
}

func TestIntersectSize(t *testing.T) {
	a := []int{1, 3, 5, 7}
	b := []int{2, 3, 6, 7, 9}

	assert.Equal(t, len(sortedset.Intersect(a, b)), sortedset.IntersectSize(a, b))
	assert.Equal(t, 0, sortedset.IntersectSize(a, nil))
	assert.Equal(t, 4, sortedset.IntersectSize(a, a))
}
