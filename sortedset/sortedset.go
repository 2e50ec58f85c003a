package sortedset

import "sort"

// Contains reports whether x occurs in the sorted slice s.
//
// Complexity: O(log n)
func Contains(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}

// Insert places x at its sorted position in s, preserving uniqueness.
// A no-op when x is already present. The updated slice is returned and
// must be kept by the caller, exactly like append.
//
// Complexity: O(log n) search + O(n) shift
func Insert(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// Remove deletes x from s if present, preserving order.
// The updated slice is returned and must be kept by the caller.
//
// Complexity: O(log n) search + O(n) shift
func Remove(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	if i >= len(s) || s[i] != x {
		return s
	}

	return append(s[:i], s[i+1:]...)
}

// Union merges a and b into a new sorted slice containing every element
// of either input exactly once.
//
// Complexity: O(|a| + |b|)
func Union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// Intersect returns a new sorted slice with the elements present in
// both a and b.
//
// Complexity: O(|a| + |b|)
func Intersect(a, b []int) []int {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	out := make([]int, 0, max)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// IntersectSize counts the elements present in both a and b without
// materialising the intersection. Used by the Tomita pivot rule and the
// shared-neighbour proposition, where only the count matters.
//
// Complexity: O(|a| + |b|)
func IntersectSize(a, b []int) int {
	n := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}

// Diff returns a new sorted slice with the elements of a that are not
// in b.
//
// Complexity: O(|a| + |b|)
func Diff(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		switch {
		case j >= len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] == b[j]:
			i++
			j++
		default:
			j++
		}
	}

	return out
}
