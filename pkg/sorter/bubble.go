// Package sorter implements an in-place bubble sort.
//
// Every pass runs to completion: there is no early exit when a pass makes no
// swaps, so a sequence of length n always costs n(n-1)/2 comparisons.
package sorter

import "cmp"

// Stats counts the work done by one sort.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Sort sorts s in ascending order in place.
func Sort[S ~[]E, E cmp.Ordered](s S) {
	bubble(s, cmp.Compare[E], nil)
}

// SortFunc sorts s in place using compare, swapping a pair whenever
// compare(a, b) > 0.
func SortFunc[S ~[]E, E any](s S, compare func(a, b E) int) {
	bubble(s, compare, nil)
}

// SortStats sorts s in ascending order and reports the passes, comparisons
// and swaps performed.
func SortStats[S ~[]E, E cmp.Ordered](s S) Stats {
	var st Stats
	bubble(s, cmp.Compare[E], &st)
	return st
}

// IsSorted reports whether s is non-decreasing under the ordering Sort
// uses, where NaN sorts before every other value.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	for i := 1; i < len(s); i++ {
		if cmp.Compare(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}

func bubble[S ~[]E, E any](s S, compare func(a, b E) int, st *Stats) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if st != nil {
				st.Comparisons++
			}
			if compare(s[j], s[j+1]) > 0 {
				s[j], s[j+1] = s[j+1], s[j]
				if st != nil {
					st.Swaps++
				}
			}
		}
		if st != nil {
			st.Passes++
		}
	}
}
