package index

import (
	"cmp"
	"slices"
)

// Sort reorders the labels into their natural ascending order.
// All previously obtained positions are invalidated.
func (ix *Index[L]) Sort() {
	slices.Sort(ix.labels)
	ix.reindex()
}

// SortFunc reorders the labels by the given comparison, stably.
// All previously obtained positions are invalidated.
func (ix *Index[L]) SortFunc(compare func(a, b L) int) {
	slices.SortStableFunc(ix.labels, compare)
	ix.reindex()
}

// SortByKey reorders ix by a derived sort key, stably.
func SortByKey[L cmp.Ordered, K cmp.Ordered](ix *Index[L], key func(L) K) {
	ix.SortFunc(func(a, b L) int { return cmp.Compare(key(a), key(b)) })
}

// Reverse reverses the arrangement order in place. Reversing twice
// restores the original arrangement.
func (ix *Index[L]) Reverse() {
	slices.Reverse(ix.labels)
	ix.reindex()
}

// ArgSort returns the permutation of [0, Len()) that would arrange the
// labels in natural ascending order, without mutating the Index.
func (ix *Index[L]) ArgSort() []int {
	return ix.ArgSortFunc(cmp.Compare[L])
}

// ArgSortFunc returns the permutation of [0, Len()) that would arrange
// the labels per the comparison, ties broken by original position.
func (ix *Index[L]) ArgSortFunc(compare func(a, b L) int) []int {
	perm := make([]int, len(ix.labels))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return compare(ix.labels[a], ix.labels[b])
	})
	return perm
}

// ArgSortByKey returns the stable sorting permutation under a derived
// sort key, without mutating ix.
func ArgSortByKey[L cmp.Ordered, K cmp.Ordered](ix *Index[L], key func(L) K) []int {
	return ix.ArgSortFunc(func(a, b L) int { return cmp.Compare(key(a), key(b)) })
}

// IsSorted reports whether the labels are in natural ascending order.
func (ix *Index[L]) IsSorted() bool {
	return slices.IsSorted(ix.labels)
}

// IsSortedFunc reports whether the labels are ordered per the
// comparison.
func (ix *Index[L]) IsSortedFunc(compare func(a, b L) int) bool {
	return slices.IsSortedFunc(ix.labels, compare)
}

// IsSortedByKey reports whether ix is ordered under a derived sort key.
func IsSortedByKey[L cmp.Ordered, K cmp.Ordered](ix *Index[L], key func(L) K) bool {
	return ix.IsSortedFunc(func(a, b L) int { return cmp.Compare(key(a), key(b)) })
}
