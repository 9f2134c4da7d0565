package index

import "tabular/seqs"

// Set algebra over two indexes. Every operation is lazy and
// order-preserving: the returned stream shares the receiver's label
// storage and evaluates membership one element at a time. Streams are
// single-pass; mutating either index while one is live is unspecified.

// Difference yields the labels of ix absent from other, in ix's order.
func (ix *Index[L]) Difference(other *Index[L]) *seqs.Stream[L] {
	return seqs.FilterSlice(ix.labels, func(l L) bool { return !other.Contains(l) })
}

// SymmetricDifference yields Difference(ix, other) followed by
// Difference(other, ix).
func (ix *Index[L]) SymmetricDifference(other *Index[L]) *seqs.Stream[L] {
	return seqs.Chain(ix.Difference(other), other.Difference(ix))
}

// Intersection yields the labels of ix also present in other, in ix's
// order.
func (ix *Index[L]) Intersection(other *Index[L]) *seqs.Stream[L] {
	return seqs.FilterSlice(ix.labels, other.Contains)
}

// Union yields the labels of ix in order, followed by the labels of
// other absent from ix. Deduplication is inherent: labels of other
// already in ix are excluded by the second leg.
func (ix *Index[L]) Union(other *Index[L]) *seqs.Stream[L] {
	return seqs.Chain(seqs.FromSlice(ix.labels), other.Difference(ix))
}

// IsDisjoint reports whether the two indexes share no labels.
func (ix *Index[L]) IsDisjoint(other *Index[L]) bool {
	return ix.Intersection(other).IsEmpty()
}

// IsSubset reports whether every label of ix is present in other.
func (ix *Index[L]) IsSubset(other *Index[L]) bool {
	return ix.Len() <= other.Len() && ix.Difference(other).IsEmpty()
}

// IsStrictSubset reports whether ix is a subset of other and other has
// at least one label ix lacks.
func (ix *Index[L]) IsStrictSubset(other *Index[L]) bool {
	return ix.Len() < other.Len() && ix.Difference(other).IsEmpty()
}

// IsSuperset reports whether every label of other is present in ix.
func (ix *Index[L]) IsSuperset(other *Index[L]) bool {
	return other.IsSubset(ix)
}

// IsStrictSuperset reports whether ix is a superset of other and holds
// at least one label other lacks.
func (ix *Index[L]) IsStrictSuperset(other *Index[L]) bool {
	return other.IsStrictSubset(ix)
}
