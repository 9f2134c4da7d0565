package index

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"tabular/dtype"
	"tabular/seqs"
)

// Index is an ordered, duplicate-free collection of labels. It keeps a
// bijection between the half-open position interval [0, Len()) and the
// label set, queryable in both directions in O(1).
//
// The zero value is not usable; construct with New, WithCapacity, From
// or FromSeq.
type Index[L cmp.Ordered] struct {
	labels []L
	pos    map[L]int
}

// New returns an empty Index.
func New[L cmp.Ordered]() *Index[L] {
	return WithCapacity[L](0)
}

// WithCapacity returns an empty Index with room for n labels.
func WithCapacity[L cmp.Ordered](n int) *Index[L] {
	return &Index[L]{
		labels: make([]L, 0, n),
		pos:    make(map[L]int, n),
	}
}

// From builds an Index from labels in order. Duplicates are dropped
// silently; the first occurrence wins its position.
func From[L cmp.Ordered](labels []L) *Index[L] {
	ix := WithCapacity[L](len(labels))
	for _, l := range labels {
		ix.Push(l)
	}
	return ix
}

// FromSeq builds an Index from a label sequence, dropping duplicates
// like From.
func FromSeq[L cmp.Ordered](labels iter.Seq[L]) *Index[L] {
	ix := New[L]()
	for l := range labels {
		ix.Push(l)
	}
	return ix
}

// Len returns the number of labels.
func (ix *Index[L]) Len() int { return len(ix.labels) }

// IsEmpty reports whether the Index holds no labels.
func (ix *Index[L]) IsEmpty() bool { return len(ix.labels) == 0 }

// Clear removes all labels.
func (ix *Index[L]) Clear() {
	clear(ix.labels)
	ix.labels = ix.labels[:0]
	clear(ix.pos)
}

// Clone returns an independent copy.
func (ix *Index[L]) Clone() *Index[L] {
	return &Index[L]{
		labels: slices.Clone(ix.labels),
		pos:    maps.Clone(ix.pos),
	}
}

// DType returns the type tag of the label type.
func (ix *Index[L]) DType() dtype.DType {
	var zero L
	return dtype.Of(zero)
}

// Push appends label at the end if absent and reports whether it was
// inserted. A label already present keeps its position and Push is a
// no-op returning false.
func (ix *Index[L]) Push(label L) bool {
	if _, ok := ix.pos[label]; ok {
		return false
	}
	ix.pos[label] = len(ix.labels)
	ix.labels = append(ix.labels, label)
	return true
}

// Contains reports whether label is present.
func (ix *Index[L]) Contains(label L) bool {
	_, ok := ix.pos[label]
	return ok
}

// Loc returns the position of label, or false if absent.
func (ix *Index[L]) Loc(label L) (int, bool) {
	p, ok := ix.pos[label]
	return p, ok
}

// ILoc returns the label at position p, or false if p is out of range.
func (ix *Index[L]) ILoc(p int) (L, bool) {
	if p < 0 || p >= len(ix.labels) {
		var zero L
		return zero, false
	}
	return ix.labels[p], true
}

// LocMulti resolves every label to its position, preserving input
// order. It is all-or-nothing: the first absent label makes the whole
// call return (nil, false).
func (ix *Index[L]) LocMulti(labels []L) ([]int, bool) {
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		p, ok := ix.pos[l]
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// ILocMulti resolves every position to its label, preserving input
// order. It is all-or-nothing like LocMulti.
func (ix *Index[L]) ILocMulti(positions []int) ([]L, bool) {
	out := make([]L, 0, len(positions))
	for _, p := range positions {
		l, ok := ix.ILoc(p)
		if !ok {
			return nil, false
		}
		out = append(out, l)
	}
	return out, true
}

// LocEach lazily resolves labels one at a time, preserving input
// order. Unlike LocMulti it does not abort on a miss: absent labels
// yield (0, false) and iteration continues.
func (ix *Index[L]) LocEach(labels []L) iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for _, l := range labels {
			p, ok := ix.pos[l]
			if !yield(p, ok) {
				return
			}
		}
	}
}

// ILocEach lazily resolves positions one at a time, preserving input
// order and continuing past invalid positions.
func (ix *Index[L]) ILocEach(positions []int) iter.Seq2[L, bool] {
	return func(yield func(L, bool) bool) {
		for _, p := range positions {
			l, ok := ix.ILoc(p)
			if !yield(l, ok) {
				return
			}
		}
	}
}

// BLoc returns the positions whose mask entry is true. The mask must
// have exactly Len() entries, else (nil, false).
func (ix *Index[L]) BLoc(mask []bool) ([]int, bool) {
	if len(mask) != len(ix.labels) {
		return nil, false
	}
	out := make([]int, 0, len(mask))
	for p, keep := range mask {
		if keep {
			out = append(out, p)
		}
	}
	return out, true
}

// Labels returns a copy of the labels in position order.
func (ix *Index[L]) Labels() []L {
	return slices.Clone(ix.labels)
}

// All yields the labels in position order.
func (ix *Index[L]) All() iter.Seq[L] {
	return slices.Values(ix.labels)
}

// AllPairs yields (position, label) pairs in position order.
func (ix *Index[L]) AllPairs() iter.Seq2[int, L] {
	return slices.All(ix.labels)
}

// Backward yields the labels from last position to first.
func (ix *Index[L]) Backward() iter.Seq[L] {
	return seqs.Backward(ix.labels)
}

// Retain keeps only the labels for which keep returns true, preserving
// relative order. Positions of surviving labels are reassigned densely.
func (ix *Index[L]) Retain(keep func(label L) bool) {
	n := 0
	for _, l := range ix.labels {
		if keep(l) {
			ix.labels[n] = l
			n++
		} else {
			delete(ix.pos, l)
		}
	}
	clear(ix.labels[n:])
	ix.labels = ix.labels[:n]
	ix.reindex()
}

// reindex rebuilds the label -> position map from the label order.
func (ix *Index[L]) reindex() {
	for p, l := range ix.labels {
		ix.pos[l] = p
	}
}
