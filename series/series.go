package series

import (
	"cmp"
	"iter"
	"slices"

	"tabular/dtype"
	"tabular/index"
)

// Series couples an Index with a parallel value slice. The two halves
// always have equal length, and the value at position i corresponds to
// the label at position i. The index may be owned or shared read-only
// with other series; mutation materializes a private copy first.
type Series[L cmp.Ordered, V any] struct {
	view   index.View[L]
	values []V
}

// Pair is one label/value element of a Series.
type Pair[L cmp.Ordered, V any] struct {
	Label L
	Value V
}

// New returns an empty Series.
func New[L cmp.Ordered, V any]() *Series[L, V] {
	return &Series[L, V]{view: index.Own(index.New[L]())}
}

// FromValues builds a Series taking ownership of ix and values. If the
// lengths differ it returns a *LengthMismatchError carrying both
// inputs, and neither is retained.
func FromValues[L cmp.Ordered, V any](ix *index.Index[L], values []V) (*Series[L, V], error) {
	if ix.Len() != len(values) {
		return nil, &LengthMismatchError[L, V]{Index: ix, Values: values}
	}
	return &Series[L, V]{view: index.Own(ix), values: values}, nil
}

// FromBorrowed builds a Series sharing ix read-only, for composing
// several columns over one index without copying it. The length check
// and error contract match FromValues.
func FromBorrowed[L cmp.Ordered, V any](ix *index.Index[L], values []V) (*Series[L, V], error) {
	if ix.Len() != len(values) {
		return nil, &LengthMismatchError[L, V]{Index: ix, Values: values}
	}
	return &Series[L, V]{view: index.Borrow(ix), values: values}, nil
}

// FromPairs builds a Series from label/value pairs in order. On the
// first repeated label it returns a *DuplicateLabelError and discards
// everything accumulated so far; no partial Series escapes.
func FromPairs[L cmp.Ordered, V any](pairs []Pair[L, V]) (*Series[L, V], error) {
	ix := index.WithCapacity[L](len(pairs))
	values := make([]V, 0, len(pairs))
	for _, p := range pairs {
		if !ix.Push(p.Label) {
			return nil, &DuplicateLabelError[L]{Label: p.Label}
		}
		values = append(values, p.Value)
	}
	return &Series[L, V]{view: index.Own(ix), values: values}, nil
}

// FromSeq2 builds a Series from a label/value sequence, with the same
// duplicate contract as FromPairs.
func FromSeq2[L cmp.Ordered, V any](pairs iter.Seq2[L, V]) (*Series[L, V], error) {
	ix := index.New[L]()
	values := []V{}
	for l, v := range pairs {
		if !ix.Push(l) {
			return nil, &DuplicateLabelError[L]{Label: l}
		}
		values = append(values, v)
	}
	return &Series[L, V]{view: index.Own(ix), values: values}, nil
}

// mustAligned panics if the index and value lengths have diverged.
// Divergence is a programming error, never a recoverable condition.
func (s *Series[L, V]) mustAligned() {
	if s.view.Len() != len(s.values) {
		panic("series: index and values length diverged")
	}
}

// Index returns the index for reading. Callers must not mutate it
// through this reference.
func (s *Series[L, V]) Index() *index.Index[L] {
	return s.view.Index()
}

// Values returns the live value slice. Elements may be assigned
// through it; its length is fixed by the slice itself, keeping the
// invariant intact.
func (s *Series[L, V]) Values() []V {
	return s.values
}

// Len returns the number of label/value pairs.
func (s *Series[L, V]) Len() int {
	s.mustAligned()
	return len(s.values)
}

// IsEmpty reports whether the Series holds no pairs.
func (s *Series[L, V]) IsEmpty() bool {
	return s.Len() == 0
}

// ContainsLabel reports whether label is present in the index.
func (s *Series[L, V]) ContainsLabel(label L) bool {
	return s.Index().Contains(label)
}

// DType returns the type tag of the value type.
func (s *Series[L, V]) DType() dtype.DType {
	var zero V
	return dtype.Of(zero)
}

// Clear removes all pairs, materializing a private index first if it
// was shared.
func (s *Series[L, V]) Clear() {
	s.view.Mut().Clear()
	clear(s.values)
	s.values = s.values[:0]
	s.mustAligned()
}

// Clone returns an independent copy with its own index.
func (s *Series[L, V]) Clone() *Series[L, V] {
	s.mustAligned()
	return &Series[L, V]{
		view:   index.Own(s.Index().Clone()),
		values: slices.Clone(s.values),
	}
}

// All yields the label/value pairs in position order.
func (s *Series[L, V]) All() iter.Seq2[L, V] {
	return func(yield func(L, V) bool) {
		ix := s.Index()
		for p, v := range s.values {
			l, _ := ix.ILoc(p)
			if !yield(l, v) {
				return
			}
		}
	}
}

// Loc returns the value for label, or false if the label is absent.
func (s *Series[L, V]) Loc(label L) (V, bool) {
	p, ok := s.Index().Loc(label)
	if !ok {
		var zero V
		return zero, false
	}
	return s.values[p], true
}

// LocMut returns a pointer to the value for label, or false if the
// label is absent. The pointer stays valid until the next mutation.
func (s *Series[L, V]) LocMut(label L) (*V, bool) {
	p, ok := s.Index().Loc(label)
	if !ok {
		return nil, false
	}
	return &s.values[p], true
}

// ILoc returns the value at position p, or false if p is out of range.
func (s *Series[L, V]) ILoc(p int) (V, bool) {
	if p < 0 || p >= len(s.values) {
		var zero V
		return zero, false
	}
	return s.values[p], true
}

// ILocMut returns a pointer to the value at position p, or false if p
// is out of range.
func (s *Series[L, V]) ILocMut(p int) (*V, bool) {
	if p < 0 || p >= len(s.values) {
		return nil, false
	}
	return &s.values[p], true
}

// Retain keeps exactly the pairs for which pred returns true,
// preserving relative order in both halves in lockstep. pred is called
// once per pair, in position order.
func (s *Series[L, V]) Retain(pred func(label L, value V) bool) {
	s.mustAligned()
	keep := make([]bool, len(s.values))
	for p, l := range s.Index().AllPairs() {
		keep[p] = pred(l, s.values[p])
	}

	p := 0
	s.view.Mut().Retain(func(L) bool {
		k := keep[p]
		p++
		return k
	})

	n := 0
	for i, v := range s.values {
		if keep[i] {
			s.values[n] = v
			n++
		}
	}
	clear(s.values[n:])
	s.values = s.values[:n]

	s.mustAligned()
}

// RetainLabels keeps the pairs whose label satisfies pred.
func (s *Series[L, V]) RetainLabels(pred func(label L) bool) {
	s.Retain(func(l L, _ V) bool { return pred(l) })
}

// RetainValues keeps the pairs whose value satisfies pred.
func (s *Series[L, V]) RetainValues(pred func(value V) bool) {
	s.Retain(func(_ L, v V) bool { return pred(v) })
}

// Map transforms every value with f, leaving index and order
// untouched. The result shares the index read-only; f must not fail.
// The sharing is one-way: mutating the result materializes its own
// index copy, but mutating the source while the result is in use
// invalidates the result. Clone the source first if both sides need
// to mutate.
func Map[L cmp.Ordered, V, C any](s *Series[L, V], f func(V) C) *Series[L, C] {
	s.mustAligned()
	out := make([]C, len(s.values))
	for i, v := range s.values {
		out[i] = f(v)
	}
	return &Series[L, C]{view: index.Borrow(s.Index()), values: out}
}

// Concat returns a new Series holding the receiver's pairs in order
// followed by other's. If the two indexes share any label it returns
// an *OverlappingIndexError listing the shared labels, and no Series.
func (s *Series[L, V]) Concat(other *Series[L, V]) (*Series[L, V], error) {
	s.mustAligned()
	other.mustAligned()

	if shared := s.Index().Intersection(other.Index()).Collect(); len(shared) > 0 {
		return nil, &OverlappingIndexError[L]{Labels: shared}
	}

	ix := s.Index().Clone()
	for l := range other.Index().All() {
		ix.Push(l)
	}
	values := make([]V, 0, len(s.values)+len(other.values))
	values = append(values, s.values...)
	values = append(values, other.values...)

	out := &Series[L, V]{view: index.Own(ix), values: values}
	out.mustAligned()
	return out, nil
}

// IntoIndexValues detaches and returns the owned index and value
// slice, cloning the index if it was shared. The receiver is reset to
// empty.
func (s *Series[L, V]) IntoIndexValues() (*index.Index[L], []V) {
	s.mustAligned()
	ix := s.view.IntoIndex()
	values := s.values
	s.view = index.Own(index.New[L]())
	s.values = nil
	return ix, values
}

// IntoIndex detaches and returns the owned index, resetting the
// receiver.
func (s *Series[L, V]) IntoIndex() *index.Index[L] {
	ix, _ := s.IntoIndexValues()
	return ix
}

// IntoValues detaches and returns the value slice, resetting the
// receiver.
func (s *Series[L, V]) IntoValues() []V {
	_, values := s.IntoIndexValues()
	return values
}
