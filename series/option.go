package series

import (
	"cmp"

	"tabular/dtype"
	"tabular/index"
)

// Opt is an optional value: either Some(v) or None. The zero value is
// None. It is the value type of sparse series, where individual
// positions may hold no data.
type Opt[V any] struct {
	val V
	ok  bool
}

// Some returns an Opt holding v.
func Some[V any](v V) Opt[V] { return Opt[V]{val: v, ok: true} }

// None returns an empty Opt.
func None[V any]() Opt[V] { return Opt[V]{} }

// Get returns the held value and whether one is present.
func (o Opt[V]) Get() (V, bool) { return o.val, o.ok }

// IsSome reports whether a value is present.
func (o Opt[V]) IsSome() bool { return o.ok }

// IsNone reports whether no value is present.
func (o Opt[V]) IsNone() bool { return !o.ok }

// Or returns the held value, or def if none is present.
func (o Opt[V]) Or(def V) V {
	if o.ok {
		return o.val
	}
	return def
}

// OrElse returns the held value, or f() if none is present.
func (o Opt[V]) OrElse(f func() V) V {
	if o.ok {
		return o.val
	}
	return f()
}

// DType reports the optional flavor of the element type's tag.
func (o Opt[V]) DType() dtype.DType {
	var zero V
	return dtype.Of(zero).Opt()
}

// FillNone replaces every None with fill, producing a dense Series of
// equal length and order. The index is shared read-only, like Map:
// mutating the sparse source while the dense result is in use
// invalidates the result.
func FillNone[L cmp.Ordered, R any](s *Series[L, Opt[R]], fill R) *Series[L, R] {
	s.mustAligned()
	out := make([]R, len(s.values))
	for i, v := range s.values {
		out[i] = v.Or(fill)
	}
	return &Series[L, R]{view: index.Borrow(s.Index()), values: out}
}

// FillNoneWith replaces every None with the result of calling f,
// producing a dense Series of equal length and order. f runs once per
// None, in position order, so a stateful f observes a deterministic
// call order. The index is shared read-only under the same rule as
// FillNone.
func FillNoneWith[L cmp.Ordered, R any](s *Series[L, Opt[R]], f func() R) *Series[L, R] {
	s.mustAligned()
	out := make([]R, len(s.values))
	for i, v := range s.values {
		out[i] = v.OrElse(f)
	}
	return &Series[L, R]{view: index.Borrow(s.Index()), values: out}
}

// DropNone keeps only the pairs holding Some, removing the labels of
// None pairs from the index in lockstep. The result owns a fresh
// index; order of the surviving pairs is preserved.
func DropNone[L cmp.Ordered, R any](s *Series[L, Opt[R]]) *Series[L, R] {
	s.mustAligned()
	ix := index.WithCapacity[L](len(s.values))
	out := make([]R, 0, len(s.values))
	for l, v := range s.All() {
		if r, ok := v.Get(); ok {
			ix.Push(l)
			out = append(out, r)
		}
	}
	dense := &Series[L, R]{view: index.Own(ix), values: out}
	dense.mustAligned()
	return dense
}
