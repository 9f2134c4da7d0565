package seqs

import "iter"

// Stream is a lazy, single-pass sequence over slice-backed storage.
// Elements are produced on demand from either end; filter predicates
// run once per produced element. A Stream is not restartable: after
// both cursors meet, it yields nothing forever.
//
// The underlying slices are shared, not copied. Mutating the backing
// storage while a Stream over it is live is unspecified.
type Stream[T any] struct {
	segs []segment[T]
}

// segment is one contiguous stretch of backing storage with an
// optional keep predicate. A nil predicate keeps everything.
type segment[T any] struct {
	items []T
	keep  func(T) bool
}

// FromSlice returns a Stream yielding every element of items in order.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{segs: []segment[T]{{items: items}}}
}

// FilterSlice returns a Stream yielding the elements of items that
// satisfy keep, in order. keep is evaluated lazily during traversal.
func FilterSlice[T any](items []T, keep func(T) bool) *Stream[T] {
	return &Stream[T]{segs: []segment[T]{{items: items, keep: keep}}}
}

// Chain concatenates streams into one. The inputs are consumed: after
// Chain returns they are empty, and only the combined stream may be
// traversed.
func Chain[T any](streams ...*Stream[T]) *Stream[T] {
	var segs []segment[T]
	for _, s := range streams {
		segs = append(segs, s.segs...)
		s.segs = nil
	}
	return &Stream[T]{segs: segs}
}

// Next produces the next element from the front, or false if the
// stream is exhausted.
func (s *Stream[T]) Next() (T, bool) {
	for len(s.segs) > 0 {
		seg := &s.segs[0]
		for len(seg.items) > 0 {
			v := seg.items[0]
			seg.items = seg.items[1:]
			if seg.keep == nil || seg.keep(v) {
				return v, true
			}
		}
		s.segs = s.segs[1:]
	}
	var zero T
	return zero, false
}

// NextBack produces the next element from the back, or false if the
// stream is exhausted. Front and back cursors share the remaining
// elements; together they visit each element at most once.
func (s *Stream[T]) NextBack() (T, bool) {
	for len(s.segs) > 0 {
		seg := &s.segs[len(s.segs)-1]
		for len(seg.items) > 0 {
			v := seg.items[len(seg.items)-1]
			seg.items = seg.items[:len(seg.items)-1]
			if seg.keep == nil || seg.keep(v) {
				return v, true
			}
		}
		s.segs = s.segs[:len(s.segs)-1]
	}
	var zero T
	return zero, false
}

// All drains the stream from the front as an iter.Seq. Stopping the
// range early leaves the remaining elements in the stream.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains the stream into a slice.
func (s *Stream[T]) Collect() []T {
	out := []T{}
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}
	return out
}

// IsEmpty reports whether the stream has no remaining elements. It
// consumes at most one element, so it is only meaningful on a stream
// that has not been traversed yet.
func (s *Stream[T]) IsEmpty() bool {
	_, ok := s.Next()
	return !ok
}

// Count drains the stream and returns the number of elements produced.
func (s *Stream[T]) Count() int {
	n := 0
	for _, ok := s.Next(); ok; _, ok = s.Next() {
		n++
	}
	return n
}
