package index

// Bound is one endpoint of a range: Included, Excluded, or Unbounded.
// The zero value is Unbounded.
type Bound[T any] struct {
	kind  boundKind
	value T
}

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Included returns a closed endpoint at v.
func Included[T any](v T) Bound[T] { return Bound[T]{kind: included, value: v} }

// Excluded returns an open endpoint at v.
func Excluded[T any](v T) Bound[T] { return Bound[T]{kind: excluded, value: v} }

// Unbounded returns an endpoint extending to the edge of the index.
func Unbounded[T any]() Bound[T] { return Bound[T]{} }

// Range is a pair of endpoint bounds over labels or positions.
type Range[T any] struct {
	Start Bound[T]
	End   Bound[T]
}

// HalfOpen returns [lo, hi).
func HalfOpen[T any](lo, hi T) Range[T] {
	return Range[T]{Start: Included(lo), End: Excluded(hi)}
}

// Closed returns [lo, hi].
func Closed[T any](lo, hi T) Range[T] {
	return Range[T]{Start: Included(lo), End: Included(hi)}
}

// Open returns (lo, hi).
func Open[T any](lo, hi T) Range[T] {
	return Range[T]{Start: Excluded(lo), End: Excluded(hi)}
}

// AtLeast returns [lo, ..].
func AtLeast[T any](lo T) Range[T] {
	return Range[T]{Start: Included(lo)}
}

// Below returns [.., hi).
func Below[T any](hi T) Range[T] {
	return Range[T]{End: Excluded(hi)}
}

// Through returns [.., hi].
func Through[T any](hi T) Range[T] {
	return Range[T]{End: Included(hi)}
}

// Full returns the unbounded range [.., ..].
func Full[T any]() Range[T] { return Range[T]{} }

// LocRange translates a label range into the positions it covers.
// Each endpoint resolves per the table:
//
//	bound        as start    as end
//	Included(x)  Loc(x)      Loc(x)+1
//	Excluded(x)  Loc(x)+1    Loc(x)
//	Unbounded    0           Len()
//
// Both endpoints are validated independently, even when the resulting
// interval would be empty: any endpoint whose label is absent makes
// the whole call return (nil, false). If both endpoints resolve but
// start > end, the result is an empty non-nil slice and true.
func (ix *Index[L]) LocRange(r Range[L]) ([]int, bool) {
	start, ok := ix.locStart(r.Start)
	if !ok {
		return nil, false
	}
	end, ok := ix.locEnd(r.End)
	if !ok {
		return nil, false
	}
	return span(start, end), true
}

// ILocRange translates a position range into the positions it covers,
// under the same endpoint table and validation rules as LocRange. An
// Included or Excluded endpoint is valid only if its position lies in
// [0, Len()); the derived half-open edges may still reach Len().
func (ix *Index[L]) ILocRange(r Range[int]) ([]int, bool) {
	start, ok := ix.ilocStart(r.Start)
	if !ok {
		return nil, false
	}
	end, ok := ix.ilocEnd(r.End)
	if !ok {
		return nil, false
	}
	return span(start, end), true
}

func (ix *Index[L]) locStart(b Bound[L]) (int, bool) {
	switch b.kind {
	case unbounded:
		return 0, true
	case included:
		p, ok := ix.pos[b.value]
		return p, ok
	default:
		p, ok := ix.pos[b.value]
		return p + 1, ok
	}
}

func (ix *Index[L]) locEnd(b Bound[L]) (int, bool) {
	switch b.kind {
	case unbounded:
		return len(ix.labels), true
	case included:
		p, ok := ix.pos[b.value]
		return p + 1, ok
	default:
		p, ok := ix.pos[b.value]
		return p, ok
	}
}

func (ix *Index[L]) ilocStart(b Bound[int]) (int, bool) {
	switch b.kind {
	case unbounded:
		return 0, true
	case included:
		return b.value, ix.validPos(b.value)
	default:
		return b.value + 1, ix.validPos(b.value)
	}
}

func (ix *Index[L]) ilocEnd(b Bound[int]) (int, bool) {
	switch b.kind {
	case unbounded:
		return len(ix.labels), true
	case included:
		return b.value + 1, ix.validPos(b.value)
	default:
		return b.value, ix.validPos(b.value)
	}
}

func (ix *Index[L]) validPos(p int) bool {
	return p >= 0 && p < len(ix.labels)
}

// span enumerates [start, end) as a position slice. A crossed pair
// yields an empty, non-nil slice.
func span(start, end int) []int {
	if start > end {
		return []int{}
	}
	out := make([]int, 0, end-start)
	for p := start; p < end; p++ {
		out = append(out, p)
	}
	return out
}
