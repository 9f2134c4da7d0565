package series

import (
	"cmp"
	"fmt"

	"tabular/index"
)

// LengthMismatchError reports a Series construction from an index and
// a value slice of different lengths. Both inputs are carried back so
// the caller can adjust and retry.
type LengthMismatchError[L cmp.Ordered, V any] struct {
	Index  *index.Index[L]
	Values []V
}

func (e *LengthMismatchError[L, V]) Error() string {
	return fmt.Sprintf("series: length mismatch between index and values: %d != %d",
		e.Index.Len(), len(e.Values))
}

// DuplicateLabelError reports the first repeated label encountered
// while building a Series from pairs.
type DuplicateLabelError[L cmp.Ordered] struct {
	Label L
}

func (e *DuplicateLabelError[L]) Error() string {
	return fmt.Sprintf("series: duplicate index label: %v", e.Label)
}

// OverlappingIndexError reports a concatenation of two series whose
// indexes share labels. Labels holds the shared labels in the
// receiver's order.
type OverlappingIndexError[L cmp.Ordered] struct {
	Labels []L
}

func (e *OverlappingIndexError[L]) Error() string {
	return fmt.Sprintf("series: overlapping index: %d shared labels", len(e.Labels))
}
