/*
Package index implements the label index of a columnar table: an
ordered, duplicate-free collection of labels with O(1) lookup in both
directions between a label and its position.

A label is any cmp.Ordered value (integers, strings, runes, or any
canonical ordered projection of a richer type). Positions are dense,
zero-based, and assigned by the current arrangement order; sorting,
reversing or retaining labels invalidates previously obtained
positions.

Lookups come in label-addressed (Loc) and position-addressed (ILoc)
flavors, each with eager all-or-nothing multi forms, lazy per-element
forms, and a range form translating a [Bound] pair into a concrete
position interval. Set algebra (difference, intersection, union,
symmetric difference) is lazy and order-preserving, producing
single-pass seqs.Stream values.
*/
package index
