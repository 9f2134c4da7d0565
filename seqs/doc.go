/*
Package seqs provides the lazy sequence machinery backing index set
algebra and iteration.

It has two halves:

  - [Stream]: a single-pass, non-restartable sequence over slice-backed
    storage. Streams are traversable from both ends ([Stream.Next] and
    [Stream.NextBack]) and evaluate their filter predicates lazily, one
    element at a time. Once drained they stay drained; rebuild the
    stream to iterate again.
  - Plain iter.Seq combinators: [Filter], [Map], [Concat], [Backward],
    [Enumerate], [First], [Any], [All], [Count], [Collect].

The set-algebra operations on an Index (difference, intersection,
union, symmetric difference) all return Streams, so consuming them is
pay-as-you-go: asking "is the intersection empty" inspects at most one
element.
*/
package seqs
