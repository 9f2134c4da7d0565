/*
Package series pairs an index.Index with a parallel value slice under a
strict equal-length invariant: the value at position i always belongs
to the label at position i.

Construction validates its inputs and reports failures as typed,
recoverable errors carrying the offending data back to the caller
([LengthMismatchError], [DuplicateLabelError], [OverlappingIndexError]).
Lookup misses are (zero, false) returns, never errors. An internal
divergence between index and value lengths is a programming error and
panics; a Series in a broken state is never observable.

Operations that change the value type ([Map], [FillNone], [DropNone])
or introduce extra type parameters are package-level functions, since
Go methods cannot add type parameters.
*/
package series
