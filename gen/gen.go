// Package gen produces randomized Index and Series instances and
// related label-set pairs for test suites. It is not part of the
// production surface.
//
// All generators take an explicit *rand.Rand so tests stay
// reproducible from a seed.
package gen

import (
	"math/rand/v2"

	"tabular/index"
	"tabular/series"
)

// MaxLabels caps the size of any generated label set.
const MaxLabels = 2000

// Rand returns a deterministic source for the given seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed<<1|1))
}

// Labels returns n distinct int labels in random order. n must not
// exceed MaxLabels.
func Labels(r *rand.Rand, n int) []int {
	if n > MaxLabels {
		panic("gen: label count exceeds MaxLabels")
	}
	if n <= 0 {
		return []int{}
	}
	return r.Perm(4 * n)[:n]
}

// Index returns an index over n distinct random labels.
func Index(r *rand.Rand, n int) *index.Index[int] {
	return index.From(Labels(r, n))
}

// Series returns a dense series of n random float values over distinct
// random labels.
func Series(r *rand.Rand, n int) *series.Series[int, float64] {
	pairs := make([]series.Pair[int, float64], 0, n)
	for _, l := range Labels(r, n) {
		pairs = append(pairs, series.Pair[int, float64]{Label: l, Value: r.Float64()})
	}
	s, err := series.FromPairs(pairs)
	if err != nil {
		// Labels are distinct by construction.
		panic(err)
	}
	return s
}

// SparseSeries returns a series of n optional float values, each None
// with probability pNone.
func SparseSeries(r *rand.Rand, n int, pNone float64) *series.Series[int, series.Opt[float64]] {
	pairs := make([]series.Pair[int, series.Opt[float64]], 0, n)
	for _, l := range Labels(r, n) {
		v := series.None[float64]()
		if r.Float64() >= pNone {
			v = series.Some(r.Float64())
		}
		pairs = append(pairs, series.Pair[int, series.Opt[float64]]{Label: l, Value: v})
	}
	s, err := series.FromPairs(pairs)
	if err != nil {
		panic(err)
	}
	return s
}

// DisjointPair returns two indexes of n and m labels sharing none.
func DisjointPair(r *rand.Rand, n, m int) (*index.Index[int], *index.Index[int]) {
	pool := Labels(r, n+m)
	return index.From(pool[:n]), index.From(pool[n:])
}

// OverlappingPair returns two indexes of n and m labels sharing
// exactly shared labels. shared must not exceed min(n, m).
func OverlappingPair(r *rand.Rand, n, m, shared int) (*index.Index[int], *index.Index[int]) {
	if shared > min(n, m) {
		panic("gen: shared exceeds min(n, m)")
	}
	pool := Labels(r, n+m-shared)
	return index.From(pool[:n]), index.From(pool[n-shared:])
}

// SubsetPair returns (sub, super) where sub's n labels all appear in
// super's m labels. m must be at least n.
func SubsetPair(r *rand.Rand, n, m int) (*index.Index[int], *index.Index[int]) {
	if m < n {
		panic("gen: superset smaller than subset")
	}
	pool := Labels(r, m)
	return index.From(pool[:n]), index.From(pool)
}
