package index_test

import (
	"testing"

	"tabular/gen"
	"tabular/index"
)

const benchSize = 1000

func benchIndex() *index.Index[int] {
	return gen.Index(gen.Rand(1), benchSize)
}

func BenchmarkPush(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ix := index.WithCapacity[int](benchSize)
		for l := 0; l < benchSize; l++ {
			ix.Push(l)
		}
	}
}

func BenchmarkLoc(b *testing.B) {
	ix := benchIndex()
	labels := ix.Labels()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, l := range labels {
			_, _ = ix.Loc(l)
		}
	}
}

func BenchmarkLocRange(b *testing.B) {
	ix := index.WithCapacity[int](benchSize)
	for l := 0; l < benchSize; l++ {
		ix.Push(l)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ix.LocRange(index.HalfOpen(100, 900))
	}
}

func BenchmarkDifference(b *testing.B) {
	x, y := gen.OverlappingPair(gen.Rand(2), benchSize, benchSize, benchSize/2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Difference(y).Count()
	}
}

func BenchmarkArgSort(b *testing.B) {
	ix := benchIndex()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ix.ArgSort()
	}
}
