package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"tabular/seqs"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		pred func(int) bool
		want []int
	}{
		{"Evens", []int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }, []int{2, 4}},
		{"None", []int{1, 3}, func(v int) bool { return v%2 == 0 }, []int{}},
		{"Empty", []int{}, func(int) bool { return true }, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seqs.Collect(seqs.Filter(slices.Values(tt.in), tt.pred))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMap(t *testing.T) {
	got := seqs.Collect(seqs.Map(slices.Values([]int{1, 2, 3}), func(v int) int { return v * 10 }))
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestConcat(t *testing.T) {
	got := seqs.Collect(seqs.Concat(
		slices.Values([]int{1, 2}),
		slices.Values([]int{}),
		slices.Values([]int{3}),
	))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBackward(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, seqs.Collect(seqs.Backward([]int{1, 2, 3})))
	assert.Equal(t, []int{}, seqs.Collect(seqs.Backward([]int{})))
}

func TestEnumerate(t *testing.T) {
	var is []int
	var vs []string
	for i, v := range seqs.Enumerate(slices.Values([]string{"a", "b"})) {
		is = append(is, i)
		vs = append(vs, v)
	}
	assert.Equal(t, []int{0, 1}, is)
	assert.Equal(t, []string{"a", "b"}, vs)
}

func TestFirst(t *testing.T) {
	v, ok := seqs.First(slices.Values([]int{7, 8}))
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = seqs.First(slices.Values([]int{}))
	assert.False(t, ok)
}

func TestAnyAll(t *testing.T) {
	in := slices.Values([]int{2, 4, 5})

	assert.True(t, seqs.Any(in, func(v int) bool { return v == 5 }))
	assert.False(t, seqs.All(slices.Values([]int{2, 4, 5}), func(v int) bool { return v%2 == 0 }))
	assert.True(t, seqs.All(slices.Values([]int{2, 4}), func(v int) bool { return v%2 == 0 }))
	assert.True(t, seqs.All(slices.Values([]int{}), func(int) bool { return false }))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, seqs.Count(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, 0, seqs.Count(slices.Values([]int{})))
}
