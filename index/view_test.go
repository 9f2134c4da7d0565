package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabular/index"
)

func TestViewBorrowSharesForReading(t *testing.T) {
	ix := index.From([]int{1, 2, 3})
	v := index.Borrow(ix)

	assert.Same(t, ix, v.Index())
	assert.Equal(t, 3, v.Len())
	assert.False(t, v.IsOwned())
}

func TestViewMutMaterializesClone(t *testing.T) {
	ix := index.From([]int{1, 2, 3})
	v := index.Borrow(ix)

	m := v.Mut()
	require.NotSame(t, ix, m, "first mutation must clone a borrowed index")
	m.Push(4)

	assert.Equal(t, []int{1, 2, 3}, ix.Labels(), "the borrowed original stays untouched")
	assert.Equal(t, []int{1, 2, 3, 4}, v.Index().Labels())
	assert.True(t, v.IsOwned())

	// Later mutations reuse the materialized copy.
	assert.Same(t, m, v.Mut())
}

func TestViewOwnMutatesInPlace(t *testing.T) {
	ix := index.From([]int{1, 2})
	v := index.Own(ix)

	v.Mut().Push(3)
	assert.Same(t, ix, v.Index())
	assert.Equal(t, []int{1, 2, 3}, ix.Labels())
}

func TestViewIntoIndex(t *testing.T) {
	ix := index.From([]int{1, 2})

	borrowed := index.Borrow(ix)
	got := borrowed.IntoIndex()
	require.NotSame(t, ix, got, "extracting from a borrow must clone")
	assert.Equal(t, ix.Labels(), got.Labels())

	owned := index.Own(ix)
	assert.Same(t, ix, owned.IntoIndex())
}

func TestZeroViewIsEmpty(t *testing.T) {
	var v index.View[string]

	assert.Equal(t, 0, v.Len())
	assert.True(t, v.Index().IsEmpty())
	v.Mut().Push("a")
	assert.Equal(t, 1, v.Len())
}
