package index

import "cmp"

// View holds an Index either borrowed (shared read-only) or owned
// (private, mutable). A borrowed View materializes an owned clone on
// the first request for mutable access, so several readers can share
// one Index until one of them needs to write.
//
// The zero View is empty; it materializes a fresh owned Index on
// first access.
type View[L cmp.Ordered] struct {
	ix    *Index[L]
	owned bool
}

// Borrow wraps ix as shared read-only. The caller keeps ownership;
// the View never mutates ix.
func Borrow[L cmp.Ordered](ix *Index[L]) View[L] {
	return View[L]{ix: ix}
}

// Own wraps ix, taking ownership. Mutations apply to ix directly.
func Own[L cmp.Ordered](ix *Index[L]) View[L] {
	return View[L]{ix: ix, owned: true}
}

// Index returns the underlying Index for reading. Callers must not
// mutate it through this reference.
func (v *View[L]) Index() *Index[L] {
	if v.ix == nil {
		v.ix = New[L]()
		v.owned = true
	}
	return v.ix
}

// Mut returns the underlying Index for mutation, cloning the borrowed
// Index on first call. Subsequent calls return the same owned Index.
func (v *View[L]) Mut() *Index[L] {
	if v.ix == nil {
		v.ix = New[L]()
		v.owned = true
	} else if !v.owned {
		v.ix = v.ix.Clone()
		v.owned = true
	}
	return v.ix
}

// Len returns the length of the underlying Index.
func (v *View[L]) Len() int {
	if v.ix == nil {
		return 0
	}
	return v.ix.Len()
}

// IsOwned reports whether the View holds a private copy.
func (v *View[L]) IsOwned() bool { return v.owned }

// IntoIndex extracts an owned Index, cloning if the View only borrows
// it. The View keeps no claim on the result.
func (v *View[L]) IntoIndex() *Index[L] {
	ix := v.Mut()
	v.ix = nil
	v.owned = false
	return ix
}
