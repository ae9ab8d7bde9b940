package linkptr

import "unsafe"

// Cross-type operations live here as package functions because methods
// cannot introduce type parameters. Where the original idea is "a *U
// is implicitly convertible to a *T", the caller supplies the
// conversion explicitly, typically &t.Embedded or a similar pointer
// into the same allocation.

// As returns a new handle co-owning h's pointee through a different
// view of it. conv receives h's pointee and must return a pointer
// whose lifetime is the pointee's own, such as a pointer to an
// embedded field. The new handle joins h's ring and shares h's
// finalizer as-is: whichever co-owner releases last runs the cleanup
// the original handle was created with, no matter its view type.
func As[U, T any](h *Ptr[T], conv func(*T) *U) *Ptr[U] {
	p := &Ptr[U]{free: h.free}
	if h.data != nil {
		p.data = conv(h.data)
	}
	p.link.init()
	p.link.insert(&h.link)
	return p
}

// SetAs replaces dst's state with a converted view of src, as As does
// for construction. If dst already co-owns src's pointee (they share a
// ring) nothing happens.
func SetAs[U, T any](dst *Ptr[U], src *Ptr[T], conv func(*T) *U) {
	if dst.link.inRing(&src.link) {
		return
	}
	dst.Release()
	dst.link.insert(&src.link)
	if src.data != nil {
		dst.data = conv(src.data)
	}
	dst.free = src.free
}

// Equal reports whether a and b hold the same pointee address. Two
// empty handles compare equal. Views at different offsets into one
// allocation compare by their own addresses.
func Equal[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return unsafe.Pointer(a.data) == unsafe.Pointer(b.data)
}

// NotEqual is the negation of Equal.
func NotEqual[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return !Equal(a, b)
}

// Less orders handles by pointee address. Together with Equal it gives
// a total order usable for sorted containers of handles.
func Less[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return uintptr(unsafe.Pointer(a.data)) < uintptr(unsafe.Pointer(b.data))
}
