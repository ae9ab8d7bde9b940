package linkptr

// Ptr is a shared-ownership handle for a *T. All handles that co-own
// the same pointee form one intrusive ring; the last of them to let go
// runs the pointee's finalizer. There is no counter anywhere: "am I
// the last owner" is answered by "is my ring node alone".
//
// A Ptr must only be used through the pointer returned by its
// constructor; copying the struct value corrupts the ring.
//
// Handles are not safe for concurrent use. Accesses to handles sharing
// a ring must be externally sequenced.
type Ptr[T any] struct {
	noCopy noCopy

	link link
	data *T

	// free is bound to the pointee at adoption time and travels with
	// data through every copy, move and swap. nil means the GC owns
	// the memory and nothing needs to run.
	free func()
}

// New returns a solitary handle owning data. data may be nil, giving a
// valueless handle. No finalizer runs when ownership ends.
func New[T any](data *T) *Ptr[T] {
	p := &Ptr[T]{data: data}
	p.link.init()
	return p
}

// NewFree is New with a finalizer: free(data) runs exactly once, when
// the last co-owner releases a non-nil pointee.
func NewFree[T any](data *T, free func(*T)) *Ptr[T] {
	p := New(data)
	if free != nil && data != nil {
		p.free = func() { free(data) }
	}
	return p
}

// Make allocates a fresh T holding v and wraps it in a new solitary
// handle.
func Make[T any](v T) *Ptr[T] {
	return New(&v)
}

// Clone returns a new handle co-owning p's pointee. The clone joins
// p's ring adjacent to p; no allocation happens beyond the handle
// itself. Cloning an empty handle yields another empty member of the
// same ring.
func (p *Ptr[T]) Clone() *Ptr[T] {
	c := &Ptr[T]{data: p.data, free: p.free}
	c.link.init()
	c.link.insert(&p.link)
	return c
}

// Move returns a new handle that takes p's place among the co-owners.
// p is left empty and solitary; the group is the same size as before.
func (p *Ptr[T]) Move() *Ptr[T] {
	c := p.Clone()
	p.link.remove()
	p.data = nil
	p.free = nil
	return c
}

// Set replaces p's state with a copy of other, releasing whatever p
// held first. Setting a handle to itself is a no-op.
func (p *Ptr[T]) Set(other *Ptr[T]) {
	if p == other {
		return
	}
	p.Release()
	p.link.insert(&other.link)
	p.data = other.data
	p.free = other.free
}

// Take moves other's ownership into p, releasing whatever p held
// first. other is left empty and solitary. Taking from itself is a
// no-op.
func (p *Ptr[T]) Take(other *Ptr[T]) {
	if p == other {
		return
	}
	p.Set(other)
	other.link.remove()
	other.data = nil
	other.free = nil
}

// Reset releases p's current ownership and adopts data in a fresh
// solitary ring. Any other co-owners keep the old pointee; only p
// departs. The new pointee has no finalizer, as with New.
func (p *Ptr[T]) Reset(data *T) {
	p.freeIfUnique()
	p.link.remove()
	p.data = data
	p.free = nil
}

// Release ends p's ownership: the finalizer runs if p was the last
// owner of a non-nil pointee, and p leaves its ring. The handle is
// left empty and solitary; releasing it again is a no-op. Pair every
// constructed handle with a Release, typically via defer.
func (p *Ptr[T]) Release() {
	p.freeIfUnique()
	p.link.remove()
	p.data = nil
	p.free = nil
}

// Get returns the raw pointee without affecting ownership.
func (p *Ptr[T]) Get() *T {
	return p.data
}

// Value dereferences the pointee. Calling it on an empty handle panics
// on the nil pointer itself; there is no internal check, matching raw
// pointer semantics.
func (p *Ptr[T]) Value() T {
	return *p.data
}

// Ok reports whether p holds a non-nil pointee.
func (p *Ptr[T]) Ok() bool {
	return p.data != nil
}

// Unique reports whether p is the last owner: alone in its ring and
// holding a non-nil pointee. A solitary empty handle is not unique,
// there is nothing left to free.
func (p *Ptr[T]) Unique() bool {
	return p.link.solitary() && p.data != nil
}

// freeIfUnique runs the finalizer and drops the pointee if p is the
// last owner. The fields are cleared before the finalizer runs so a
// reentrant look at p sees an empty handle.
func (p *Ptr[T]) freeIfUnique() {
	if !p.Unique() {
		return
	}
	f := p.free
	p.data = nil
	p.free = nil
	if f != nil {
		f()
	}
}
