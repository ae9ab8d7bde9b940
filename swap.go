package linkptr

// Swap exchanges the pointees of p and other while keeping both
// co-owner groups intact: the total number of owners of each pointee
// is unchanged, only redistributed. Handles already sharing a pointee,
// including a handle swapped with itself, are left untouched.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	if p.data == other.data {
		return
	}
	p.data, other.data = other.data, p.data
	p.free, other.free = other.free, p.free

	if p.link.solitary() {
		if other.link.solitary() {
			// both alone: the field swap above was everything.
			return
		}
		// p takes other's place among other's peers, then other is
		// detached to go it alone with its new pointee.
		other.link.next.prev = &p.link
		p.link.next = other.link.next
		other.link.next = &p.link
		p.link.prev = &other.link
		other.link.remove()
		return
	}
	if other.link.solitary() {
		// mirrored case: undo the field swap and delegate.
		p.data, other.data = other.data, p.data
		p.free, other.free = other.free, p.free
		other.Swap(p)
		return
	}

	// Both rings have peers. Exchange the four boundary links so each
	// handle's neighbors now thread through the other handle, then
	// exchange the handles' own links. Membership counts of the two
	// rings are preserved; walking either ring afterwards visits
	// exactly the handles that now share its pointee.
	other.link.next.prev, p.link.next.prev = p.link.next.prev, other.link.next.prev
	other.link.prev.next, p.link.prev.next = p.link.prev.next, other.link.prev.next
	other.link.next, p.link.next = p.link.next, other.link.next
	other.link.prev, p.link.prev = p.link.prev, other.link.prev
}
