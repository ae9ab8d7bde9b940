package linkptr

// link is a node in a circular doubly-linked ring. Every handle embeds
// exactly one; all handles in the same ring co-own the same pointee.
// next and prev are never nil once init has run: a node with no peers
// points at itself.
type link struct {
	next *link
	prev *link
}

// init makes l a solitary ring of one.
func (l *link) init() {
	l.next = l
	l.prev = l
}

// insert splices l into after's ring, immediately after it. l must be
// solitary; callers remove before they re-insert.
func (l *link) insert(after *link) {
	after.next.prev = l
	l.next = after.next
	l.prev = after
	after.next = l
}

// remove detaches l from its ring and restores it to a solitary ring
// of one. A no-op if l is already solitary.
func (l *link) remove() {
	l.next.prev = l.prev
	l.prev.next = l.next
	l.init()
}

// solitary reports whether l has no peers.
func (l *link) solitary() bool {
	return l.next == l
}

// inRing reports whether other is a member of l's ring. Linear in the
// ring size; rings are as small as the number of live co-owners.
func (l *link) inRing(other *link) bool {
	for n := l; ; n = n.next {
		if n == other {
			return true
		}
		if n.next == l {
			return false
		}
	}
}
