// package linkptr provides shared ownership of a pointer without a
// separate reference counter.
//
// Consider a resource that several parts of a program hold on to, with
// cleanup that must run exactly once, when the last holder is done. A
// counter-based way to implement this might be:
//
//	type shared struct {
//		res  *resource
//		refs *int
//	}
//
//	func (s shared) clone() shared {
//		*s.refs++
//		return s
//	}
//
//	func (s shared) drop() {
//		if *s.refs--; *s.refs == 0 {
//			s.res.close()
//		}
//	}
//
// This solution needs a second allocation for the counter next to
// every resource, and every clone and drop reaches through that extra
// cell. The handles in this package answer "am I the last owner"
// differently: all co-owning handles of one pointee are threaded into
// a circular doubly-linked ring, embedded in the handles themselves,
// and a handle is the last owner exactly when its ring node is alone.
// Copying ownership is four pointer writes and no allocation beyond
// the handle:
//
//	a := linkptr.NewFree(open(), func(r *resource) { r.close() })
//	b := a.Clone()     // a and b co-own the resource
//	a.Release()        // nothing runs, b still owns it
//	b.Release()        // last owner: close runs here, once
//
// The tradeoff against a counter is concurrency: rings cannot be
// mutated atomically, so handles sharing a ring must not be touched
// from multiple goroutines without external sequencing. Ownership
// cycles (a pointee that transitively owns a handle back to itself)
// are never reclaimed, as in any ownership scheme without cycle
// collection.
package linkptr
