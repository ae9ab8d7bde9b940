package linkptr

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// TestRandomOps drives a random sequence of lifecycle operations over
// a pool of handles and checks, after every step, that ring membership
// and pointee identity still agree and that no pointee is freed while
// it has owners. At the end everything is released and every pointee
// must have been freed exactly once.
func TestRandomOps(t *testing.T) {
	const (
		maxHandles = 16
		steps      = 5000
	)

	rng := pcg.New(0x1dc3)
	intn := func(n int) int { return int(rng.Uint32n(uint32(n))) }

	var (
		handles []*Ptr[int]
		freed   = map[*int]int{}
		alloc   = func() *Ptr[int] {
			v := new(int)
			freed[v] = 0
			return NewFree(v, func(*int) { freed[v]++ })
		}
	)

	check := func() {
		t.Helper()

		// rings are well-formed.
		for _, p := range handles {
			checkRing(t, &p.link)
		}

		// for handles with pointees, same pointee iff same ring.
		for _, p := range handles {
			for _, q := range handles {
				if p.Get() != nil && q.Get() != nil {
					assert.Equal(t, p.link.inRing(&q.link), p.Get() == q.Get())
				}
			}
		}

		// nothing freed early, nothing freed twice, Unique tracks the
		// exact owner count.
		for _, p := range handles {
			if v := p.Get(); v != nil {
				n := 0
				for _, q := range handles {
					if q.Get() == v {
						n++
					}
				}
				assert.Equal(t, freed[v], 0)
				assert.Equal(t, p.Unique(), n == 1)
			}
		}
		for v, n := range freed {
			assert.That(t, n <= 1)
			if n == 1 {
				for _, q := range handles {
					assert.That(t, q.Get() != v)
				}
			}
		}
	}

	for i := 0; i < steps; i++ {
		switch op := intn(8); {
		case len(handles) == 0 || (op == 0 && len(handles) < maxHandles):
			handles = append(handles, alloc())
		case op == 1 && len(handles) < maxHandles:
			handles = append(handles, handles[intn(len(handles))].Clone())
		case op == 2:
			j := intn(len(handles))
			handles[j] = handles[j].Move()
		case op == 3:
			handles[intn(len(handles))].Set(handles[intn(len(handles))])
		case op == 4:
			handles[intn(len(handles))].Take(handles[intn(len(handles))])
		case op == 5:
			handles[intn(len(handles))].Reset(nil)
		case op == 6:
			handles[intn(len(handles))].Swap(handles[intn(len(handles))])
		default:
			j := intn(len(handles))
			handles[j].Release()
			handles[j] = handles[len(handles)-1]
			handles = handles[:len(handles)-1]
		}
		check()
	}

	for _, p := range handles {
		p.Release()
	}
	for _, n := range freed {
		assert.Equal(t, n, 1)
	}
}
