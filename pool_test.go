package surface

import "testing"

func TestPoolAllocAndMove(t *testing.T) {
	var p Pool
	a := p.Alloc(Pt(1, 2))
	b := p.Alloc(Pt(3, 4))
	if p.Len() != 2 {
		t.Fatalf("got %d points, want 2", p.Len())
	}
	diff(t, Pt(1, 2), p.Pos(a))

	p.SetPos(b, Pt(5, 6))
	diff(t, Pt(5, 6), p.Pos(b))

	if _, ok := p.MirrorOf(a); ok {
		t.Error("fresh point has a mirror constraint")
	}
}

func TestPoolMirroredMove(t *testing.T) {
	var p Pool
	handle := p.Alloc(Pt(1, 0))
	anchor := p.Alloc(Pt(2, 0))
	other := p.Alloc(Pt(3, 0))
	p.Link(handle, other, anchor)

	// A plain move leaves the partner alone.
	p.Move(handle, Pt(1, 1), false)
	diff(t, Pt(3, 0), p.Pos(other))

	// A mirrored move reflects the partner through the anchor.
	p.Move(handle, Pt(1.5, 0.5), true)
	diff(t, Pt(2.5, -0.5), p.Pos(other))

	// The reverse direction is not linked unless linked explicitly.
	p.Move(other, Pt(0, 0), true)
	diff(t, Pt(1.5, 0.5), p.Pos(handle))
}

func TestPoolClearLinks(t *testing.T) {
	var p Pool
	a := p.Alloc(Pt(0, 0))
	b := p.Alloc(Pt(1, 0))
	c := p.Alloc(Pt(2, 0))
	p.Link(a, c, b)
	p.Link(c, a, b)
	p.ClearLinks()
	if _, ok := p.MirrorOf(a); ok {
		t.Error("link on a survived ClearLinks")
	}
	if _, ok := p.MirrorOf(c); ok {
		t.Error("link on c survived ClearLinks")
	}
}

func TestPoolInvalidID(t *testing.T) {
	var p Pool
	p.Alloc(Pt(0, 0))
	for _, fn := range []func(){
		func() { p.Pos(1) },
		func() { p.Pos(NoPoint) },
		func() { p.Link(0, 1, 0) },
		func() { p.Link(0, 0, 2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("invalid point id did not panic")
				}
			}()
			fn()
		}()
	}
}
