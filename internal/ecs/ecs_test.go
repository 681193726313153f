package ecs

import "testing"

func TestEntityIDPacking(t *testing.T) {
	id := NewEntityID(7, 3)
	if id.Index() != 7 {
		t.Errorf("Index() = %d, expected 7", id.Index())
	}
	if id.Generation() != 3 {
		t.Errorf("Generation() = %d, expected 3", id.Generation())
	}
}

func TestEntityPoolReuse(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	b := p.Create()
	if a == b {
		t.Fatal("Create() returned the same id twice")
	}

	if !p.Destroy(a) {
		t.Fatal("Destroy() of a live id = false")
	}
	if p.Alive(a) {
		t.Error("destroyed id still alive")
	}
	if p.Destroy(a) {
		t.Error("second Destroy() should be a no-op")
	}

	c := p.Create()
	if c.Index() != a.Index() {
		t.Errorf("Create() index = %d, expected reuse of %d", c.Index(), a.Index())
	}
	if c.Generation() != a.Generation()+1 {
		t.Errorf("Create() generation = %d, expected %d", c.Generation(), a.Generation()+1)
	}
	if p.Alive(a) {
		t.Error("stale handle reports alive after index reuse")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", p.Len())
	}
	if p.Alive(NewEntityID(99, 0)) {
		t.Error("out-of-range id reports alive")
	}
}

func TestStoreOrderAndStaleHandles(t *testing.T) {
	p := NewEntityPool()
	s := NewStore[string]()

	ids := make([]EntityID, 4)
	for i := range ids {
		ids[i] = p.Create()
	}
	// Insert out of order
	s.Set(ids[2], "c")
	s.Set(ids[0], "a")
	s.Set(ids[3], "d")
	s.Set(ids[1], "b")

	var got string
	s.Each(func(_ EntityID, v *string) { got += *v })
	if got != "abcd" {
		t.Errorf("Each() order = %q, expected %q", got, "abcd")
	}

	s.Remove(ids[1])
	if s.Has(ids[1]) || s.Len() != 3 {
		t.Errorf("Remove() left Has=%v Len=%d", s.Has(ids[1]), s.Len())
	}

	p.Destroy(ids[1])
	reused := p.Create()
	if _, ok := s.Get(reused); ok {
		t.Error("reused index sees a component it was never given")
	}
	s.Set(reused, "z")
	if _, ok := s.Get(ids[1]); ok {
		t.Error("stale handle reads the new owner's component")
	}

	listed := s.IDs()
	if len(listed) != 4 || listed[1] != reused {
		t.Errorf("IDs() = %v, expected reused id in slot 1", listed)
	}

	s.Clear()
	if s.Len() != 0 || len(s.IDs()) != 0 {
		t.Error("Clear() left components behind")
	}
}

func TestStoreGetMutates(t *testing.T) {
	p := NewEntityPool()
	s := NewStore[int]()
	id := p.Create()
	s.Set(id, 1)
	v, _ := s.Get(id)
	*v = 5
	if got, _ := s.Get(id); *got != 5 {
		t.Errorf("Get() after mutation = %d, expected 5", *got)
	}
}

func TestEntitiesDeferredDestroy(t *testing.T) {
	e := NewEntities()
	pos := NewStore[int]()
	tag := NewStore[bool]()
	e.Track(pos)
	e.Track(tag)

	a := e.Create()
	b := e.Create()
	pos.Set(a, 1)
	pos.Set(b, 2)
	tag.Set(a, true)

	if !e.MarkForDestruction(a) {
		t.Fatal("MarkForDestruction() = false for a live entity")
	}
	if e.MarkForDestruction(a) {
		t.Error("queuing twice should report false")
	}
	if !e.Pending(a) || !e.Alive(a) {
		t.Error("queued entity should stay alive until Flush")
	}

	if n := e.Flush(); n != 1 {
		t.Errorf("Flush() = %d, expected 1", n)
	}
	if e.Alive(a) || e.Pending(a) {
		t.Error("entity survived Flush")
	}
	if pos.Has(a) || tag.Has(a) {
		t.Error("Flush left components behind")
	}
	if !pos.Has(b) {
		t.Error("Flush removed an unrelated entity")
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", e.Len())
	}

	e.Destroy(b)
	if e.Alive(b) || pos.Has(b) {
		t.Error("Destroy() did not remove the entity immediately")
	}
}
