package effect

import "testing"

func TestPoolAcquireUntilSaturated(t *testing.T) {
	p := NewPool[int](3)
	for i := 0; i < 3; i++ {
		slot := p.Acquire()
		if slot == nil {
			t.Fatalf("Expected slot %d", i)
		}
		*slot = i
	}
	if p.Acquire() != nil {
		t.Error("Expected nil from saturated pool")
	}
	if p.Free() != 0 || p.Len() != 3 {
		t.Errorf("Expected full pool, got len %d free %d", p.Len(), p.Free())
	}
}

func TestPoolReleaseSwapsLast(t *testing.T) {
	p := NewPool[int](4)
	for i := 0; i < 4; i++ {
		*p.Acquire() = i * 10
	}
	p.Release(1)

	got := p.Active()
	if len(got) != 3 {
		t.Fatalf("Expected 3 live items, got %d", len(got))
	}
	if got[1] != 30 {
		t.Errorf("Expected last item swapped into slot 1, got %d", got[1])
	}

	p.Release(7)
	if p.Len() != 3 {
		t.Error("Expected out-of-range release to be ignored")
	}
}

func TestPoolRetain(t *testing.T) {
	p := NewPool[int](6)
	for i := 0; i < 6; i++ {
		*p.Acquire() = i
	}
	p.Retain(func(v *int) bool { return *v%2 == 0 })

	if p.Len() != 3 {
		t.Fatalf("Expected 3 survivors, got %d", p.Len())
	}
	for _, v := range p.Active() {
		if v%2 != 0 {
			t.Errorf("Expected only even survivors, found %d", v)
		}
	}
}

func TestPoolBackingNeverGrows(t *testing.T) {
	p := NewPool[int](2)
	before := &p.backing[0]
	for round := 0; round < 10; round++ {
		p.Acquire()
		p.Acquire()
		p.Clear()
	}
	if &p.backing[0] != before || p.Cap() != 2 {
		t.Error("Expected backing store reused")
	}
}
