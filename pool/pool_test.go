package pool

import "testing"

func TestAddDeduplicates(t *testing.T) {
	p := New()

	i1 := p.Add("a.js")
	i2 := p.Add("b.js")
	i3 := p.Add("a.js")

	if i1 != i3 {
		t.Errorf("Add(a.js) twice should return the same index, got %d and %d", i1, i3)
	}
	if i1 == i2 {
		t.Error("distinct strings should get distinct indices")
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestIndexOfAbsent(t *testing.T) {
	p := New()
	if got := p.IndexOf("missing"); got != Absent {
		t.Errorf("IndexOf(missing) = %d, want %d", got, Absent)
	}

	idx := p.Add("present")
	if got := p.IndexOf("present"); got != idx {
		t.Errorf("IndexOf(present) = %d, want %d", got, idx)
	}
}

func TestLookupPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lookup out of range should panic")
		}
	}()
	p := New()
	p.Lookup(0)
}

func TestStringsPreservesInsertionOrder(t *testing.T) {
	p := New()
	p.Add("z")
	p.Add("a")
	p.Add("m")

	got := p.Strings()
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
