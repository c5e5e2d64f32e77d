package slssat

import "testing"

func TestUnsatSetAddRemoveContains(t *testing.T) {
	s := newUnsatSet(5)
	for i := 0; i < 5; i++ {
		if s.Contains(i) {
			t.Fatalf("clause %d should not be in a fresh set", i)
		}
	}
	s.Add(2)
	s.Add(4)
	if !s.Contains(2) || !s.Contains(4) {
		t.Fatal("expected 2 and 4 to be members")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	s.Remove(2)
	if s.Contains(2) {
		t.Error("2 should have been removed")
	}
	if !s.Contains(4) {
		t.Error("removing 2 should not disturb 4")
	}
}

func TestUnsatSetAddIsIdempotent(t *testing.T) {
	s := newUnsatSet(3)
	s.Add(1)
	s.Add(1)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after adding the same member twice", s.Len())
	}
}

func TestUnsatSetRemoveSwapsWithLast(t *testing.T) {
	s := newUnsatSet(4)
	s.Add(0)
	s.Add(1)
	s.Add(2)
	s.Remove(0)
	if s.Contains(0) {
		t.Error("0 should be gone")
	}
	if !s.Contains(1) || !s.Contains(2) {
		t.Error("1 and 2 should survive the swap-remove")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestUnsatSetResetClearsMembership(t *testing.T) {
	s := newUnsatSet(3)
	s.Add(0)
	s.Add(1)
	s.reset()
	if s.Len() != 0 || s.Contains(0) || s.Contains(1) {
		t.Error("reset should empty the set")
	}
}

func TestUnsatSetSampleEmpty(t *testing.T) {
	s := newUnsatSet(2)
	if _, ok := s.Sample(&fakeRand{}); ok {
		t.Error("Sample on an empty set should report ok=false")
	}
}

func TestUnsatSetSampleReturnsMember(t *testing.T) {
	s := newUnsatSet(3)
	s.Add(1)
	s.Add(2)
	got, ok := s.Sample(&fakeRand{intn: func(n int) int { return 0 }})
	if !ok {
		t.Fatal("expected ok=true on a nonempty set")
	}
	if got != 1 && got != 2 {
		t.Errorf("Sample returned %d, want one of {1,2}", got)
	}
}
