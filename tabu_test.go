package slssat

import "testing"

func TestTabuListEvictsOldestOnOverflow(t *testing.T) {
	tl := newTabuList(3)
	tl.Push(1)
	tl.Push(2)
	tl.Push(3)
	if !tl.Contains(1) {
		t.Fatal("var 1 should still be tabu before the list overflows")
	}
	tl.Push(4) // evicts 1
	if tl.Contains(1) {
		t.Error("var 1 should have been evicted")
	}
	for _, v := range []int{2, 3, 4} {
		if !tl.Contains(v) {
			t.Errorf("var %d should still be tabu", v)
		}
	}
}

func TestTabuListAlwaysStoresMagnitude(t *testing.T) {
	tl := newTabuList(2)
	tl.Push(-5) // Push takes a variable, but callers (selectors) always pass varOf(lit)
	if !tl.Contains(5) {
		t.Error("tabu list should treat -5 as variable 5")
	}
}

func TestTabuListDuplicateCounting(t *testing.T) {
	tl := newTabuList(2)
	tl.Push(1)
	tl.Push(1)
	if !tl.Contains(1) {
		t.Fatal("var 1 should be tabu")
	}
	tl.Push(2) // evicts one of the two occurrences of 1
	if !tl.Contains(1) {
		t.Error("var 1 should still be tabu: one occurrence remains")
	}
	tl.Push(3) // evicts the remaining occurrence of 1
	if tl.Contains(1) {
		t.Error("var 1 should no longer be tabu once both occurrences are evicted")
	}
}

func TestTabuListReset(t *testing.T) {
	tl := newTabuList(2)
	tl.Push(1)
	tl.reset()
	if tl.Contains(1) || tl.Len() != 0 {
		t.Error("reset should clear all tabu state")
	}
}

func TestDefaultTabuLengthFormula(t *testing.T) {
	if got := defaultTabuLength(100); got != int(0.01875*100+2.8125) {
		t.Errorf("defaultTabuLength(100) = %d, want %d", got, int(0.01875*100+2.8125))
	}
}
