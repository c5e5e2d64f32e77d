package slssat

import "testing"

// P8: H-RTS must keep Tf in [0.025, 0.25] and tenure >= 4 at all times.
func TestHammingRTSReactStaysInBoundsP8(t *testing.T) {
	s := &HammingRTSSelector{tf: 0.1, tenure: 4}

	// A perturbation phase that barely moved anything should grow Tf.
	xi := []int{1, 2, 3, 4, 5}
	xf := []int{1, 2, 3, 4, 5}
	s.react(xi, xf, 20)
	if s.tf < 0.025 || s.tf > 0.25 {
		t.Errorf("Tf = %v out of bounds after a low-movement react", s.tf)
	}
	if s.tenure < 4 {
		t.Errorf("tenure = %d, want >= 4", s.tenure)
	}

	// Repeatedly pushing Tf upward should still clamp at 0.25.
	for i := 0; i < 100; i++ {
		s.react(xi, xf, 20)
	}
	if s.tf > 0.25 {
		t.Errorf("Tf = %v, want <= 0.25 after repeated growth", s.tf)
	}

	// A perturbation phase that moved everything should eventually shrink Tf:
	// 20 moved variables against a tenure of at most 5 gives deriv > 0.5.
	xi2 := make([]int, 20)
	xf2 := make([]int, 20)
	for v := 1; v <= 20; v++ {
		xi2[v-1], xf2[v-1] = v, -v
	}
	for i := 0; i < 100; i++ {
		s.react(xi2, xf2, 20)
	}
	if s.tf < 0.025 {
		t.Errorf("Tf = %v, want >= 0.025 after repeated shrinkage", s.tf)
	}
}

func TestHammingDistance(t *testing.T) {
	a := []int{1, 2, -3}
	b := []int{1, -2, -3}
	if got := hammingDistance(a, b); got != 1 {
		t.Errorf("hammingDistance = %d, want 1", got)
	}
}

func TestFilterTabuVarsEmptyTabuReturnsInput(t *testing.T) {
	lits := []int{1, -2, 3}
	got := filterTabuVars(lits, nil)
	if len(got) != len(lits) {
		t.Errorf("filterTabuVars with no tabu vars should return all candidates")
	}
}

func TestFilterTabuVarsFiltersByVariable(t *testing.T) {
	lits := []int{1, -2, 3}
	got := filterTabuVars(lits, []int{2})
	for _, lit := range got {
		if varOf(lit) == 2 {
			t.Error("variable 2 should have been filtered out regardless of the literal's sign")
		}
	}
	if len(got) != 2 {
		t.Errorf("len(got) = %d, want 2", len(got))
	}
}
