package slssat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scenario formula from spec §8 S3/S4: satisfiable only when x3 is true.
func scenarioFormula(t *testing.T) Formula {
	t.Helper()
	f, err := NewFormula([][]int{
		{1, 2},
		{-1, 2},
		{1, -2},
		{-1, -2, 3},
	}, 3)
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	return f
}

func costsAndUnsat(e *Engine) ([]int, []int) {
	costs := append([]int(nil), e.Costs...)
	unsat := append([]int(nil), e.Unsat.Slice()...)
	return costs, unsat
}

func TestRecomputeCostsSatisfiesP1P2(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Assignment = []int{1, 2, -3}
	e.RecomputeCosts()

	for i, cls := range f.Clauses {
		want := 0
		for _, lit := range cls {
			if e.Assignment[varOf(lit)-1] == lit {
				want++
			}
		}
		assert.Equal(t, want, e.Costs[i], "clause %d cost", i)
		assert.Equal(t, want == 0, e.Unsat.Contains(i), "clause %d unsat membership", i)
	}
}

func TestFlipIsInvolutionS4(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Assignment = []int{1, 2, 3}
	e.RecomputeCosts()

	before := append([]int(nil), e.Assignment...)
	beforeCosts, beforeUnsat := costsAndUnsat(e)

	e.Flip(1)
	e.Flip(1)

	assert.Equal(t, before, e.Assignment, "assignment should be restored")
	afterCosts, afterUnsat := costsAndUnsat(e)
	assert.Equal(t, beforeCosts, afterCosts, "costs should be restored")
	assert.ElementsMatch(t, beforeUnsat, afterUnsat, "UNSAT set should be restored")
}

func TestFlipMatchesRecomputeP4(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Assignment = []int{-1, -2, -3}
	e.RecomputeCosts()

	for _, lit := range []int{1, 2, 3, 1, 3} {
		e.Flip(lit)
	}

	wantCosts := append([]int(nil), e.Costs...)
	wantUnsat := append([]int(nil), e.Unsat.Slice()...)

	e.RecomputeCosts()
	assert.Equal(t, wantCosts, e.Costs, "flip-driven costs should match a full recompute")
	assert.ElementsMatch(t, wantUnsat, e.Unsat.Slice(), "flip-driven UNSAT set should match a full recompute")
}

func TestIsSATOnlyWhenEveryClauseSatisfied(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Assignment = []int{1, 2, 3} // satisfies clause 4 via x3=true
	e.RecomputeCosts()
	assert.True(t, e.IsSAT())

	e.Assignment = []int{1, 2, -3}
	e.RecomputeCosts()
	assert.False(t, e.IsSAT())
}

func TestBreakMakeScore(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Assignment = []int{1, 2, -3}
	e.RecomputeCosts()

	b, m := e.BreakMake(3)
	assert.Equal(t, 0, b, "flipping x3 to true breaks nothing")
	assert.Equal(t, 1, m, "flipping x3 to true satisfies clause 4")
	assert.Equal(t, -1, e.Score(3, 1, 1))
}

func TestUpdateBestMonotoneP5(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Assignment = []int{1, 2, -3}
	e.RecomputeCosts()
	e.UpdateBest()
	first := e.BestCost

	e.Assignment = []int{-1, -2, -3}
	e.RecomputeCosts()
	improved := e.UpdateBest()
	assert.False(t, improved, "an assignment no better than the best must not improve BestCost")
	assert.Equal(t, first, e.BestCost, "BestCost must stay monotone non-increasing")
}

func TestCheckInvariantsPassesOnConsistentState(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.RandomAssignment()
	e.RecomputeCosts()
	assert.NoError(t, e.CheckInvariants())
}
