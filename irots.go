package slssat

// IRoTSSelector implements Iterated Robust Tabu Search (Smyth, Hoos &
// Stutzle 2003): an LS-RoTS descent to a stagnation threshold, followed by
// a perturbation phase at a looser tabu tenure, a second LS-RoTS descent,
// and an acceptance test against the pre-perturbation snapshot. Both
// phases reuse tabuTenureMove and forceOldestFlip, the same primitives
// RoTS itself uses. It implements tryRunner for the same reason RoTS
// does: the phase transitions and forced-flip cadence don't fit a single
// Step call.
type IRoTSSelector struct {
	tenureLS, tenurePerturb int64
	checkFreq               int64
	escapeThreshold         int64
	maxPerturbations        int64
}

var _ tryRunner = (*IRoTSSelector)(nil)

func NewIRoTS() *IRoTSSelector { return &IRoTSSelector{} }

func (s *IRoTSSelector) Name() string { return "irots" }

func (s *IRoTSSelector) BeginTry(e *Engine) {
	n := int64(e.Formula.NumVars)
	s.tenureLS = n/10 + 4
	s.tenurePerturb = n / 2
	s.checkFreq = n * 10
	s.escapeThreshold = n * n / 4
	s.maxPerturbations = 9 * n / 10
	// Both round down to 0 at n=1; keep them at 1 so every RunTry round
	// flips at least once and the try can reach its flip budget.
	if s.escapeThreshold < 1 {
		s.escapeThreshold = 1
	}
	if s.maxPerturbations < 1 {
		s.maxPerturbations = 1
	}
}

func (s *IRoTSSelector) Step(e *Engine) (int, bool)  { return 0, false }
func (s *IRoTSSelector) PostStep(e *Engine, lit int) {}

func (s *IRoTSSelector) RunTry(e *Engine, budget int64) bool {
	sat := s.runLS(e, budget)
	for !sat && e.FlipCount < budget {
		xStar := e.SnapshotAssignment()
		xStarCost := e.Unsat.Len()

		sat = s.runPerturb(e, budget)
		xpStar := e.SnapshotAssignment()
		xpStarCost := e.Unsat.Len()

		if !sat {
			sat = s.runLS(e, budget)
			// The second snapshot, taken after this conditional extra LS
			// pass, is the one that feeds the acceptance test below - not
			// the one taken right after the perturbation phase.
			xpStar = e.SnapshotAssignment()
			xpStarCost = e.Unsat.Len()
		}

		s.accept(e, xStar, xStarCost, xpStar, xpStarCost)
		sat = e.IsSAT()
	}
	return sat
}

func (s *IRoTSSelector) runLS(e *Engine, budget int64) bool {
	for v := range e.LastMove {
		e.LastMove[v] = -1
	}
	noImprove := int64(0)
	for noImprove < s.escapeThreshold && e.FlipCount < budget && !e.IsSAT() {
		lit := tabuTenureMove(e, s.tenureLS, e.BestCost)
		e.Flip(lit)
		if e.UpdateBest() {
			noImprove = 0
		} else {
			noImprove++
		}
		if forceOldestFlip(e, s.checkFreq) {
			if e.UpdateBest() {
				noImprove = 0
			} else {
				noImprove++
			}
		}
	}
	return e.IsSAT()
}

func (s *IRoTSSelector) runPerturb(e *Engine, budget int64) bool {
	for v := range e.LastMove {
		e.LastMove[v] = -1
	}
	count := int64(0)
	for count < s.maxPerturbations && e.FlipCount < budget && !e.IsSAT() {
		lit := tabuTenureMove(e, s.tenurePerturb, e.BestCost)
		e.Flip(lit)
		e.UpdateBest()
		forceOldestFlip(e, s.checkFreq)
		count++
	}
	return e.IsSAT()
}

// accept applies the spec's acceptance/regression table, then restores
// the chosen assignment and recomputes costs to match it.
func (s *IRoTSSelector) accept(e *Engine, xStar []int, xStarCost int, xpStar []int, xpStarCost int) {
	var chosen []int
	switch {
	case xpStarCost < e.BestCost:
		e.BestCost = xpStarCost
		chosen = xpStar
	case xpStarCost == xStarCost:
		if e.Rng.Float64() < 0.5 {
			chosen = xpStar
		} else {
			chosen = xStar
		}
	case xpStarCost > xStarCost:
		if e.Rng.Float64() < 0.9 {
			chosen = xStar
		} else {
			chosen = xpStar
		}
	default: // xpStarCost < xStarCost
		if e.Rng.Float64() < 0.1 {
			chosen = xStar
		} else {
			chosen = xpStar
		}
	}
	e.RestoreAssignment(chosen)
}
