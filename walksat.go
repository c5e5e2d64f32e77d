package slssat

// WalkSATSelector implements the WalkSAT SKC variant (Selman, Kautz & Cohen
// 1994): pick a random UNSAT clause; if one of its literals has a zero
// break count, flip it (never make a random move when a free move exists);
// otherwise, with probability Noise flip a uniform random literal of the
// clause, else flip the literal with the smallest break count.
type WalkSATSelector struct {
	SKC        bool
	RandomWalk bool
	Noise      float64
}

// NewWalkSAT builds a WalkSAT selector with the classic SKC free-move rule
// enabled.
func NewWalkSAT(randomWalk bool, noise float64) *WalkSATSelector {
	return &WalkSATSelector{SKC: true, RandomWalk: randomWalk, Noise: noise}
}

func (s *WalkSATSelector) Name() string { return "walksat" }

func (s *WalkSATSelector) BeginTry(e *Engine) {}

func (s *WalkSATSelector) Step(e *Engine) (int, bool) {
	clause, _, ok := e.RandomUnsatClause()
	if !ok {
		return 0, false
	}
	breaks := make([]int, len(clause))
	for i, lit := range clause {
		breaks[i], _ = e.BreakMake(lit)
	}
	if s.SKC {
		for i, b := range breaks {
			if b == 0 {
				return clause[i], true
			}
		}
	}
	if s.RandomWalk && e.Rng.Float64() < s.Noise {
		return clause[e.Rng.Intn(len(clause))], true
	}
	return clause[argMinLit(breaks)], true
}

func (s *WalkSATSelector) PostStep(e *Engine, lit int) {}
