package slssat

// GSATSelector implements GSAT (Selman, Levesque & Mitchell 1992): among
// every literal occurring in an UNSAT clause, flip the one minimizing the
// GSAT score break-make; optionally take a uniform random-walk step
// instead, with probability Noise.
type GSATSelector struct {
	RandomWalk bool
	Noise      float64
}

// NewGSAT builds a GSAT selector. Pass randomWalk=false for plain GSAT.
func NewGSAT(randomWalk bool, noise float64) *GSATSelector {
	return &GSATSelector{RandomWalk: randomWalk, Noise: noise}
}

func (s *GSATSelector) Name() string { return "gsat" }

func (s *GSATSelector) BeginTry(e *Engine) {}

func (s *GSATSelector) Step(e *Engine) (int, bool) {
	lits := e.UnsatLiterals()
	if len(lits) == 0 {
		return 0, false
	}
	if s.RandomWalk && e.Rng.Float64() < s.Noise {
		return lits[e.Rng.Intn(len(lits))], true
	}
	scores := scoreLiterals(e, lits, 1, 1)
	return lits[argMinLit(scores)], true
}

func (s *GSATSelector) PostStep(e *Engine, lit int) {}
