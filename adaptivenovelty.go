package slssat

// AdaptiveNoveltySelector implements Adaptive Novelty+ (Hoos 2002): Novelty
// plus a random-walk noise wn that grows when the search stagnates and
// decays when it doesn't, so the fixed noise parameter of plain Novelty
// becomes self-tuning.
type AdaptiveNoveltySelector struct {
	Noise float64 // Novelty's own x1-vs-x2 tie-break probability
	Theta float64 // fraction of a try's clause count defining a stagnation window
	Phi   float64 // noise growth/decay rate

	mostRecent         int
	wn                 float64
	noImprovementSteps float64
	definedStep        float64
	stagnation         bool
	prevCost           int
}

// NewAdaptiveNovelty builds an Adaptive Novelty+ selector with the paper's
// default theta=1/6, phi=0.2.
func NewAdaptiveNovelty(noise float64) *AdaptiveNoveltySelector {
	return &AdaptiveNoveltySelector{Noise: noise, Theta: 1.0 / 6, Phi: 0.2}
}

func (s *AdaptiveNoveltySelector) Name() string { return "adaptive-novelty" }

func (s *AdaptiveNoveltySelector) BeginTry(e *Engine) {
	s.mostRecent = 0
	s.wn = 0
	s.noImprovementSteps = 0
	s.stagnation = false
	s.definedStep = s.Theta * float64(len(e.Formula.Clauses))
}

func (s *AdaptiveNoveltySelector) Step(e *Engine) (int, bool) {
	lits := e.UnsatLiterals()
	if len(lits) == 0 {
		return 0, false
	}
	s.prevCost = e.Unsat.Len()

	if s.stagnation {
		s.noImprovementSteps++
		if s.noImprovementSteps >= s.definedStep {
			s.wn += (1 - s.wn) * s.Phi
			s.noImprovementSteps = 0
		}
	} else {
		s.wn -= s.wn * 2 * s.Phi
		s.noImprovementSteps = 0
	}
	s.wn = clampFloat(s.wn, 0, 1)

	if s.wn > 0 && e.Rng.Float64() < s.wn {
		return lits[e.Rng.Intn(len(lits))], true
	}
	if len(lits) == 1 {
		return lits[0], true
	}
	scores := scoreLiterals(e, lits, 1, 1)
	firstIdx, secondIdx := firstSecondMin(scores)
	best, second := lits[firstIdx], lits[secondIdx]
	if varOf(best) != s.mostRecent {
		return best, true
	}
	if e.Rng.Float64() < s.Noise {
		return second, true
	}
	return best, true
}

func (s *AdaptiveNoveltySelector) PostStep(e *Engine, lit int) {
	s.mostRecent = varOf(lit)
	s.stagnation = e.Unsat.Len() >= s.prevCost
}
