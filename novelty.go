package slssat

// NoveltySelector implements Novelty (McAllester, Selman & Kautz 1997):
// flip the best-scoring literal unless it is the variable most recently
// flipped, in which case flip the second-best with probability Noise and
// the best anyway with probability 1-Noise.
type NoveltySelector struct {
	Noise float64

	mostRecent int // variable index, 0 = none yet
}

func NewNovelty(noise float64) *NoveltySelector {
	return &NoveltySelector{Noise: noise}
}

func (s *NoveltySelector) Name() string { return "novelty" }

func (s *NoveltySelector) BeginTry(e *Engine) { s.mostRecent = 0 }

func (s *NoveltySelector) Step(e *Engine) (int, bool) {
	lits := e.UnsatLiterals()
	if len(lits) == 0 {
		return 0, false
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

func (s *NoveltySelector) PostStep(e *Engine, lit int) {
	s.mostRecent = varOf(lit)
}
