package slssat

// RNoveltySelector implements R-Novelty (McAllester, Selman & Kautz 1997,
// as characterized by Hoos & Stutzle 1999): like Novelty, but when the
// best-scoring literal is the most recently flipped variable, the choice
// between best and second-best follows the noise-dependent table in spec
// §4.3 instead of a flat probability. RandomWalkNoise is an optional extra
// random-walk layer (disabled when zero) carried over from the reference
// implementation's optional constructor argument; spec.md's own R-Novelty
// description doesn't use it; it defaults off.
type RNoveltySelector struct {
	Noise           float64
	RandomWalkNoise float64

	mostRecent int
}

func NewRNovelty(noise float64) *RNoveltySelector {
	return &RNoveltySelector{Noise: noise}
}

func (s *RNoveltySelector) Name() string { return "r-novelty" }

func (s *RNoveltySelector) BeginTry(e *Engine) { s.mostRecent = 0 }

func (s *RNoveltySelector) Step(e *Engine) (int, bool) {
	lits := e.UnsatLiterals()
	if len(lits) == 0 {
		return 0, false
	}
	if s.RandomWalkNoise > 0 && e.Rng.Float64() < s.RandomWalkNoise {
		return lits[e.Rng.Intn(len(lits))], true
	}
	if len(lits) == 1 {
		return lits[0], true
	}
	scores := scoreLiterals(e, lits, 1, 1)
	best, bestScore, second, secondScore := distinctFirstSecond(lits, scores)
	if varOf(best) != s.mostRecent {
		return best, true
	}
	n := bestScore - secondScore
	if n < 0 {
		n = -n
	}
	if rNoveltyPicksSecond(s.Noise, e.Rng.Float64(), n) {
		return second, true
	}
	return best, true
}

// rNoveltyPicksSecond implements the noise/n table from spec.md's R-Novelty
// description: n==0 (every candidate tied) falls back to the plain Novelty
// coin flip; otherwise the choice depends on whether noise p is below or at
// least 0.5, and whether the best and second-best differ by exactly 1 or by
// more.
func rNoveltyPicksSecond(p, r float64, n int) bool {
	switch {
	case n == 0:
		return r < p
	case p < 0.5 && n > 1:
		return false
	case p < 0.5 && n == 1:
		return r < 2*p
	case p >= 0.5 && n == 1:
		return true
	default: // p >= 0.5 && n > 1
		return r < 2*(p-0.5)
	}
}

func (s *RNoveltySelector) PostStep(e *Engine, lit int) {
	s.mostRecent = varOf(lit)
}

// distinctFirstSecond finds the minimum-scoring literal and the next one
// whose score differs from it, discarding ties with the minimum along the
// way. If every candidate ties with the minimum, second is the last
// candidate in lits, a different literal with the same score (n=0), so
// the Novelty fallback still has a second literal to choose.
func distinctFirstSecond(lits, scores []int) (bestLit, bestScore, secondLit, secondScore int) {
	L := append([]int(nil), lits...)
	S := append([]int(nil), scores...)
	bi := argMinLit(S)
	bestLit, bestScore = L[bi], S[bi]
	si, secondLit, secondScore := bi, bestLit, bestScore
	for secondScore == bestScore && len(S) > 1 {
		L = append(L[:si], L[si+1:]...)
		S = append(S[:si], S[si+1:]...)
		si = argMinLit(S)
		secondLit, secondScore = L[si], S[si]
	}
	return bestLit, bestScore, secondLit, secondScore
}
