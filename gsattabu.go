package slssat

// GSATTabuSelector implements GSAT-Tabu (McAllester, Selman & Kautz 1997):
// GSAT's best-score rule restricted to variables that aren't currently
// tabu, falling back to the unrestricted candidate set when tabu status
// would otherwise leave nothing to flip. Unlike the reference
// implementation - which filters candidates by exact signed-literal
// membership in a tabu list that can itself (on overflow) contain a signed
// literal - tabu status here is a property of the variable, so filtering
// compares varOf(lit) against the tabu list regardless of the flipped
// literal's sign.
type GSATTabuSelector struct {
	RandomWalk bool
	Noise      float64
	TabuLength int // 0 means "derive from NumVars at BeginTry"

	tabu *tabuList
}

func NewGSATTabu(randomWalk bool, noise float64, tabuLength int) *GSATTabuSelector {
	return &GSATTabuSelector{RandomWalk: randomWalk, Noise: noise, TabuLength: tabuLength}
}

func (s *GSATTabuSelector) Name() string { return "gsat-tabu" }

func (s *GSATTabuSelector) BeginTry(e *Engine) {
	length := s.TabuLength
	if length == 0 {
		length = defaultTabuLength(e.Formula.NumVars)
	}
	s.tabu = newTabuList(length)
}

func (s *GSATTabuSelector) Step(e *Engine) (int, bool) {
	lits := e.UnsatLiterals()
	if len(lits) == 0 {
		return 0, false
	}
	allowed := filterTabu(lits, s.tabu)
	if len(allowed) == 0 {
		allowed = lits
	}
	if s.RandomWalk && e.Rng.Float64() < s.Noise {
		return allowed[e.Rng.Intn(len(allowed))], true
	}
	scores := scoreLiterals(e, allowed, 1, 1)
	return allowed[argMinLit(scores)], true
}

func (s *GSATTabuSelector) PostStep(e *Engine, lit int) {
	s.tabu.Push(varOf(lit))
}

// defaultTabuLength reproduces the reference implementation's tenure
// formula, shared by GSAT-Tabu and WalkSAT-Tabu.
func defaultTabuLength(numVars int) int {
	return int(0.01875*float64(numVars) + 2.8125)
}

// filterTabu returns the subset of lits whose variable is not tabu.
func filterTabu(lits []int, tabu *tabuList) []int {
	var allowed []int
	for _, lit := range lits {
		if !tabu.Contains(varOf(lit)) {
			allowed = append(allowed, lit)
		}
	}
	return allowed
}
