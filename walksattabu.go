package slssat

// WalkSATTabuSelector implements WalkSAT-Tabu: WalkSAT's random-clause,
// break-count rule restricted to non-tabu variables. A random UNSAT clause
// is drawn and its tabu literals discarded; if that empties the clause,
// another UNSAT clause is tried; once every UNSAT clause has been tried
// and exhausted, tabu status is ignored entirely for one step. Every push
// onto the tabu list stores the flipped variable's magnitude, never a
// signed literal - the reference implementation's add_tabu pushes
// abs(literal) while the list is filling but the raw signed literal once
// it's full and wrapping, which would make later Contains checks miss a
// tabu variable whose opposite literal was the one stored.
type WalkSATTabuSelector struct {
	SKC        bool
	RandomWalk bool
	Noise      float64
	TabuLength int

	tabu *tabuList
}

func NewWalkSATTabu(randomWalk bool, noise float64, tabuLength int) *WalkSATTabuSelector {
	return &WalkSATTabuSelector{SKC: true, RandomWalk: randomWalk, Noise: noise, TabuLength: tabuLength}
}

func (s *WalkSATTabuSelector) Name() string { return "walksat-tabu" }

func (s *WalkSATTabuSelector) BeginTry(e *Engine) {
	length := s.TabuLength
	if length == 0 {
		length = defaultTabuLength(e.Formula.NumVars)
	}
	s.tabu = newTabuList(length)
}

func (s *WalkSATTabuSelector) Step(e *Engine) (int, bool) {
	candidates := e.Unsat.Slice()
	if len(candidates) == 0 {
		return 0, false
	}
	remaining := append([]int(nil), candidates...)
	var clause []int
	for len(clause) == 0 && len(remaining) > 0 {
		i := e.Rng.Intn(len(remaining))
		ci := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
		clause = filterTabu(e.Formula.Clauses[ci], s.tabu)
	}
	if len(clause) == 0 {
		ci := candidates[e.Rng.Intn(len(candidates))]
		clause = e.Formula.Clauses[ci]
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

func (s *WalkSATTabuSelector) PostStep(e *Engine, lit int) {
	s.tabu.Push(varOf(lit))
}
