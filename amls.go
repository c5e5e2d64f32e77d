package slssat

import "math"

// AMLSSelector implements Adaptive Memory-based Local Search (Lu & Hao
// 2012): a GSAT/tabu neighborhood search with an adaptive random-walk
// probability wp, an adaptive second-best-literal override probability p,
// and a per-clause penalty memory (vs/vf/ns/nf) recording which variable
// most recently caused each clause's last SAT/UNSAT transition and how
// often. It implements both tryRunner (a single try interleaves a search
// phase and a short perturbation phase) and budgetOverrider (its flip
// budget is n^2/4 flips, not the controller's default).
type AMLSSelector struct {
	p, wp              float64
	tabuTenure         int64
	noImprovementSteps float64
	definedStep        float64
	stagnation         bool
	checkFreq          int64

	vs, vf []int // per clause: variable that last caused SAT / UNSAT transition (0 = unset)
	ns, nf []int // per clause: repeat count of that same variable causing it again
}

var (
	_ tryRunner       = (*AMLSSelector)(nil)
	_ budgetOverrider = (*AMLSSelector)(nil)
)

func NewAMLS() *AMLSSelector { return &AMLSSelector{} }

func (s *AMLSSelector) Name() string { return "amls" }

func (s *AMLSSelector) TryBudget(numVars int) int64 {
	return int64(numVars) * int64(numVars) / 4
}

func (s *AMLSSelector) BeginTry(e *Engine) {
	n := e.Formula.NumVars
	s.p, s.wp = 0, 0
	s.tabuTenure = int64(n/10 + 4)
	s.noImprovementSteps = 0
	s.definedStep = float64(len(e.Formula.Clauses)) / 6
	s.stagnation = false
	s.checkFreq = int64(n) * 10

	s.vs = make([]int, len(e.Formula.Clauses))
	s.vf = make([]int, len(e.Formula.Clauses))
	s.ns = make([]int, len(e.Formula.Clauses))
	s.nf = make([]int, len(e.Formula.Clauses))
	e.OnTransition(s.onTransition)
}

func (s *AMLSSelector) onTransition(clauseIdx int, toSAT bool, v int) {
	if toSAT {
		if s.vs[clauseIdx] == v {
			s.ns[clauseIdx]++
		} else {
			s.vs[clauseIdx] = v
			s.ns[clauseIdx] = 1
		}
		return
	}
	if s.vf[clauseIdx] == v {
		s.nf[clauseIdx]++
	} else {
		s.vf[clauseIdx] = v
		s.nf[clauseIdx] = 1
	}
}

func (s *AMLSSelector) Step(e *Engine) (int, bool)  { return 0, false }
func (s *AMLSSelector) PostStep(e *Engine, lit int) {}

func (s *AMLSSelector) RunTry(e *Engine, budget int64) bool {
	for e.FlipCount < budget && !e.IsSAT() {
		lit := s.pickNeighborhood(e)
		e.Flip(lit)
		s.stagnation = !e.UpdateBest()
		s.updateParams(e)
	}
	if !e.IsSAT() {
		s.perturbate(e, budget)
	}
	e.OnTransition(nil)
	return e.IsSAT()
}

func (s *AMLSSelector) updateParams(e *Engine) {
	if s.stagnation {
		s.noImprovementSteps++
		if s.noImprovementSteps >= s.definedStep {
			s.wp += (0.05 - s.wp) / 5
			s.p += (1 - s.p) / 5
			s.noImprovementSteps = 0
		}
	} else {
		s.wp -= s.wp / 10
		s.p -= s.p / 10
	}
	lits := e.UnsatLiterals()
	allowed, tabooed := partitionTabu(e, lits, s.tabuTenure)
	total := len(allowed) + len(tabooed)
	s.tabuTenure = int64(1+e.Rng.Intn(10)) + int64(float64(total)*0.25)
}

func (s *AMLSSelector) pickNeighborhood(e *Engine) int {
	lits := e.UnsatLiterals()
	allowed, tabooed := partitionTabu(e, lits, s.tabuTenure)
	if len(allowed) == 0 {
		allowed, tabooed = lits, nil
	}
	ntbScores := scoreLiterals(e, allowed, 1, 1)
	id1, id2 := firstSecondMin(ntbScores)

	if len(tabooed) > 0 {
		tbScores := scoreLiterals(e, tabooed, 1, 1)
		bestTabooIdx := argMinLit(tbScores)
		if tbScores[bestTabooIdx] < minInt(ntbScores) && e.Unsat.Len()+tbScores[bestTabooIdx] < e.BestCost {
			return tabooed[bestTabooIdx]
		}
	}

	xnb, xnsb := allowed[id1], allowed[id2]
	if ntbScores[id1] < 0 {
		return xnb
	}
	if s.wp > 0 && e.Rng.Float64() < s.wp {
		return allowed[e.Rng.Intn(len(allowed))]
	}

	leastRecent := allowed[0]
	for _, lit := range allowed[1:] {
		if e.LastMove[varOf(leastRecent)-1] > e.LastMove[varOf(lit)-1] {
			leastRecent = lit
		}
	}
	if e.Rng.Float64() < s.p && xnb == leastRecent {
		if s.penalty(e, varOf(xnsb)) < s.penalty(e, varOf(xnb)) {
			return xnsb
		}
	}
	return xnb
}

// penalty scores variable v by how repeatedly it has been the one
// flipping a clause's satisfied/unsatisfied status, favoring variables
// that haven't been blamed for the same transition over and over.
func (s *AMLSSelector) penalty(e *Engine, v int) float64 {
	var sumRS, sumRF float64
	var nRS, nRF int
	for i := range e.Formula.Clauses {
		if s.vs[i] == v {
			sumRS += math.Pow(2, float64(s.ns[i]))
			nRS++
		}
		if s.vf[i] == v {
			sumRF += math.Pow(2, float64(s.nf[i]))
			nRF++
		}
	}
	var costRS, costRF float64
	if nRS > 0 {
		costRS = sumRS / (2 * float64(nRS))
	}
	if nRF > 0 {
		costRF = sumRF / (2 * float64(nRF))
	}
	return costRS + costRF
}

// perturbate runs up to 15 RoTS-style forced moves at a looser tenure to
// kick the search out of the local optimum the main phase settled into.
func (s *AMLSSelector) perturbate(e *Engine, budget int64) {
	tenure := int64(e.Formula.NumVars) / 2
	for i := 0; i < 15 && e.FlipCount < budget && !e.IsSAT(); i++ {
		lit := tabuTenureMove(e, tenure, e.BestCost)
		e.Flip(lit)
		e.UpdateBest()
		forceOldestFlip(e, s.checkFreq)
	}
}
