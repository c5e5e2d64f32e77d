package slssat

// HammingRTSSelector implements Hamming-distance Reactive Tabu Search
// (Battiti & Tecchiolli 1994; Battiti & Protasi 1997): a greedy-descent
// local search phase alternates with a fixed-length tabu-search phase of
// 2*(tenure+1) forced moves, and the tabu tenure reacts to the Hamming
// distance the tabu phase covered - growing when the search barely moved
// and shrinking when it moved too freely.
type HammingRTSSelector struct {
	tf        float64
	tenure    int64
	tabuVars  []int
	checkFreq int64
}

var _ tryRunner = (*HammingRTSSelector)(nil)

func NewHammingRTS() *HammingRTSSelector { return &HammingRTSSelector{} }

func (s *HammingRTSSelector) Name() string { return "hrts" }

func (s *HammingRTSSelector) BeginTry(e *Engine) {
	s.tf = 0.1
	s.tenure = int64(s.tf * float64(e.Formula.NumVars))
	if s.tenure < 4 {
		s.tenure = 4
	}
	s.tabuVars = nil
	s.checkFreq = int64(e.Formula.NumVars) * 10
}

func (s *HammingRTSSelector) Step(e *Engine) (int, bool)  { return 0, false }
func (s *HammingRTSSelector) PostStep(e *Engine, lit int) {}

func (s *HammingRTSSelector) RunTry(e *Engine, budget int64) bool {
	for e.FlipCount < budget && !e.IsSAT() {
		s.localSearch(e, budget)
		xi := e.SnapshotAssignment()
		if e.IsSAT() {
			return true
		}

		limit := 2 * (s.tenure + 1)
		for it := int64(0); it < limit && e.FlipCount < budget && !e.IsSAT(); it++ {
			lits := e.UnsatLiterals()
			allowed := filterTabuVars(lits, s.tabuVars)
			if len(allowed) == 0 {
				allowed = lits
			}
			scores := scoreLiterals(e, allowed, 1, 1)
			x := allowed[argMinLit(scores)]
			e.Flip(x)
			e.UpdateBest()
			s.addTabu(x)
		}
		xf := e.SnapshotAssignment()
		if e.IsSAT() {
			return true
		}
		s.react(xi, xf, e.Formula.NumVars)
	}
	return e.IsSAT()
}

// localSearch performs a greedy best-improving descent: repeatedly flip
// the strictly-improving literal with the lowest net score, stopping at
// the first local optimum (no strictly improving move left).
func (s *HammingRTSSelector) localSearch(e *Engine, budget int64) {
	for e.FlipCount < budget && !e.IsSAT() {
		lits := e.UnsatLiterals()
		if len(lits) == 0 {
			return
		}
		scores := scoreLiterals(e, lits, 1, 1)
		best := argMinLit(scores)
		if scores[best] >= 0 {
			return
		}
		e.Flip(lits[best])
		e.UpdateBest()
	}
}

func (s *HammingRTSSelector) addTabu(lit int) {
	v := varOf(lit)
	if int64(len(s.tabuVars)) < s.tenure {
		s.tabuVars = append(s.tabuVars, v)
		return
	}
	if len(s.tabuVars) == 0 {
		return
	}
	copy(s.tabuVars, s.tabuVars[1:])
	s.tabuVars[len(s.tabuVars)-1] = v
}

// react adjusts Tf (and hence the tenure for the next tabu phase) based on
// how much of the assignment the tabu phase actually moved: too little
// movement grows Tf, too much shrinks it.
func (s *HammingRTSSelector) react(xi, xf []int, numVars int) {
	deriv := float64(hammingDistance(xi, xf))/float64(s.tenure+1) - 1
	if deriv <= 0 {
		s.tf += 0.01
	} else if deriv > 0.5 {
		s.tf -= 0.01
	}
	s.tf = clampFloat(s.tf, 0.025, 0.25)
	s.tenure = int64(s.tf * float64(numVars))
	if s.tenure < 4 {
		s.tenure = 4
	}
}

func hammingDistance(a, b []int) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// filterTabuVars returns the subset of lits whose variable is not present
// in tabuVars.
func filterTabuVars(lits []int, tabuVars []int) []int {
	if len(tabuVars) == 0 {
		return lits
	}
	tabu := make(map[int]bool, len(tabuVars))
	for _, v := range tabuVars {
		tabu[v] = true
	}
	var allowed []int
	for _, lit := range lits {
		if !tabu[varOf(lit)] {
			allowed = append(allowed, lit)
		}
	}
	return allowed
}
