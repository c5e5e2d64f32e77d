package slssat

// RoTSSelector implements Robust Tabu Search (Taillard 1991, adapted for
// MAX-SAT by Smyth, Hoos & Stutzle 2003): tabuTenureMove's best-non-tabu
// rule with an aspiration exception, a periodic forced flip of the
// longest-unmoved variable, and a tabu tenure resampled uniformly every n
// flips. It implements tryRunner because those two periodic behaviors are
// driven off the flip counter directly rather than fitting a single
// Step/PostStep call.
type RoTSSelector struct {
	tenureMin, tenureMax, tenure int64
	checkFreq                    int64
}

var _ tryRunner = (*RoTSSelector)(nil)

func NewRoTS() *RoTSSelector { return &RoTSSelector{} }

func (s *RoTSSelector) Name() string { return "rots" }

func (s *RoTSSelector) BeginTry(e *Engine) {
	n := int64(e.Formula.NumVars)
	s.tenureMin = n / 10
	s.tenureMax = s.tenureMin * 3
	s.tenure = n/10 + 4
	s.checkFreq = n * 10
}

// Step/PostStep are never called on this selector: RunTry drives it.
func (s *RoTSSelector) Step(e *Engine) (int, bool)  { return 0, false }
func (s *RoTSSelector) PostStep(e *Engine, lit int) {}

func (s *RoTSSelector) RunTry(e *Engine, budget int64) bool {
	for e.FlipCount < budget && !e.IsSAT() {
		lit := tabuTenureMove(e, s.tenure, e.BestCost)
		e.Flip(lit)
		e.UpdateBest()
		forceOldestFlip(e, s.checkFreq)
		if e.Formula.NumVars > 0 && e.FlipCount%int64(e.Formula.NumVars) == 0 {
			span := s.tenureMax - s.tenureMin + 1
			if span > 0 {
				s.tenure = s.tenureMin + int64(e.Rng.Intn(int(span)))
			}
		}
	}
	return e.IsSAT()
}
