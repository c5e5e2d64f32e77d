package slssat

import "time"

// DefaultMaxTries is MAX_TRIES from spec §4.4.
const DefaultMaxTries = 50

// flipsPerVar is the multiplier in the base MAX_FLIPS = 100*n (spec §4.4).
const flipsPerVar = 100

// Config controls the restart/perturbation outer loop. Zero values select
// the spec defaults.
type Config struct {
	MaxTries int64 // 0 -> DefaultMaxTries
	MaxFlips int64 // 0 -> 100*NumVars (selectors may still override via budgetOverrider)
	Seed     int64
}

func (c Config) withDefaults(numVars int) Config {
	if c.MaxTries <= 0 {
		c.MaxTries = DefaultMaxTries
	}
	if c.MaxFlips <= 0 {
		c.MaxFlips = int64(flipsPerVar * numVars)
	}
	return c
}

// Result is the outcome of a Run: the stats printed by the CLI and, if Sat,
// a satisfying model.
type Result struct {
	Selector string
	Flips    int64
	Tries    int64
	Elapsed  time.Duration
	Sat      bool
	Model    []int // nil unless Sat; Model[v-1] is the signed literal for var v
}

// Run drives the outer restart/perturbation loop of spec §4.4: generate a
// fresh random assignment, hand control to sel for up to this try's flip
// budget (either the uniform Step/PostStep loop, or the selector's own
// RunTry if it implements tryRunner), track the best cost seen, and repeat
// until SAT or MaxTries is exhausted.
func Run(f Formula, sel Selector, cfg Config) Result {
	cfg = cfg.withDefaults(f.NumVars)
	e := NewEngine(f, cfg.Seed)
	start := time.Now()

	// The UNSAT set is empty before the first RandomAssignment, so IsSAT is
	// only consulted once a try has actually run.
	for e.TryCount < cfg.MaxTries && (e.TryCount == 0 || !e.IsSAT()) {
		e.RandomAssignment()
		e.RecomputeCosts()
		e.UpdateBest()
		sel.BeginTry(e)

		budget := cfg.MaxFlips
		if bo, ok := sel.(budgetOverrider); ok {
			if b := bo.TryBudget(f.NumVars); b > 0 {
				budget = b
			}
		}

		if tr, ok := sel.(tryRunner); ok {
			tr.RunTry(e, budget)
			continue
		}
		for e.FlipCount < budget && !e.IsSAT() {
			lit, ok := sel.Step(e)
			if !ok {
				break
			}
			e.Flip(lit)
			e.UpdateBest()
			sel.PostStep(e, lit)
		}
	}

	res := Result{
		Selector: sel.Name(),
		Flips:    e.TotalFlips,
		Tries:    e.TryCount,
		Elapsed:  time.Since(start),
	}
	if e.IsSAT() {
		res.Sat = true
		res.Model = e.SnapshotAssignment()
	}
	return res
}
