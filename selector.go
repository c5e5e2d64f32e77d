package slssat

// Selector is the pluggable variable-selection strategy shared by every
// heuristic. All of them consult the same Engine (assignment, scoring,
// UNSAT set) and differ only in how Step picks a literal and what PostStep
// does with it afterwards (tabu bookkeeping, noise/tenure adaptation).
type Selector interface {
	// Name identifies the heuristic, e.g. for CLI selection and stats.
	Name() string
	// BeginTry resets any per-try selector state (tabu list, most-recent
	// move, noise level, tabu tenure...) at the start of a fresh restart,
	// after Engine.RandomAssignment/RecomputeCosts have already run.
	BeginTry(e *Engine)
	// Step chooses the next literal to flip. ok is false only if e.Unsat is
	// empty, which callers should treat as "nothing left to do". Selectors
	// that implement tryRunner are driven through RunTry instead, and their
	// Step always reports ok=false.
	Step(e *Engine) (lit int, ok bool)
	// PostStep runs immediately after e.Flip(lit): tabu list maintenance
	// and/or parameter adaptation.
	PostStep(e *Engine, lit int)
}

// tryRunner is implemented by selectors whose control flow doesn't fit the
// uniform per-flip Step/PostStep loop: RoTS drives its forced flips and
// tenure resampling off the flip counter, H-RTS alternates a greedy-descent
// phase with a bounded tabu-search phase, IRoTS layers local search,
// perturbation, local search again, and an acceptance test, and AMLS folds
// its own search/perturbation phases and flip budget together. Those four
// implement RunTry themselves using the same Engine primitives everyone
// else uses (Flip, Score, UnsatLiterals, ...); the Controller defers to
// RunTry instead of driving the loop itself whenever a Selector implements
// this interface.
type tryRunner interface {
	// RunTry executes one full try (already past RandomAssignment and
	// RecomputeCosts) up to budget flips, and reports whether it reached
	// SAT. It is responsible for calling e.UpdateBest as it goes.
	RunTry(e *Engine, budget int64) bool
}

// budgetOverrider is implemented by selectors that compute their own flip
// budget per try instead of the controller's 100*n default (AMLS uses
// floor(n^2/4), per spec §4.4).
type budgetOverrider interface {
	TryBudget(numVars int) int64
}

// argMinLit returns the index of the minimum-scoring literal in lits
// (parallel to scores), breaking ties by first occurrence.
func argMinLit(scores []int) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	return best
}

// firstSecondMin scans scores (parallel to lits, both nonempty) and returns
// the index of the minimum and of a second-minimum following the same
// <=/< tie-break as the reference implementation's pick_1st_and_2nd_min:
// a tie for first place demotes the previous first to second place.
func firstSecondMin(scores []int) (firstIdx, secondIdx int) {
	firstIdx, secondIdx = 0, 0
	first, second := scores[0], int(^uint(0)>>1) // no second seen yet
	for i := 1; i < len(scores); i++ {
		if scores[i] <= first {
			first, second = scores[i], first
			firstIdx, secondIdx = i, firstIdx
		} else if scores[i] < second {
			second = scores[i]
			secondIdx = i
		}
	}
	return firstIdx, secondIdx
}

// scoreLiterals scores every literal in lits with the given (bs, ms)
// weights, in order.
func scoreLiterals(e *Engine, lits []int, bs, ms int) []int {
	scores := make([]int, len(lits))
	for i, lit := range lits {
		scores[i] = e.Score(lit, bs, ms)
	}
	return scores
}

// clampFloat restricts x to [lo, hi].
func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
