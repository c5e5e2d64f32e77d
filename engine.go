package slssat

import (
	"math/rand"

	"github.com/pkg/errors"
)

// randSource is the subset of *rand.Rand the engine and selectors need;
// narrowing the dependency to an interface keeps the RNG swappable in
// tests without reaching for a heavier fake.
type randSource interface {
	Intn(n int) int
	Float64() float64
	Int63() int64
}

// TransitionFunc is notified whenever a flip moves a clause across the
// SAT/UNSAT boundary. AMLS uses it to maintain its vs/vf/ns/nf penalty
// memory without Engine.Flip needing to know AMLS exists.
type TransitionFunc func(clauseIdx int, toSAT bool, v int)

// Engine holds everything in the spec's Data Model section that is mutated
// by search: the assignment, the literal->clause pool, per-clause
// satisfied-literal counts, the UNSAT set, and per-variable last-move
// timestamps. The Formula and pool are built once and never mutated again
// (spec §3 Lifecycle); everything else is reinitialized on every try and
// mutated only by Flip.
type Engine struct {
	Formula Formula
	pool    [][]int // indexed by litIndex(lit) -> clause indices containing that literal

	Assignment []int // index v-1 -> +v or -v
	Costs      []int // per clause: count of currently-satisfied literals
	Unsat      *unsatSet
	LastMove   []int64 // per var (0-indexed): flip count at last flip, -1 if never flipped

	FlipCount  int64 // flips in the current try
	TotalFlips int64 // flips across all tries
	TryCount   int64 // tries (restarts) started so far, including the current one

	BestCost       int
	BestAssignment []int

	Rng randSource

	onTransition TransitionFunc
}

// NewEngine builds the immutable pool once from formula and prepares the
// per-try state for a first call to RandomAssignment.
func NewEngine(f Formula, seed int64) *Engine {
	e := &Engine{
		Formula:    f,
		pool:       make([][]int, 2*f.NumVars),
		Assignment: make([]int, f.NumVars),
		Costs:      make([]int, len(f.Clauses)),
		Unsat:      newUnsatSet(len(f.Clauses)),
		LastMove:   make([]int64, f.NumVars),
		Rng:        rand.New(rand.NewSource(seed)),
		BestCost:   len(f.Clauses) + 1,
	}
	for i, cls := range f.Clauses {
		for _, lit := range cls {
			idx := litIndex(lit)
			e.pool[idx] = append(e.pool[idx], i)
		}
	}
	return e
}

// OnTransition installs (or clears, with nil) the SAT/UNSAT transition
// hook. Selectors that need it install it in BeginTry and should clear it
// when done so it doesn't leak into another selector's run on a shared
// Engine.
func (e *Engine) OnTransition(fn TransitionFunc) { e.onTransition = fn }

// RandomAssignment independently draws each variable's polarity, resets the
// flip counter, and increments the try counter. Per the spec's lifecycle
// note and the "stalled nb_tries" bug in Design Notes, the controller must
// call this exactly once per restart - never conditionally - so the try
// counter can't stall.
func (e *Engine) RandomAssignment() {
	for v := 1; v <= e.Formula.NumVars; v++ {
		if e.Rng.Intn(2) == 0 {
			e.Assignment[v-1] = v
		} else {
			e.Assignment[v-1] = -v
		}
	}
	for v := range e.LastMove {
		e.LastMove[v] = -1
	}
	e.FlipCount = 0
	e.TryCount++
}

// RecomputeCosts rebuilds Costs and the UNSAT set from scratch for the
// current assignment (spec §4.1). It is O(sum of clause lengths).
func (e *Engine) RecomputeCosts() {
	e.Unsat.reset()
	for i, cls := range e.Formula.Clauses {
		count := 0
		for _, lit := range cls {
			if e.Assignment[varOf(lit)-1] == lit {
				count++
			}
		}
		e.Costs[i] = count
		if count == 0 {
			e.Unsat.Add(i)
		}
	}
}

// IsSAT reports whether the UNSAT set is currently empty.
func (e *Engine) IsSAT() bool { return e.Unsat.Len() == 0 }

// Flip toggles the polarity of the variable named by lit (the sign of lit
// itself is irrelevant - only its magnitude selects the variable, matching
// the source's habit of normalizing via an assignment lookup rather than
// trusting the caller's sign). Cost is proportional to the occurrence count
// of the variable, not to m (spec §4.1 complexity requirement).
func (e *Engine) Flip(lit int) {
	v := varOf(lit)
	old := e.Assignment[v-1]
	e.Assignment[v-1] = -old
	neu := -old

	for _, ci := range e.pool[litIndex(old)] {
		e.Costs[ci]--
		if e.Costs[ci] == 0 {
			e.Unsat.Add(ci)
			if e.onTransition != nil {
				e.onTransition(ci, false, v)
			}
		}
	}
	for _, ci := range e.pool[litIndex(neu)] {
		if e.Costs[ci] == 0 {
			e.Unsat.Remove(ci)
			if e.onTransition != nil {
				e.onTransition(ci, true, v)
			}
		}
		e.Costs[ci]++
	}
	e.LastMove[v-1] = e.FlipCount
	e.FlipCount++
	e.TotalFlips++
}

// BreakMake returns the break count (clauses that would become UNSAT) and
// make count (UNSAT clauses that would become SAT) for flipping the
// variable currently assigned as lit's sign - the sign of lit is ignored,
// per the base solver's evaluate_breakcount, which resolves to whichever
// polarity the variable actually holds.
func (e *Engine) BreakMake(lit int) (breakCount, makeCount int) {
	v := varOf(lit)
	cur := e.Assignment[v-1]
	for _, ci := range e.pool[litIndex(cur)] {
		if e.Costs[ci] == 1 {
			breakCount++
		}
	}
	for _, ci := range e.pool[litIndex(-cur)] {
		if e.Costs[ci] == 0 {
			makeCount++
		}
	}
	return breakCount, makeCount
}

// Score computes bs*break - ms*make for the variable named by lit. Lower is
// better: (1,0) is WalkSAT break-count scoring, (1,1) is GSAT net cost.
func (e *Engine) Score(lit int, bs, ms int) int {
	b, m := e.BreakMake(lit)
	return bs*b - ms*m
}

// UnsatLiterals returns the set of distinct literals occurring in currently
// UNSAT clauses (L_unsat), in a stable but otherwise arbitrary order. Two
// calls against the same Unsat/Formula state return the same slice
// contents and order, which is what determinism under a fixed seed needs.
func (e *Engine) UnsatLiterals() []int {
	seen := make(map[int]bool)
	var lits []int
	for _, ci := range e.Unsat.Slice() {
		for _, lit := range e.Formula.Clauses[ci] {
			if !seen[lit] {
				seen[lit] = true
				lits = append(lits, lit)
			}
		}
	}
	return lits
}

// RandomUnsatClause returns a uniformly random currently-UNSAT clause.
func (e *Engine) RandomUnsatClause() (Clause, int, bool) {
	ci, ok := e.Unsat.Sample(e.Rng)
	if !ok {
		return nil, 0, false
	}
	return e.Formula.Clauses[ci], ci, true
}

// UpdateBest records the current assignment as the new best if its cost
// (size of the UNSAT set) improves on BestCost. Returns true if it did.
func (e *Engine) UpdateBest() bool {
	cost := e.Unsat.Len()
	if cost < e.BestCost {
		e.BestCost = cost
		if e.BestAssignment == nil {
			e.BestAssignment = make([]int, len(e.Assignment))
		}
		copy(e.BestAssignment, e.Assignment)
		return true
	}
	return false
}

// SnapshotAssignment returns a copy of the current assignment, for
// selectors (IRoTS, H-RTS) that need to compare or restore a past state.
func (e *Engine) SnapshotAssignment() []int {
	snap := make([]int, len(e.Assignment))
	copy(snap, e.Assignment)
	return snap
}

// RestoreAssignment installs snap as the current assignment and rebuilds
// Costs/Unsat to match it.
func (e *Engine) RestoreAssignment(snap []int) {
	copy(e.Assignment, snap)
	e.RecomputeCosts()
}

// OldestUnmoved returns the variable whose LastMove timestamp is smallest
// (the one that has gone longest without being flipped), for the
// long-term-diversification forced flip shared by RoTS, IRoTS, and AMLS's
// perturbation phase.
func (e *Engine) OldestUnmoved() int {
	oldest := 0
	for v := 1; v < len(e.LastMove); v++ {
		if e.LastMove[v] < e.LastMove[oldest] {
			oldest = v
		}
	}
	return oldest + 1
}

// CheckInvariants verifies I1/I2 (costs match the assignment, UNSAT membership
// matches a zero count) against the current state. It never fires during
// normal operation; any caller that hits it has found an internal bug, not
// a user error, which is why it returns an error rather than (e.g.) silently
// repairing the state - per §7, an invariant breach is fatal and must be
// diagnosed, not masked.
func (e *Engine) CheckInvariants() error {
	for i, cls := range e.Formula.Clauses {
		count := 0
		for _, lit := range cls {
			if e.Assignment[varOf(lit)-1] == lit {
				count++
			}
		}
		if count != e.Costs[i] {
			return errors.Errorf("invariant I1 violated at clause %d: costs=%d, recomputed=%d", i, e.Costs[i], count)
		}
		if (count == 0) != e.Unsat.Contains(i) {
			return errors.Errorf("invariant I2 violated at clause %d: costs=%d, inUnsat=%v", i, count, e.Unsat.Contains(i))
		}
	}
	for v := 1; v <= e.Formula.NumVars; v++ {
		a := e.Assignment[v-1]
		if a != v && a != -v {
			return errors.Errorf("invariant I4 violated at var %d: assignment=%d", v, a)
		}
	}
	return nil
}
