package slssat

import "fmt"

// Clause is an ordered, possibly-duplicate sequence of literals. A literal
// is a signed nonzero integer: the sign is polarity, the magnitude is the
// variable index (1..NumVars).
type Clause []int

// Formula is the immutable problem input: an ordered sequence of clauses
// over a fixed number of variables.
type Formula struct {
	Clauses []Clause
	NumVars int
}

// NewFormula validates and wraps a raw clause list, as produced by
// dimacs.Parse. It is the only supported way to build a Formula outside of
// the dimacs package, so that every Engine built from a Formula can assume
// clauses are well formed.
func NewFormula(clauses [][]int, numVars int) (Formula, error) {
	if numVars < 0 {
		return Formula{}, fmt.Errorf("slssat: negative variable count %d", numVars)
	}
	out := make([]Clause, len(clauses))
	for i, cls := range clauses {
		if len(cls) == 0 {
			return Formula{}, fmt.Errorf("slssat: clause %d is empty", i)
		}
		c := make(Clause, len(cls))
		for j, lit := range cls {
			if lit == 0 {
				return Formula{}, fmt.Errorf("slssat: clause %d contains literal 0", i)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > numVars {
				return Formula{}, fmt.Errorf("slssat: clause %d references var %d, but formula has %d vars", i, v, numVars)
			}
			c[j] = lit
		}
		out[i] = c
	}
	return Formula{Clauses: out, NumVars: numVars}, nil
}

func varOf(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}

// litIndex maps a signed literal to a dense [0, 2*NumVars) slot: even slots
// are the positive literal for a variable, odd slots the negative one. This
// is the array-backed equivalent of the "pool keyed by signed literal"
// described in the spec - a direct index instead of a map lookup or a
// linear scan, per the assignment-lookup design note.
func litIndex(lit int) int {
	v := varOf(lit)
	idx := (v - 1) * 2
	if lit < 0 {
		idx++
	}
	return idx
}
