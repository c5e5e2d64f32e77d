// Package slssat implements a family of stochastic local-search solvers for
// Boolean satisfiability in conjunctive normal form. Given a propositional
// formula, a Selector searches for a satisfying assignment by repeatedly
// flipping variables; the search is incomplete and reports Unknown when its
// flip budget runs out, never Unsat.
//
// The shared incremental bookkeeping (assignment, clause/literal index,
// per-clause satisfied-literal counts, the set of currently unsatisfied
// clauses) lives in Engine. Each heuristic - GSAT, WalkSAT, Novelty and its
// variants, the tabu-search family, and AMLS - implements Selector and
// plugs into the same Engine and the same outer restart loop in Run.
package slssat
