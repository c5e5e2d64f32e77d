package slssat

// tabuTenureMove selects a move the way Robust Tabu Search does, and is
// shared by RoTS, IRoTS's inner LS/perturbation phases, and AMLS's
// perturbation phase: prefer the best non-tabu literal (GSAT net-cost
// score), but let a tabu literal through when it both beats the best
// non-tabu score and would put the try's UNSAT count below the
// incumbent best (the aspiration exception). Falls back to the
// unrestricted candidate set when every candidate is currently tabu.
func tabuTenureMove(e *Engine, tenure int64, bestCost int) int {
	lits := e.UnsatLiterals()
	allowed, tabooed := partitionTabu(e, lits, tenure)
	if len(allowed) == 0 {
		allowed, tabooed = lits, nil
	}
	ntbScores := scoreLiterals(e, allowed, 1, 1)
	bestAllowed := allowed[argMinLit(ntbScores)]
	if len(tabooed) == 0 {
		return bestAllowed
	}
	tbScores := scoreLiterals(e, tabooed, 1, 1)
	bestTabooIdx := argMinLit(tbScores)
	currentCost := e.Unsat.Len()
	if tbScores[bestTabooIdx] < minInt(ntbScores) && currentCost+tbScores[bestTabooIdx] < bestCost {
		return tabooed[bestTabooIdx]
	}
	return bestAllowed
}

// partitionTabu splits lits into variables allowed to move (last moved at
// least tenure flips ago) and those still tabu. A never-flipped variable
// has LastMove -1, so it counts as moved one flip before the try began.
// tenure<=0 disables tabu entirely.
func partitionTabu(e *Engine, lits []int, tenure int64) (allowed, tabooed []int) {
	if tenure <= 0 {
		return lits, nil
	}
	for _, lit := range lits {
		v := varOf(lit)
		if e.FlipCount-e.LastMove[v-1] < tenure {
			tabooed = append(tabooed, lit)
		} else {
			allowed = append(allowed, lit)
		}
	}
	return allowed, tabooed
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// forceOldestFlip is the long-term diversification shared by RoTS, IRoTS,
// and AMLS: every checkFreq flips, if the longest-unmoved variable has
// gone unmoved for longer than checkFreq itself, force it to flip. Reports
// whether it fired.
func forceOldestFlip(e *Engine, checkFreq int64) bool {
	if checkFreq <= 0 || e.FlipCount%checkFreq != 0 {
		return false
	}
	v := e.OldestUnmoved()
	if e.FlipCount-e.LastMove[v-1] > checkFreq {
		e.Flip(v)
		return true
	}
	return false
}
