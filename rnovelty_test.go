package slssat

import "testing"

func TestRNoveltyPicksSecondTable(t *testing.T) {
	cases := []struct {
		name string
		p, r float64
		n    int
		want bool
	}{
		{"low noise, n>1 never picks second", 0.3, 0.99, 2, false},
		{"low noise, n==1 below threshold picks second", 0.3, 0.1, 1, true},
		{"low noise, n==1 above threshold keeps best", 0.3, 0.9, 1, false},
		{"high noise, n==1 always picks second", 0.7, 0.99, 1, true},
		{"high noise, n>1 below threshold picks second", 0.7, 0.1, 2, true},
		{"high noise, n>1 above threshold keeps best", 0.7, 0.9, 2, false},
		{"all tied falls back to plain novelty below p", 0.6, 0.1, 0, true},
		{"all tied falls back to plain novelty above p", 0.6, 0.9, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := rNoveltyPicksSecond(c.p, c.r, c.n); got != c.want {
				t.Errorf("rNoveltyPicksSecond(%v, %v, %d) = %v, want %v", c.p, c.r, c.n, got, c.want)
			}
		})
	}
}

func TestRNoveltySkipsSecondWhenFirstIsNotMostRecent(t *testing.T) {
	f := scenarioFormula(t)
	e := NewEngine(f, 1)
	e.Rng = &fakeRand{float64: func() float64 { return 0 }}
	e.Assignment = []int{1, 2, -3}
	e.RecomputeCosts()

	sel := NewRNovelty(0.9)
	sel.BeginTry(e)

	lit, ok := sel.Step(e)
	if !ok {
		t.Fatal("expected a candidate literal")
	}
	scores := scoreLiterals(e, e.UnsatLiterals(), 1, 1)
	best := e.UnsatLiterals()[argMinLit(scores)]
	if lit != best {
		t.Errorf("Step returned %d, want best %d since most_recent is unset", lit, best)
	}
}
