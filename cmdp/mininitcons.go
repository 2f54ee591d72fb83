package cmdp

import "github.com/arthuralsett/cmdp-safety/extint"

// ComputeMinInitCons computes MinInitCons relative to a reload set r,
// which need not be the CMDP's own reload label set: Safe recomputes
// it against a shrinking candidate set. Ported from algorithms.cpp's
// computeMinInitCons/maxOverSuccessors; the running max over successors
// is seeded at finite zero rather than -∞, which is sound because
// resource values here are never negative.
func ComputeMinInitCons(c CMDP, r *ReloadSet) []extint.ExtInt {
	n := c.NumStates()
	mu := make([]extint.ExtInt, n)
	for s := range mu {
		mu[s] = extint.PosInf()
	}

	for {
		changed := false
		for s := 0; s < n; s++ {
			st := State(s)
			best := extint.PosInf()
			for a := 0; a < c.NumActions(st); a++ {
				maxVal := extint.Finite(0)
				for _, succ := range c.Successors(st, Action(a)) {
					hat := mu[succ.State]
					if r.Has(succ.State) {
						hat = extint.Finite(0)
					}
					maxVal = extint.Max(maxVal, hat)
				}
				candidate := extint.MustAdd(c.Cost(st, Action(a)), maxVal)
				best = extint.Min(best, candidate)
			}
			if !best.Equal(mu[s]) {
				mu[s] = best
				changed = true
			}
		}
		if !changed {
			return mu
		}
	}
}
