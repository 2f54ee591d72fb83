package cmdp

import "github.com/arthuralsett/cmdp-safety/extint"

// ComputeSafe computes Safe(cap): the minimum initial fuel needed to
// indefinitely avoid fuel exhaustion under capacity cap. Grounded on
// algorithms.cpp's computeSafe, a loop that shrinks the reload set
// until every remaining reload state can be relied upon.
//
// It returns the Safe value vector and the final reload set. A reload
// state excluded here ends with Safe = +∞, so ComputeSafePR's
// Initialisation step never seeds a selector entry for it.
func ComputeSafe(c CMDP, cap int64) ([]extint.ExtInt, *ReloadSet) {
	capExt := extint.Finite(cap)
	r := NewReloadSet(c)

	for {
		mu := ComputeMinInitCons(c, r)
		changed := false
		for _, s := range r.States() {
			if mu[s].Greater(capExt) {
				r.Remove(s)
				changed = true
			}
		}
		if !changed {
			return finalizeSafe(mu, r, capExt), r
		}
	}
}

func finalizeSafe(mu []extint.ExtInt, r *ReloadSet, capExt extint.ExtInt) []extint.ExtInt {
	safe := make([]extint.ExtInt, len(mu))
	for s := range mu {
		switch {
		case r.Has(State(s)):
			safe[s] = extint.Finite(0)
		case mu[s].LessEqual(capExt):
			safe[s] = mu[s]
		default:
			safe[s] = extint.PosInf()
		}
	}
	return safe
}
