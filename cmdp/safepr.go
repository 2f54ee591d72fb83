package cmdp

import "github.com/arthuralsett/cmdp-safety/extint"

// SafePRResult bundles SafePR's value vector with the counter selector
// built alongside it: the two are produced by the same fixed point and
// are never meaningful apart from each other.
type SafePRResult struct {
	Values   []extint.ExtInt
	Selector CounterSelector
}

// ComputeSafePR computes SafePR and its counter selector given the
// already-computed Safe vector, via the SPR-Val functional. The outer
// shape (least-fixpoint iteration accumulating a side table as it
// goes) is the same pattern kripke/ctl.go's EU uses to accumulate a
// StateSet, generalised from a boolean set to an ExtInt vector plus a
// selector.
func ComputeSafePR(c CMDP, cap int64, safe []extint.ExtInt) (*SafePRResult, error) {
	n := c.NumStates()
	capExt := extint.Finite(cap)
	sel := NewCounterSelector(n, cap)

	r := make([]extint.ExtInt, n)
	for s := 0; s < n; s++ {
		if c.IsTarget(State(s)) {
			r[s] = safe[s]
			continue
		}
		r[s] = extint.PosInf()
	}

	// Initialisation: seed the selector from Safe directly, before the
	// iteration below ever runs.
	for s := 0; s < n; s++ {
		st := State(s)
		if safe[s].IsInfinite() {
			continue
		}
		maxCost := safe[s]
		if c.IsReload(st) {
			maxCost = capExt
		}
		a, err := safeAction(c, st, safe, maxCost)
		if err != nil {
			return nil, err
		}
		sel[s][safe[s].MustValue()] = a
	}

	for {
		changed := false
		for s := 0; s < n; s++ {
			st := State(s)
			if c.IsTarget(st) {
				continue
			}

			best := extint.PosInf()
			bestAction := Action(0)
			for a := 0; a < c.NumActions(st); a++ {
				v := sprVal(c, st, Action(a), r, safe)
				if v.Less(best) {
					best = v
					bestAction = Action(a)
				}
			}

			truncated := best
			switch {
			case truncated.Greater(capExt):
				truncated = extint.PosInf()
			case c.IsReload(st):
				truncated = extint.Finite(0)
			}

			if truncated.Less(r[s]) {
				sel[s][truncated.MustValue()] = bestAction
			}
			if !truncated.Equal(r[s]) {
				r[s] = truncated
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return &SafePRResult{Values: r, Selector: sel}, nil
}

// sprVal computes SPR-Val(s,a,r): the policy commits to one successor
// t* to continue progressing via r, and requires every other successor
// of (s,a) to be at least Safe. When (s,a) has a single successor, the
// "other successors" max is vacuous, collapsing the max to r(t*) alone.
func sprVal(c CMDP, s State, a Action, r, safe []extint.ExtInt) extint.ExtInt {
	succ := c.Successors(s, a)
	best := extint.PosInf()
	for i := range succ {
		m := r[succ[i].State]
		for j := range succ {
			if j == i {
				continue
			}
			m = extint.Max(m, safe[succ[j].State])
		}
		best = extint.Min(best, m)
	}
	return extint.MustAdd(c.Cost(s, a), best)
}

// safeAction returns the smallest-indexed action at s whose cost plus
// the worst-case Safe value among its successors stays within
// maxCost. Used only to seed the selector from an already-finite Safe
// value, so failing to find one indicates a bug in Safe itself rather
// than a bad input.
func safeAction(c CMDP, s State, safe []extint.ExtInt, maxCost extint.ExtInt) (Action, error) {
	for a := 0; a < c.NumActions(s); a++ {
		worst := extint.Finite(0)
		for _, succ := range c.Successors(s, Action(a)) {
			worst = extint.Max(worst, safe[succ.State])
		}
		total, err := extint.Add(c.Cost(s, Action(a)), worst)
		if err != nil {
			return 0, Errorf(UndefinedArithmetic, err, "safeAction(%d)", s)
		}
		if total.LessEqual(maxCost) {
			return Action(a), nil
		}
	}
	return 0, Errorf(ValidationFailed, nil,
		"no safe action found at state %d despite a finite Safe value", s)
}
