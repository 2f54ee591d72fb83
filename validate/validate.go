// Package validate checks that a counter selector actually satisfies
// the two guarantees it claims to: that the target is reachable with
// positive probability, and that the drained state never is, from
// every product state a successfully-solved original state lands on.
//
// Both checks reduce to qualitative graph reachability, because every
// transition product.Build materialises has probability > 0 on its
// support: "reachable with positive probability" is exactly graph
// reachability here. The reachability closure itself is the same
// least-fixpoint-over-Pre_E loop as kripke/ctl.go's EU{true, target}
// (equivalently EF), generalised from kripke.StateSet to a plain
// map[product.State]bool.
package validate

import (
	"github.com/arthuralsett/cmdp-safety/cmdp"
	"github.com/arthuralsett/cmdp-safety/extint"
	"github.com/arthuralsett/cmdp-safety/product"
)

// Failure records one original state at which the selector fails one
// of the two guarantees.
type Failure struct {
	State  cmdp.State
	Reason string
}

// Result is the validator's verdict: OK iff Failures is empty.
type Result struct {
	OK       bool
	Failures []Failure
}

// Validate checks: for every original state s with SafePR(s) <= cap,
// let q = (s, value(SafePR(s))) in the product; confirm target is
// reachable from q and drain is not.
func Validate(c cmdp.CMDP, p *product.MDP, safePR []extint.ExtInt) Result {
	canReachTarget := reachSet(p, p.IsTarget)
	canReachDrain := reachSet(p, func(q product.State) bool { return q == p.Drain() })

	var failures []Failure
	for s := 0; s < c.NumStates(); s++ {
		st := cmdp.State(s)
		if safePR[s].IsInfinite() {
			continue
		}
		q := p.EncodeState(st, safePR[s].MustValue())
		if !canReachTarget[q] {
			failures = append(failures, Failure{State: st, Reason: "target is not reachable with positive probability"})
		}
		if canReachDrain[q] {
			failures = append(failures, Failure{State: st, Reason: "drain is reachable with positive probability"})
		}
	}
	return Result{OK: len(failures) == 0, Failures: failures}
}

// reachSet computes the set of product states from which some state
// satisfying label is reachable (reflexively): W0 = label, W_{i+1} =
// W_i u Pre_E(W_i), to a fixpoint.
func reachSet(p *product.MDP, label func(product.State) bool) map[product.State]bool {
	n := p.NumStates()
	w := make(map[product.State]bool, n)
	for q := 0; q < n; q++ {
		if label(product.State(q)) {
			w[product.State(q)] = true
		}
	}
	for {
		changed := false
		for q := 0; q < n; q++ {
			state := product.State(q)
			if w[state] {
				continue
			}
			for _, t := range p.Succ(state) {
				if w[t] {
					w[state] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			return w
		}
	}
}
