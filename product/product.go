// Package product materialises the deterministic product of a CMDP
// and its resource counter, following a fixed counter selector. It is
// the Go-native descendant of storm-cmdp's product-MDP construction,
// built the way rfielding/kripke-ctl's kripke.Graph/SimpleGraph pair
// is built: a compact successor-set graph plus label sets, shaped for
// the fixed-point reachability checks the validate package runs on it.
package product

import (
	"fmt"

	"github.com/arthuralsett/cmdp-safety/cmdp"
)

// State indexes a product state. Product states 0..N*(cap+1)-1 encode
// (s,r) pairs; the single remaining state, Drain, is the absorbing
// drained state.
type State int

// MDP is the materialised product CMDP x {0,...,cap} u {drain}. Every
// transition here has probability > 0 on its support by construction
// (either a single deterministic successor, or a copy of the
// underlying CMDP's successor distribution), so qualitative
// reachability over Succ exactly decides "reachable with positive
// probability": no probability bookkeeping is needed past this point,
// matching the validator's use of it as a plain directed graph.
type MDP struct {
	c        cmdp.CMDP
	cap      int64
	selector cmdp.CounterSelector

	numOriginal int
	drain       State
	succ        [][]State
	isTarget    []bool
}

// Encode maps (s,r) to its product state index.
func Encode(s cmdp.State, r int64, cap int64) State {
	return State(int64(s)*(cap+1) + r)
}

// Decode recovers (s,r) from a non-drain product state index.
func Decode(q State, cap int64) (cmdp.State, int64) {
	return cmdp.State(int64(q) / (cap + 1)), int64(q) % (cap + 1)
}

// Build materialises the product MDP for c under selector: at each
// (s,r), the selector picks an action; a reload state resets
// the post-action resource to cap, any other state decrements it by
// the action's cost; a negative post-action resource routes to Drain
// instead of the action's real successors.
func Build(c cmdp.CMDP, cap int64, selector cmdp.CounterSelector) *MDP {
	n := c.NumStates()
	total := n*int(cap+1) + 1
	m := &MDP{
		c:           c,
		cap:         cap,
		selector:    selector,
		numOriginal: n,
		drain:       State(total - 1),
		succ:        make([][]State, total),
		isTarget:    make([]bool, total),
	}

	for s := 0; s < n; s++ {
		st := cmdp.State(s)
		target := c.IsTarget(st)
		for r := int64(0); r <= cap; r++ {
			q := Encode(st, r, cap)
			m.isTarget[q] = target

			a := cmdp.Lookup(selector, st, r)
			cost, err := c.Cost(st, a).Value()
			if err != nil {
				panic(fmt.Sprintf("product: cost(%d,%d) is not finite: %v", s, a, err))
			}

			postRes := r - cost
			if c.IsReload(st) {
				postRes = cap - cost
			}

			if postRes < 0 {
				m.succ[q] = []State{m.drain}
				continue
			}

			row := c.Successors(st, a)
			out := make([]State, 0, len(row))
			for _, sc := range row {
				out = append(out, Encode(sc.State, postRes, cap))
			}
			m.succ[q] = out
		}
	}

	m.succ[m.drain] = []State{m.drain}
	return m
}

// NumStates returns the total product state count, N*(cap+1)+1.
func (m *MDP) NumStates() int { return len(m.succ) }

// Succ returns q's successor set (deduplication is not required by
// any caller here; reachability closures tolerate repeats).
func (m *MDP) Succ(q State) []State { return m.succ[q] }

// IsTarget reports whether q is labelled target.
func (m *MDP) IsTarget(q State) bool {
	if q == m.Drain() {
		return false
	}
	return m.isTarget[q]
}

// Drain returns the absorbing drained state's index.
func (m *MDP) Drain() State { return m.drain }

// EncodeState is Encode bound to this MDP's capacity.
func (m *MDP) EncodeState(s cmdp.State, r int64) State { return Encode(s, r, m.cap) }
