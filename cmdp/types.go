// Package cmdp implements the core fixed-point computations for
// resource-safe controllers of Consumption Markov Decision Processes:
// MinInitCons, Safe, SafePR and the counter selector they build.
//
// It is the Go-native descendant of storm's storm-cmdp module
// (algorithms/algorithms.cpp, counter-selector/CounterSelector.cpp,
// extended-integer/ExtendedInteger.cpp), generalised the way a Kripke
// structure is generalised into a Graph/Formula pair: a small read-only
// interface (CMDP) plays the role a Graph plays for CTL, and the fixed
// points here play the role of EU/EG.
package cmdp

import "github.com/arthuralsett/cmdp-safety/extint"

// State indexes a CMDP state, 0 <= State < CMDP.NumStates().
type State int

// Action indexes an action available at a particular state,
// 0 <= Action < CMDP.NumActions(s).
type Action int

// Successor is one entry of a transition's support: a destination
// state reached with probability Prob > 0.
type Successor struct {
	State State
	Prob  float64
}

// CMDP is the read-only view the core consumes: a finite Consumption
// Markov Decision Process. Implementations are expected to have a
// constant action count across all states. Builder.Build enforces this
// at construction (see errors.go UnsupportedModel) so the rest of the
// package can call NumActions(s) without re-checking it.
type CMDP interface {
	// NumStates returns the number of states N; valid states are
	// 0 <= s < N.
	NumStates() int
	// NumActions returns the number of actions available at s.
	NumActions(s State) int
	// Cost returns C(s,a), always a finite non-negative ExtInt.
	Cost(s State, a Action) extint.ExtInt
	// Successors returns the support of P(s,a,·): every state reached
	// with probability > 0, in a fixed deterministic order.
	Successors(s State, a Action) []Successor
	// IsReload reports whether s is a reload state.
	IsReload(s State) bool
	// IsTarget reports whether s is a target state.
	IsTarget(s State) bool
}

// ReloadSet is a mutable view of a subset of states, used by the
// MinInitCons/Safe fixed points to represent the shrinking reload set
// R without mutating the CMDP itself.
type ReloadSet struct {
	in []bool
}

// NewReloadSet builds a ReloadSet containing exactly the reload states
// of cmdp.
func NewReloadSet(c CMDP) *ReloadSet {
	in := make([]bool, c.NumStates())
	for s := 0; s < c.NumStates(); s++ {
		in[s] = c.IsReload(State(s))
	}
	return &ReloadSet{in: in}
}

// Has reports whether s is currently in the set.
func (r *ReloadSet) Has(s State) bool { return r.in[s] }

// Remove takes s out of the set.
func (r *ReloadSet) Remove(s State) { r.in[s] = false }

// States returns the set's members in ascending order.
func (r *ReloadSet) States() []State {
	out := make([]State, 0, len(r.in))
	for s, in := range r.in {
		if in {
			out = append(out, State(s))
		}
	}
	return out
}
