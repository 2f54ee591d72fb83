package cmdp

// UndefinedAction is the selector's ⊥: "no obligation at this
// resource level". Matches CounterSelector.h's undefinedAction = -1.
const UndefinedAction Action = -1

// SelectionRule maps a resource level 0..cap to an action, or to
// UndefinedAction. It is a table indexed by level, not a function of
// it.
type SelectionRule []Action

// CounterSelector is one SelectionRule per state.
type CounterSelector []SelectionRule

// NewCounterSelector builds an all-undefined selector shaped
// numStates x (cap+1).
func NewCounterSelector(numStates int, cap int64) CounterSelector {
	cs := make(CounterSelector, numStates)
	for s := range cs {
		rule := make(SelectionRule, cap+1)
		for i := range rule {
			rule[i] = UndefinedAction
		}
		cs[s] = rule
	}
	return cs
}

// Lookup implements the fallback rule: scan downward from r for the
// first defined entry at s; if none is found, action 0 is returned as
// a defined fallback, so Lookup is total over 0 <= r <= cap.
func Lookup(cs CounterSelector, s State, r int64) Action {
	rule := cs[s]
	for x := r; x >= 0; x-- {
		if rule[x] != UndefinedAction {
			return rule[x]
		}
	}
	return 0
}
