package cmdp

// The example CMDPs below are small, literal scenarios, hand-built the
// way order_model.go and purple_model.go hand-build example graphs for
// tests and demos.

// ExampleTwoStateLoop builds S1: a two-state loop where 0 reloads and
// 1 is the target, each action costing 1.
func ExampleTwoStateLoop() *SparseMDP {
	b := NewBuilder()
	s0 := b.AddState(true, false)
	s1 := b.AddState(false, true)
	b.AddAction(s0, 1, []Successor{{State: s1, Prob: 1}})
	b.AddAction(s1, 1, []Successor{{State: s0, Prob: 1}})
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// ExampleUnreachableTarget builds S2: two states, each a self-loop, so
// the target is never reached from the reload state.
func ExampleUnreachableTarget() *SparseMDP {
	b := NewBuilder()
	s0 := b.AddState(true, false)
	s1 := b.AddState(false, true)
	b.AddAction(s0, 1, []Successor{{State: s0, Prob: 1}})
	b.AddAction(s1, 1, []Successor{{State: s1, Prob: 1}})
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// ExampleTwoActions builds S3: from state 0, a cheap action reaches
// the target directly and an expensive one goes to the reload state,
// which only loops on itself and never reaches the target.
func ExampleTwoActions() *SparseMDP {
	b := NewBuilder()
	s0 := b.AddState(false, false)
	s1 := b.AddState(false, true)
	s2 := b.AddState(true, false)
	b.AddAction(s0, 1, []Successor{{State: s1, Prob: 1}})
	b.AddAction(s0, 2, []Successor{{State: s2, Prob: 1}})
	// s1 only needs one real action; both copies lead on to the reload
	// state (not a self-loop: a zero-cost cycle that never touches a
	// reload state would make MinInitCons diverge to +infinity under
	// the decreasing Kleene iteration, since nothing would ever force
	// the self-referencing candidate value down from its +infinity
	// seed). s2's self-loop is fine: its own reload-truncation rule
	// short-circuits the recursion before it becomes self-referential.
	b.AddAction(s1, 0, []Successor{{State: s2, Prob: 1}})
	b.AddAction(s1, 0, []Successor{{State: s2, Prob: 1}})
	b.AddAction(s2, 0, []Successor{{State: s2, Prob: 1}})
	b.AddAction(s2, 0, []Successor{{State: s2, Prob: 1}})
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
