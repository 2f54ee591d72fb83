package cmdp

import "github.com/arthuralsett/cmdp-safety/extint"

// SparseMDP is a concrete, in-memory CMDP: a dense action table over a
// sparse transition matrix, the same shape storm's
// sparse::Mdp<double, StandardRewardModel<double>> plays in the ported
// algorithms, but built directly in Go rather than through a PRISM
// model-building pipeline (see modelio for the explicit YAML front end
// that plays that external collaborator's role).
type SparseMDP struct {
	numActions  int
	cost        [][]extint.ExtInt   // cost[s][a]
	succ        [][][]Successor     // succ[s][a] = sparse row
	reload      []bool
	target      []bool
}

var _ CMDP = (*SparseMDP)(nil)

func (m *SparseMDP) NumStates() int                { return len(m.cost) }
func (m *SparseMDP) NumActions(State) int          { return m.numActions }
func (m *SparseMDP) Cost(s State, a Action) extint.ExtInt {
	return m.cost[s][a]
}
func (m *SparseMDP) Successors(s State, a Action) []Successor {
	return m.succ[s][a]
}
func (m *SparseMDP) IsReload(s State) bool { return m.reload[s] }
func (m *SparseMDP) IsTarget(s State) bool { return m.target[s] }

// Builder assembles a SparseMDP incrementally, state by state, the way
// a model-building front end (modelio's YAML loader, or a test) would.
// It mirrors a *Graph/AddState/AddEdge builder shape adapted from an
// unweighted successor relation to a per-action cost and
// probability-weighted one.
type Builder struct {
	states []stateBuild
}

type stateBuild struct {
	reload  bool
	target  bool
	actions []actionBuild
}

type actionBuild struct {
	cost int64
	succ []Successor
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddState appends a new state and returns its index.
func (b *Builder) AddState(reload, target bool) State {
	b.states = append(b.states, stateBuild{reload: reload, target: target})
	return State(len(b.states) - 1)
}

// AddAction appends an action to state s with the given cost and
// successor distribution, and returns its index. succ must be
// non-empty and its probabilities must sum to (approximately) 1; the
// caller (typically modelio) is responsible for that invariant, since
// validating stochastic matrices is part of the external model-parsing
// collaborator's job, not this package's.
func (b *Builder) AddAction(s State, cost int64, succ []Successor) Action {
	st := &b.states[s]
	st.actions = append(st.actions, actionBuild{cost: cost, succ: succ})
	return Action(len(st.actions) - 1)
}

// Build finalises the SparseMDP. It fails with UnsupportedModel if any
// state has a different action count than state 0: the core assumes a
// constant per-state action count, and a variable arity input must be
// rejected rather than silently truncated or padded.
func (b *Builder) Build() (*SparseMDP, error) {
	n := len(b.states)
	if n == 0 {
		return nil, Errorf(UnsupportedModel, nil, "model has no states")
	}
	numActions := len(b.states[0].actions)
	if numActions == 0 {
		return nil, Errorf(UnsupportedModel, nil, "state 0 has no actions")
	}
	m := &SparseMDP{
		numActions: numActions,
		cost:       make([][]extint.ExtInt, n),
		succ:       make([][][]Successor, n),
		reload:     make([]bool, n),
		target:     make([]bool, n),
	}
	for s, st := range b.states {
		if len(st.actions) != numActions {
			return nil, Errorf(UnsupportedModel, nil,
				"state %d has %d actions, want %d (variable per-state action arity is unsupported)",
				s, len(st.actions), numActions)
		}
		m.reload[s] = st.reload
		m.target[s] = st.target
		m.cost[s] = make([]extint.ExtInt, numActions)
		m.succ[s] = make([][]Successor, numActions)
		for a, act := range st.actions {
			if act.cost < 0 {
				return nil, Errorf(UnsupportedModel, nil,
					"cost(%d,%d) = %d is negative", s, a, act.cost)
			}
			if len(act.succ) == 0 {
				return nil, Errorf(UnsupportedModel, nil,
					"action (%d,%d) has no successors", s, a)
			}
			m.cost[s][a] = extint.Finite(act.cost)
			m.succ[s][a] = act.succ
		}
	}
	return m, nil
}
