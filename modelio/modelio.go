// Package modelio is a concrete implementation of an external
// model-parsing collaborator. Rather than a full
// probabilistic-guarded-command (PRISM) grammar, it reads a small YAML
// document covering a capacity constant, a per-(state,action) cost
// reward structure, and the reload/target labels, with the
// constant-action-arity restriction cmdp.Builder already enforces.
// gopkg.in/yaml.v3 does the decoding.
package modelio

import (
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthuralsett/cmdp-safety/cmdp"
)

// Document is the on-disk shape: a flat list of states, each naming
// its own successor distributions per action.
type Document struct {
	Capacity *int64      `yaml:"capacity"`
	States   []StateDecl `yaml:"states"`
}

// StateDecl describes one state and its outgoing actions.
type StateDecl struct {
	Reload  bool         `yaml:"reload"`
	Target  bool         `yaml:"target"`
	Actions []ActionDecl `yaml:"actions"`
}

// ActionDecl describes one action: its cost and successor
// distribution. Successors map a 0-based state index to a
// probability; the map's values must sum to 1. cmdp.Builder trusts its
// caller, so modelio is the boundary that validates this, since
// malformed input here is external and must be reported, not trusted.
type ActionDecl struct {
	Cost       int64           `yaml:"cost"`
	Successors map[int]float64 `yaml:"successors"`
}

// Load reads and decodes a Document from path, and builds a CMDP and
// capacity from it.
func Load(path string) (cmdp.CMDP, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, cmdp.Errorf(cmdp.IoError, err, "opening model file %q", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and decodes a Document from r.
func Decode(r io.Reader) (cmdp.CMDP, int64, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, 0, cmdp.Errorf(cmdp.IoError, err, "decoding model document")
	}
	return build(doc)
}

func build(doc Document) (cmdp.CMDP, int64, error) {
	if doc.Capacity == nil {
		return nil, 0, cmdp.Errorf(cmdp.MissingCapacity, nil, "model document has no capacity")
	}
	if len(doc.States) == 0 {
		return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil, "model document has no states")
	}

	b := cmdp.NewBuilder()
	for _, sd := range doc.States {
		b.AddState(sd.Reload, sd.Target)
	}

	for s, sd := range doc.States {
		if len(sd.Actions) == 0 {
			return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil, "state %d has no actions", s)
		}
		for ai, ad := range sd.Actions {
			if len(ad.Successors) == 0 {
				return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil,
					"state %d action %d has no successors", s, ai)
			}
			tos := make([]int, 0, len(ad.Successors))
			for to := range ad.Successors {
				tos = append(tos, to)
			}
			sort.Ints(tos)

			var total float64
			succ := make([]cmdp.Successor, 0, len(ad.Successors))
			for _, to := range tos {
				p := ad.Successors[to]
				if to < 0 || to >= len(doc.States) {
					return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil,
						"state %d action %d: successor %d out of range", s, ai, to)
				}
				if p <= 0 {
					return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil,
						"state %d action %d: successor %d has non-positive probability %v", s, ai, to, p)
				}
				total += p
				succ = append(succ, cmdp.Successor{State: cmdp.State(to), Prob: p})
			}
			if total < 0.999 || total > 1.001 {
				return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil,
					"state %d action %d: successor probabilities sum to %v, want 1", s, ai, total)
			}
			b.AddAction(cmdp.State(s), ad.Cost, succ)
		}
	}

	m, err := b.Build()
	if err != nil {
		return nil, 0, err
	}
	return m, *doc.Capacity, nil
}

