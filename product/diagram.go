package product

import (
	"fmt"
	"io"
)

// WriteMermaidStateDiagram renders m as a Mermaid stateDiagram-v2,
// labelling product states "s<i>_r<j>" and the drained state "drain".
// Adapted from kripke/diagram.go's WriteMermaidStateDiagram, generalised
// from an explicit SimpleGraph to reading directly off an *MDP.
func WriteMermaidStateDiagram(m *MDP, cap int64, w io.Writer) error {
	fmt.Fprintln(w, "stateDiagram-v2")

	label := func(q State) string {
		if q == m.Drain() {
			return "drain"
		}
		s, r := Decode(q, cap)
		return fmt.Sprintf("s%d_r%d", s, r)
	}

	seen := make(map[string]bool)
	for q := 0; q < m.NumStates(); q++ {
		from := label(State(q))
		for _, to := range m.Succ(State(q)) {
			key := from + "->" + label(to)
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(w, "  %s --> %s\n", from, label(to))
		}
	}
	return nil
}
