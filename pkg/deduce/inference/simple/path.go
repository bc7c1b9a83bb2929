package simple

import (
	"fmt"
	"strings"

	"github.com/cognicore/deduce/pkg/deduce/inference"
	"github.com/cognicore/deduce/pkg/deduce/noun"
)

// FindPath returns the shortest chain of edges the query from start to
// goal follows. It returns nil when goal is unreachable and an empty
// slice when start and goal are the same vertex.
func (e *Engine) FindPath(start, goal string, required inference.Truth, provable bool) []inference.Step {
	from, to := noun.Normalize(start), noun.Normalize(goal)

	parent, found := e.search(from, to, required, provable)
	if !found {
		return nil
	}

	var vertices []string
	for v := to; v != from; v = parent[v] {
		vertices = append(vertices, v)
	}
	vertices = append(vertices, from)

	steps := make([]inference.Step, 0, len(vertices)-1)
	for i := len(vertices) - 1; i > 0; i-- {
		src, dst := vertices[i], vertices[i-1]
		w, _ := e.graph.Weight(src, dst)
		steps = append(steps, inference.Step{
			From:   src,
			To:     dst,
			Weight: inference.Truth(w),
			Depth:  len(steps),
		})
	}
	return steps
}

// Explain generates a human-readable explanation of the answer to s
func (e *Engine) Explain(s inference.Statement) string {
	q, ok := queryFor(s)
	if !ok {
		return fmt.Sprintf("Cannot prove %s", s)
	}

	path := e.FindPath(q.start, q.goal, q.required, q.provable)
	if path == nil {
		return fmt.Sprintf("Cannot prove %s", s)
	}
	if len(path) == 0 {
		return fmt.Sprintf("%s: %s is always itself", s, q.start)
	}

	var explanation strings.Builder
	explanation.WriteString(fmt.Sprintf("Inference chain for %s:\n", s))
	for i, step := range path {
		explanation.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}
	return explanation.String()
}
