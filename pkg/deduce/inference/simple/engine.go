package simple

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/deduce/pkg/deduce/graph"
	"github.com/cognicore/deduce/pkg/deduce/inference"
	"github.com/cognicore/deduce/pkg/deduce/internalerr"
	"github.com/cognicore/deduce/pkg/deduce/noun"
)

// rule holds the weights of the six edges a statement about (A, B) writes,
// in the order A→B, ¬B→¬A, ¬A→B, ¬B→A, A→¬B, B→¬A.
type rule [6]inference.Truth

var teachRules = map[inference.Kind]rule{
	inference.KindAll:  {1, 1, 0, 0, 0, 0},
	inference.KindNo:   {0, 0, 0, 0, 1, 1},
	inference.KindSome: {0, 0, 0, 0, 0, 0},
}

var _ inference.Reasoner = (*Engine)(nil)

// Engine is a categorical reasoning engine backed by a weighted directed
// graph. Every noun has a paired negation vertex; edges carry a truth
// weight. It is not safe for concurrent use.
type Engine struct {
	graph  *graph.Graph
	nouns  []string
	logger *zap.Logger
	strict bool
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for debug output
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithStrict makes every teach call run Check first and refuse statements
// that contradict what the engine can already prove.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an empty engine
func New(opts ...Option) *Engine {
	e := &Engine{
		graph:  graph.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph exposes the underlying graph for debugging
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Negate returns the negation key of a noun
func (e *Engine) Negate(n string) string {
	return noun.Negate(n)
}

// AddNoun registers a noun and its negation. A noun is always itself and
// only sometimes its negation until taught otherwise. Adding a noun twice
// is a no-op.
func (e *Engine) AddNoun(text string) error {
	n := noun.Normalize(text)
	if n == "" || n == "_" {
		return fmt.Errorf("add noun %q: %w", text, internalerr.ErrInvalidInput)
	}
	not := noun.Negate(n)

	if !e.graph.HasVertex(n) {
		e.nouns = append(e.nouns, n)
	}
	e.graph.AddVertex(n)
	e.graph.AddVertex(not)

	for _, edge := range []struct {
		from, to string
		w        inference.Truth
	}{
		{n, n, inference.Always},
		{not, not, inference.Always},
		{n, not, inference.Sometimes},
		{not, n, inference.Sometimes},
	} {
		if err := e.graph.AddEdge(edge.from, edge.to, int(edge.w)); err != nil {
			return err
		}
	}
	return nil
}

// HasNoun reports whether both the noun and its negation are present
func (e *Engine) HasNoun(text string) bool {
	n := noun.Normalize(text)
	return e.graph.HasVertex(n) && e.graph.HasVertex(noun.Negate(n))
}

// Nouns returns the nouns added so far in insertion order
func (e *Engine) Nouns() []string {
	out := make([]string, len(e.nouns))
	copy(out, e.nouns)
	return out
}

// HasDirectRelationship reports whether an edge a → b exists
func (e *Engine) HasDirectRelationship(a, b string) bool {
	return e.graph.HasEdge(noun.Normalize(a), noun.Normalize(b))
}

// GetRelationship returns the weight of the edge a → b
func (e *Engine) GetRelationship(a, b string) (inference.Truth, error) {
	w, err := e.graph.Weight(noun.Normalize(a), noun.Normalize(b))
	if err != nil {
		return 0, err
	}
	return inference.Truth(w), nil
}

// AssertStatement reports whether the edge a → b exists with weight expected
func (e *Engine) AssertStatement(a, b string, expected inference.Truth) bool {
	w, err := e.GetRelationship(a, b)
	return err == nil && w == expected
}

// TeachAllAre records "all subject are predicate"
func (e *Engine) TeachAllAre(subject, predicate string) error {
	return e.Teach(inference.Statement{Kind: inference.KindAll, Subject: subject, Predicate: predicate})
}

// TeachNoAre records "no subject are predicate"
func (e *Engine) TeachNoAre(subject, predicate string) error {
	return e.Teach(inference.Statement{Kind: inference.KindNo, Subject: subject, Predicate: predicate})
}

// TeachSomeAre records "some subject are predicate"
func (e *Engine) TeachSomeAre(subject, predicate string) error {
	return e.Teach(inference.Statement{Kind: inference.KindSome, Subject: subject, Predicate: predicate})
}

// Teach writes the six edges of a statement. Both nouns must already be
// known; otherwise nothing is written. Re-teaching a pair overwrites it.
func (e *Engine) Teach(s inference.Statement) error {
	r, ok := teachRules[s.Kind]
	if !ok {
		return fmt.Errorf("teach %q: %w: unknown kind %s", s, internalerr.ErrInvalidInput, s.Kind)
	}

	a := noun.Normalize(s.Subject)
	b := noun.Normalize(s.Predicate)
	for _, n := range []string{a, b} {
		if !e.HasNoun(n) {
			return fmt.Errorf("teach %q: %w: %s", s, internalerr.ErrUnknownVertex, n)
		}
	}

	if e.strict {
		if err := e.Check(s); err != nil {
			return err
		}
	}

	notA, notB := noun.Negate(a), noun.Negate(b)
	edges := [6][2]string{
		{a, b},
		{notB, notA},
		{notA, b},
		{notB, a},
		{a, notB},
		{b, notA},
	}
	for i, edge := range edges {
		if err := e.graph.AddEdge(edge[0], edge[1], int(r[i])); err != nil {
			return fmt.Errorf("teach %q: %w", s, err)
		}
	}

	e.logger.Debug("Taught statement",
		zap.Stringer("kind", s.Kind),
		zap.String("subject", a),
		zap.String("predicate", b))
	return nil
}

// QueryEngine searches breadth-first from start for goal. In provable mode
// only edges whose weight equals required are followed; otherwise any edge
// extends the path. A vertex always reaches itself.
func (e *Engine) QueryEngine(start, goal string, required inference.Truth, provable bool) bool {
	_, found := e.search(noun.Normalize(start), noun.Normalize(goal), required, provable)
	return found
}

// QueryAreAll asks "are all subject predicate?": a chain of universal
// edges must connect subject to predicate.
func (e *Engine) QueryAreAll(subject, predicate string) bool {
	return e.QueryEngine(subject, predicate, inference.Always, true)
}

// QueryAreNo asks "are no subject predicate?": a chain of universal edges
// must connect subject to the negation of predicate.
func (e *Engine) QueryAreNo(subject, predicate string) bool {
	return e.QueryEngine(subject, noun.Negate(noun.Normalize(predicate)), inference.Always, true)
}

// QueryAreSome asks "are some subject predicate?": any chain of edges,
// whatever their weights, connecting subject to predicate suffices.
func (e *Engine) QueryAreSome(subject, predicate string) bool {
	return e.QueryEngine(subject, predicate, inference.Sometimes, false)
}

// Ask answers a statement as a question
func (e *Engine) Ask(s inference.Statement) bool {
	q, ok := queryFor(s)
	if !ok {
		return false
	}
	return e.QueryEngine(q.start, q.goal, q.required, q.provable)
}

// search runs the breadth-first query and returns the parent of every
// visited vertex so callers can rebuild the path.
func (e *Engine) search(start, goal string, required inference.Truth, provable bool) (map[string]string, bool) {
	parent := map[string]string{start: ""}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return parent, true
		}

		for _, edge := range e.graph.Edges(current) {
			if _, seen := parent[edge.To]; seen {
				continue
			}
			if provable && inference.Truth(edge.Weight) != required {
				continue
			}
			parent[edge.To] = current
			queue = append(queue, edge.To)
		}
	}

	return parent, false
}

type query struct {
	start    string
	goal     string
	required inference.Truth
	provable bool
}

// queryFor maps a statement onto the search that answers it
func queryFor(s inference.Statement) (query, bool) {
	a := noun.Normalize(s.Subject)
	b := noun.Normalize(s.Predicate)

	switch s.Kind {
	case inference.KindAll:
		return query{a, b, inference.Always, true}, true
	case inference.KindNo:
		return query{a, noun.Negate(b), inference.Always, true}, true
	case inference.KindSome:
		return query{a, b, inference.Sometimes, false}, true
	}
	return query{}, false
}
