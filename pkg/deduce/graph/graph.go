// Package graph implements a weighted directed graph keyed by string
// vertex identifiers. It carries no logical semantics of its own.
package graph

import (
	"fmt"

	"github.com/cognicore/deduce/pkg/deduce/internalerr"
)

// Edge is an outgoing edge of a vertex.
type Edge struct {
	To     string
	Weight int
}

// adjacency keeps outgoing edges in insertion order.
type adjacency struct {
	order   []string
	weights map[string]int
}

// Graph is a weighted directed graph. It is not safe for concurrent use.
type Graph struct {
	order    []string
	vertices map[string]*adjacency
	edges    int
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		vertices: make(map[string]*adjacency),
	}
}

// AddVertex inserts key with no outgoing edges. Adding an existing vertex
// is a no-op.
func (g *Graph) AddVertex(key string) {
	if _, ok := g.vertices[key]; ok {
		return
	}
	g.vertices[key] = &adjacency{weights: make(map[string]int)}
	g.order = append(g.order, key)
}

// HasVertex reports whether key is a vertex
func (g *Graph) HasVertex(key string) bool {
	_, ok := g.vertices[key]
	return ok
}

// AddEdge sets the weight of the directed edge from → to, replacing any
// previous weight. Both endpoints must already be vertices.
func (g *Graph) AddEdge(from, to string, weight int) error {
	adj, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("add edge %s -> %s: %w: %s", from, to, internalerr.ErrUnknownVertex, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("add edge %s -> %s: %w: %s", from, to, internalerr.ErrUnknownVertex, to)
	}

	if _, exists := adj.weights[to]; !exists {
		adj.order = append(adj.order, to)
		g.edges++
	}
	adj.weights[to] = weight
	return nil
}

// HasEdge reports whether the directed edge from → to exists
func (g *Graph) HasEdge(from, to string) bool {
	adj, ok := g.vertices[from]
	if !ok {
		return false
	}
	_, ok = adj.weights[to]
	return ok
}

// Weight returns the weight of the edge from → to, or ErrNoSuchEdge.
func (g *Graph) Weight(from, to string) (int, error) {
	if adj, ok := g.vertices[from]; ok {
		if w, ok := adj.weights[to]; ok {
			return w, nil
		}
	}
	return 0, fmt.Errorf("weight %s -> %s: %w", from, to, internalerr.ErrNoSuchEdge)
}

// Neighbors returns a copy of the outgoing adjacency of key, mapping
// destination to weight. Unknown vertices yield nil.
func (g *Graph) Neighbors(key string) map[string]int {
	adj, ok := g.vertices[key]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(adj.weights))
	for to, w := range adj.weights {
		out[to] = w
	}
	return out
}

// Edges returns the outgoing edges of key in insertion order.
func (g *Graph) Edges(key string) []Edge {
	adj, ok := g.vertices[key]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(adj.order))
	for _, to := range adj.order {
		out = append(out, Edge{To: to, Weight: adj.weights[to]})
	}
	return out
}

// Vertices returns all vertex keys in insertion order
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Size returns the number of vertices
func (g *Graph) Size() int {
	return len(g.vertices)
}

// EdgeCount returns the number of directed edges
func (g *Graph) EdgeCount() int {
	return g.edges
}
