package bellmanford

import "fmt"

// edge is the internal int-indexed form of an Edge.
type edge struct {
	from, to int
	weight   int64
}

// Graph is an immutable directed weighted graph, constructed once per
// algorithm invocation from caller-supplied vertex and edge lists.
// The zero value is unusable; construct with NewGraph.
type Graph struct {
	ids   []string       // vertex IDs in supplied order
	index map[string]int // ID → dense index
	edges []edge         // edges in supplied order
}

// NewGraph validates and freezes a vertex/edge list into a Graph.
//
// Validation (in order, per offending element):
//  1. every vertex ID is non-empty          (ErrEmptyVertexID)
//  2. vertex IDs are pairwise distinct      (ErrDuplicateVertex)
//  3. every edge endpoint is a known vertex (ErrUnknownVertex)
//
// Self-loops and parallel edges are permitted; a negative self-loop is a
// negative cycle by itself and is flagged by ShortestPaths.
//
// Complexity: O(V + E) time and space.
func NewGraph(vertices []string, edges []Edge) (*Graph, error) {
	index := make(map[string]int, len(vertices))
	ids := make([]string, 0, len(vertices))
	for _, id := range vertices {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		index[id] = len(ids)
		ids = append(ids, id)
	}

	es := make([]edge, 0, len(edges))
	for _, e := range edges {
		u, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q (edge %s→%s)", ErrUnknownVertex, e.From, e.From, e.To)
		}
		v, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q (edge %s→%s)", ErrUnknownVertex, e.To, e.From, e.To)
		}
		es = append(es, edge{from: u, to: v, weight: e.Weight})
	}

	return &Graph{ids: ids, index: index, edges: es}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.ids) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the vertex IDs in construction order.
// The returned slice is a copy; the graph stays immutable.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// HasVertex reports whether id is a member of the vertex set.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}
