// Package bellmanford - core types, sentinel errors and functional options.
package bellmanford

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by graph construction and ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceNotFound indicates the source vertex does not exist in the graph.
	ErrSourceNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrEmptyVertexID indicates a vertex with an empty identifier was supplied.
	ErrEmptyVertexID = errors.New("bellmanford: vertex ID must be non-empty")

	// ErrDuplicateVertex indicates the same vertex identifier was supplied twice.
	ErrDuplicateVertex = errors.New("bellmanford: duplicate vertex ID")

	// ErrUnknownVertex indicates an edge endpoint that is not a member of the vertex set.
	ErrUnknownVertex = errors.New("bellmanford: edge endpoint not in vertex set")
)

// distKind discriminates the three variants a shortest-path distance can take.
type distKind uint8

const (
	distFinite distKind = iota
	distUnreachable
	distNegInf
)

// Dist is the distance from the source to one vertex: a finite length,
// Unreachable (+∞, no path exists), or NegInf (-∞, a reachable negative
// cycle undercuts every finite bound).
type Dist struct {
	value int64
	kind  distKind
}

// Finite wraps an exact shortest-path length.
func Finite(v int64) Dist { return Dist{value: v} }

// Unreachable is the +∞ variant: no path from the source reaches the vertex.
func Unreachable() Dist { return Dist{kind: distUnreachable} }

// NegInf is the -∞ variant: the vertex lies on or beyond a negative cycle
// reachable from the source.
func NegInf() Dist { return Dist{kind: distNegInf} }

// IsFinite reports whether d holds an exact length.
func (d Dist) IsFinite() bool { return d.kind == distFinite }

// IsUnreachable reports whether d is the +∞ variant.
func (d Dist) IsUnreachable() bool { return d.kind == distUnreachable }

// IsNegInf reports whether d is the -∞ variant.
func (d Dist) IsNegInf() bool { return d.kind == distNegInf }

// Value returns the finite length and true, or (0, false) for either
// infinite variant.
func (d Dist) Value() (int64, bool) {
	if d.kind != distFinite {
		return 0, false
	}

	return d.value, true
}

// String renders the distance for diagnostics: a decimal, "+inf" or "-inf".
func (d Dist) String() string {
	switch d.kind {
	case distUnreachable:
		return "+inf"
	case distNegInf:
		return "-inf"
	default:
		return strconv.FormatInt(d.value, 10)
	}
}

// Edge is a directed weighted edge supplied to NewGraph.
// Weight may be negative; both endpoints must be members of the vertex set.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Result is the outcome of one ShortestPaths invocation.
type Result struct {
	// Dist maps every vertex ID to its distance variant from the source.
	Dist map[string]Dist

	// Prev maps a vertex to its predecessor on a shortest path; present
	// only when WithReturnPath was requested, and only for vertices with
	// a finite distance. Prev[source] is absent.
	Prev map[string]string

	// NegativeCycle is true iff a negative cycle is reachable from the
	// source. It is a distinguished success variant, not an error.
	NegativeCycle bool
}

// Options configures ShortestPaths.
//
// ReturnPath – if true, populate Result.Prev for finite-distance vertices.
type Options struct {
	ReturnPath bool
}

// Option is a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithReturnPath enables predecessor tracking in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns the baseline configuration: no predecessor map.
func DefaultOptions() Options {
	return Options{}
}
