// Package bellmanford_test validates construction errors, shortest-path
// optimality on small fixtures, negative-cycle flagging and -∞ propagation,
// and the unreachable/+∞ edge cases.
package bellmanford_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/verialg/bellmanford"
)

// mustGraph builds a graph or fails the test; fixtures below are known-valid.
func mustGraph(t *testing.T, vs []string, es []bellmanford.Edge) *bellmanford.Graph {
	t.Helper()
	g, err := bellmanford.NewGraph(vs, es)
	require.NoError(t, err)

	return g
}

// finite extracts a finite distance or fails the test.
func finite(t *testing.T, d bellmanford.Dist) int64 {
	t.Helper()
	v, ok := d.Value()
	require.True(t, ok, "expected finite distance, got %s", d)

	return v
}

// ------------------------------------------------------------------------
// 1. Validation: construction and invocation errors.
// ------------------------------------------------------------------------

func TestNewGraph_EmptyVertexID(t *testing.T) {
	_, err := bellmanford.NewGraph([]string{"A", ""}, nil)
	if !errors.Is(err, bellmanford.ErrEmptyVertexID) {
		t.Fatalf("expected ErrEmptyVertexID, got %v", err)
	}
}

func TestNewGraph_DuplicateVertex(t *testing.T) {
	_, err := bellmanford.NewGraph([]string{"A", "B", "A"}, nil)
	if !errors.Is(err, bellmanford.ErrDuplicateVertex) {
		t.Fatalf("expected ErrDuplicateVertex, got %v", err)
	}
}

func TestNewGraph_UnknownEndpoint(t *testing.T) {
	_, err := bellmanford.NewGraph(
		[]string{"A"},
		[]bellmanford.Edge{{From: "A", To: "Z", Weight: 1}},
	)
	if !errors.Is(err, bellmanford.ErrUnknownVertex) {
		t.Fatalf("expected ErrUnknownVertex, got %v", err)
	}
}

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := bellmanford.ShortestPaths(nil, "A")
	if !errors.Is(err, bellmanford.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPaths_SourceNotFound(t *testing.T) {
	g := mustGraph(t, []string{"A"}, nil)
	_, err := bellmanford.ShortestPaths(g, "X")
	if !errors.Is(err, bellmanford.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic optimality: negative weights without negative cycles.
// ------------------------------------------------------------------------

func TestShortestPaths_NegativeWeightNoCycle(t *testing.T) {
	// A→B(4), A→C(2), C→B(-1): the cheap detour A→C→B costs 1, not 4.
	g := mustGraph(t, []string{"A", "B", "C"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "C", To: "B", Weight: -1},
	})

	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.False(t, res.NegativeCycle)
	require.Equal(t, int64(0), finite(t, res.Dist["A"]))
	require.Equal(t, int64(1), finite(t, res.Dist["B"]))
	require.Equal(t, int64(2), finite(t, res.Dist["C"]))
}

func TestShortestPaths_PredecessorChain(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "C", To: "B", Weight: -1},
	})

	res, err := bellmanford.ShortestPaths(g, "A", bellmanford.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, "C", res.Prev["B"], "optimal path to B goes through C")
	require.Equal(t, "A", res.Prev["C"])
	_, hasSource := res.Prev["A"]
	require.False(t, hasSource, "source has no predecessor")
}

func TestShortestPaths_PrevNilByDefault(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []bellmanford.Edge{{From: "A", To: "B", Weight: 1}})
	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.Nil(t, res.Prev)
}

// ------------------------------------------------------------------------
// 3. Negative cycles: flagging and -∞ propagation.
// ------------------------------------------------------------------------

func TestShortestPaths_NegativeCycleFlagged(t *testing.T) {
	// A→B(1), B→C(-3), C→A(1); the three-cycle weighs -1.
	g := mustGraph(t, []string{"A", "B", "C"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: -3},
		{From: "C", To: "A", Weight: 1},
	})

	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err, "a negative cycle is a result variant, not an error")
	require.True(t, res.NegativeCycle)
	for _, v := range []string{"A", "B", "C"} {
		require.True(t, res.Dist[v].IsNegInf(), "vertex %s sits on the cycle, want -inf, got %s", v, res.Dist[v])
	}
}

func TestShortestPaths_NegativeSelfLoop(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "B", Weight: -1}, // one-vertex negative cycle
	})

	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.True(t, res.NegativeCycle)
	require.True(t, res.Dist["B"].IsNegInf())
	require.Equal(t, int64(0), finite(t, res.Dist["A"]), "A is upstream of the loop and keeps its distance")
}

func TestShortestPaths_CycleInfluenceSpreadsDownstream(t *testing.T) {
	// S→A, cycle A→B→A (weight -1), B→T: T is downstream of the cycle and
	// must report -inf, never the finite 3 a naive run would leave behind.
	g := mustGraph(t, []string{"S", "A", "B", "T"}, []bellmanford.Edge{
		{From: "S", To: "A", Weight: 1},
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "A", Weight: -2},
		{From: "B", To: "T", Weight: 1},
	})

	res, err := bellmanford.ShortestPaths(g, "S")
	require.NoError(t, err)
	require.True(t, res.NegativeCycle)
	require.True(t, res.Dist["A"].IsNegInf())
	require.True(t, res.Dist["B"].IsNegInf())
	require.True(t, res.Dist["T"].IsNegInf(), "vertices fed by the cycle have no lower bound")
	require.Equal(t, int64(0), finite(t, res.Dist["S"]))
}

func TestShortestPaths_UnreachableCycleIgnored(t *testing.T) {
	// The negative cycle X↔Y is disconnected from the source component.
	g := mustGraph(t, []string{"A", "B", "X", "Y"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 5},
		{From: "X", To: "Y", Weight: -3},
		{From: "Y", To: "X", Weight: 1},
	})

	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.False(t, res.NegativeCycle, "a cycle the source cannot reach is not reported")
	require.Equal(t, int64(5), finite(t, res.Dist["B"]))
	require.True(t, res.Dist["X"].IsUnreachable())
	require.True(t, res.Dist["Y"].IsUnreachable())
}

// ------------------------------------------------------------------------
// 4. Edge cases: disconnection, single vertex, parallel edges.
// ------------------------------------------------------------------------

func TestShortestPaths_DisconnectedStaysUnreachable(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 7},
	})

	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.True(t, res.Dist["C"].IsUnreachable())
	require.Equal(t, "+inf", res.Dist["C"].String())
}

func TestShortestPaths_SingleVertex(t *testing.T) {
	g := mustGraph(t, []string{"A"}, nil)
	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.False(t, res.NegativeCycle)
	require.Equal(t, int64(0), finite(t, res.Dist["A"]))
}

func TestShortestPaths_ParallelEdgesPickCheapest(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []bellmanford.Edge{
		{From: "A", To: "B", Weight: 9},
		{From: "A", To: "B", Weight: 3},
	})

	res, err := bellmanford.ShortestPaths(g, "A")
	require.NoError(t, err)
	require.Equal(t, int64(3), finite(t, res.Dist["B"]))
}

func TestDist_String(t *testing.T) {
	require.Equal(t, "42", bellmanford.Finite(42).String())
	require.Equal(t, "-7", bellmanford.Finite(-7).String())
	require.Equal(t, "+inf", bellmanford.Unreachable().String())
	require.Equal(t, "-inf", bellmanford.NegInf().String())
}
