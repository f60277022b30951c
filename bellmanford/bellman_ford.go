// Package bellmanford - the relaxation loop, cycle scan and -∞ propagation.
//
// Algorithm outline:
//  1. dist[source] = 0, all other vertices +∞.
//  2. Repeat |V|−1 times: relax every edge (u,v,w) with reached u via
//     dist[v] = min(dist[v], dist[u]+w). Stop early when a full round
//     changes nothing.
//  3. One more full edge scan: every edge that still relaxes has its head
//     on or beyond a negative cycle. Collect those heads as seeds.
//  4. Flood forward from the seeds: any vertex reachable from a seed has
//     no lower bound and is reported as NegInf.
//
// Steps 3–4 are the point of the package: distances influenced by a
// negative cycle must never be reported as (wrong) finite values.
package bellmanford

import (
	"fmt"
	"math"
)

// ShortestPaths computes shortest distances from source to every vertex of g.
//
// Returns a Result whose Dist covers every vertex (finite, Unreachable or
// NegInf) and whose NegativeCycle flag is true iff any vertex reports
// NegInf. A negative cycle is a success variant, not an error.
//
// Preconditions (validated in order):
//  1. g must be non-nil           (ErrNilGraph)
//  2. source must exist in g      (ErrSourceNotFound)
//
// Complexity: O(V·E) time, O(V+E) space.
func ShortestPaths(g *Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.index[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	r := &runner{
		g:       g,
		opts:    cfg,
		src:     src,
		dist:    make([]int64, g.Order()),
		reached: make([]bool, g.Order()),
		neg:     make([]bool, g.Order()),
		prev:    make([]int, g.Order()),
	}
	r.init()
	r.relaxRounds()
	r.propagateNegative()

	return r.result(), nil
}

// runner holds the mutable state of a single ShortestPaths execution.
type runner struct {
	g       *Graph
	opts    Options
	src     int
	dist    []int64 // meaningful only where reached[v]
	reached []bool  // v has some path from source
	neg     []bool  // v is on or beyond a reachable negative cycle
	prev    []int   // predecessor index, -1 when none
}

// init seeds the distance table: source at 0, everything else unreached.
func (r *runner) init() {
	for v := range r.prev {
		r.prev[v] = -1
	}
	r.dist[r.src] = 0
	r.reached[r.src] = true
}

// relaxRounds performs up to |V|−1 full-edge relaxation rounds, exiting
// early once a round leaves every distance unchanged.
func (r *runner) relaxRounds() {
	rounds := r.g.Order() - 1
	for i := 0; i < rounds; i++ {
		if !r.relaxAll() {
			return
		}
	}
}

// relaxAll scans every edge once and reports whether any distance improved.
func (r *runner) relaxAll() bool {
	changed := false
	for _, e := range r.g.edges {
		if !r.reached[e.from] {
			continue
		}
		cand, ok := addChecked(r.dist[e.from], e.weight)
		if !ok {
			continue // would overflow int64; weights this extreme are out of contract
		}
		if !r.reached[e.to] || cand < r.dist[e.to] {
			r.dist[e.to] = cand
			r.reached[e.to] = true
			r.prev[e.to] = e.from
			changed = true
		}
	}

	return changed
}

// propagateNegative runs the extra verification scan and floods -∞ forward.
//
// Any edge that still relaxes after |V|−1 rounds proves its head is driven
// by a negative cycle; every vertex reachable from such a head inherits -∞.
func (r *runner) propagateNegative() {
	// 1) Collect seed vertices from the verification scan.
	var queue []int
	for _, e := range r.g.edges {
		if !r.reached[e.from] {
			continue
		}
		cand, ok := addChecked(r.dist[e.from], e.weight)
		if ok && (!r.reached[e.to] || cand < r.dist[e.to]) {
			if !r.neg[e.to] {
				r.neg[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	if len(queue) == 0 {
		return
	}

	// 2) Forward flood: -∞ dominates every vertex downstream of a seed.
	//    Seeds are heads of edges with a reached tail, so everything the
	//    flood touches is reachable from the source; a cycle the source
	//    cannot reach never produces a seed and never leaks into the report.
	adj := make([][]int, r.g.Order())
	for _, e := range r.g.edges {
		adj[e.from] = append(adj[e.from], e.to)
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !r.neg[v] {
				r.neg[v] = true
				queue = append(queue, v)
			}
		}
	}
}

// result materializes the int-indexed state into the ID-keyed Result.
func (r *runner) result() *Result {
	res := &Result{Dist: make(map[string]Dist, r.g.Order())}
	if r.opts.ReturnPath {
		res.Prev = make(map[string]string, r.g.Order())
	}

	for v, id := range r.g.ids {
		switch {
		case r.neg[v]:
			res.Dist[id] = NegInf()
			res.NegativeCycle = true
		case !r.reached[v]:
			res.Dist[id] = Unreachable()
		default:
			res.Dist[id] = Finite(r.dist[v])
			if res.Prev != nil && r.prev[v] >= 0 {
				res.Prev[id] = r.g.ids[r.prev[v]]
			}
		}
	}

	return res
}

// addChecked returns a+b and whether the sum stayed within int64.
func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	if s == math.MinInt64 { // reserve the extreme as a guard band
		return 0, false
	}

	return s, true
}
