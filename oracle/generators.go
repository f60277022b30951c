// Package oracle - deterministic fixture generators.
//
// Every generator is a pure function of its *rand.Rand: no globals, no
// time-based entropy. Boundary shapes (empty, single element, maximal
// repetition, disconnection) are drawn with fixed probability so that
// adversarial inputs appear in every run, not only in dedicated cases.
package oracle

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/verialg/bellmanford"
	"github.com/katalvlaran/verialg/viterbi"
)

// GraphFixture is a generated graph plus the source the property runs from.
// Edges are kept alongside the built graph so brute-force oracles can walk
// the raw topology.
type GraphFixture struct {
	Vertices []string
	Edges    []bellmanford.Edge
	Source   string
}

// Build constructs the immutable bellmanford.Graph from the fixture.
func (fx GraphFixture) Build() (*bellmanford.Graph, error) {
	return bellmanford.NewGraph(fx.Vertices, fx.Edges)
}

// vertexNames returns v single-letter IDs: A, B, C, ...
func vertexNames(v int) []string {
	names := make([]string, v)
	for i := range names {
		names[i] = string(rune('A' + i))
	}

	return names
}

// RandomGraph generates a directed graph with 1..maxV vertices and random
// integer weights in [-5, 20]. Negative weights are common; negative cycles
// occur naturally in a fraction of draws — oracles must handle both answers.
// Roughly one draw in eight is edgeless (disconnection boundary).
func RandomGraph(rng *rand.Rand, maxV int) GraphFixture {
	v := 1 + rng.Intn(maxV)
	names := vertexNames(v)

	var edges []bellmanford.Edge
	if rng.Intn(8) != 0 { // occasionally generate no edges at all
		e := rng.Intn(2 * v * v)
		for i := 0; i < e; i++ {
			edges = append(edges, bellmanford.Edge{
				From:   names[rng.Intn(v)],
				To:     names[rng.Intn(v)],
				Weight: int64(rng.Intn(26) - 5),
			})
		}
	}

	return GraphFixture{Vertices: names, Edges: edges, Source: names[rng.Intn(v)]}
}

// GraphWithNegativeCycle generates a graph that provably contains a
// negative-weight cycle reachable from the source: a positive-weight path
// from the source into a ring whose total weight is strictly negative,
// plus random clutter edges.
func GraphWithNegativeCycle(rng *rand.Rand, maxV int) GraphFixture {
	v := 3 + rng.Intn(maxV-2) // at least source + 2-ring
	names := vertexNames(v)

	// Ring over vertices 1..k with total weight forced negative.
	k := 2 + rng.Intn(v-1)
	if k > v-1 {
		k = v - 1
	}
	var edges []bellmanford.Edge
	total := int64(0)
	for i := 1; i <= k; i++ {
		next := i%k + 1
		w := int64(rng.Intn(7) - 3)
		edges = append(edges, bellmanford.Edge{From: names[i], To: names[next], Weight: w})
		total += w
	}
	if total >= 0 {
		// Push the last ring edge down until the cycle sum is negative.
		edges[len(edges)-1].Weight -= total + 1
	}

	// Entry path from the source (vertex 0) into the ring.
	edges = append(edges, bellmanford.Edge{From: names[0], To: names[1], Weight: int64(rng.Intn(5))})

	// Clutter: a few extra random edges anywhere.
	for i := 0; i < rng.Intn(v); i++ {
		edges = append(edges, bellmanford.Edge{
			From:   names[rng.Intn(v)],
			To:     names[rng.Intn(v)],
			Weight: int64(rng.Intn(10)),
		})
	}

	return GraphFixture{Vertices: names, Edges: edges, Source: names[0]}
}

// HMMFixture carries the raw probability tables next to the built model so
// brute-force scoring can re-derive path probabilities independently.
type HMMFixture struct {
	States  []string
	Symbols []string
	Pi      []float64
	Trans   [][]float64
	Emit    [][]float64
}

// Build constructs the validated viterbi.HMM from the fixture.
func (fx HMMFixture) Build() (*viterbi.HMM, error) {
	return viterbi.NewHMM(fx.States, fx.Symbols, fx.Pi, fx.Trans, fx.Emit)
}

// RandomHMM generates a well-formed model with 1..maxStates states and
// 1..maxSymbols symbols. About one row in six is sparse (contains hard
// zeros) to exercise the -Inf paths of the decoder.
func RandomHMM(rng *rand.Rand, maxStates, maxSymbols int) HMMFixture {
	s := 1 + rng.Intn(maxStates)
	o := 1 + rng.Intn(maxSymbols)

	states := make([]string, s)
	for i := range states {
		states[i] = fmt.Sprintf("s%d", i)
	}
	symbols := make([]string, o)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("o%d", i)
	}

	fx := HMMFixture{
		States:  states,
		Symbols: symbols,
		Pi:      randomRow(rng, s),
		Trans:   make([][]float64, s),
		Emit:    make([][]float64, s),
	}
	for i := 0; i < s; i++ {
		fx.Trans[i] = randomRow(rng, s)
		fx.Emit[i] = randomRow(rng, o)
	}

	return fx
}

// randomRow draws a random distribution over n entries that sums to 1
// exactly (last entry absorbs the remainder). With probability 1/6 the row
// is sparse: all mass on a single entry.
func randomRow(rng *rand.Rand, n int) []float64 {
	row := make([]float64, n)
	if n == 1 || rng.Intn(6) == 0 {
		row[rng.Intn(n)] = 1

		return row
	}

	remaining := 1.0
	for i := 0; i < n-1; i++ {
		p := rng.Float64() * remaining
		row[i] = p
		remaining -= p
	}
	row[n-1] = remaining

	return row
}

// RandomObservations draws 1..maxLen symbols from the fixture's alphabet.
func RandomObservations(rng *rand.Rand, fx HMMFixture, maxLen int) []string {
	obs := make([]string, 1+rng.Intn(maxLen))
	for i := range obs {
		obs[i] = fx.Symbols[rng.Intn(len(fx.Symbols))]
	}

	return obs
}

// RandomSequence draws 1..maxLen field elements below modulus. Roughly one
// draw in eight is all-zero and one in eight a single element (boundaries).
func RandomSequence(rng *rand.Rand, modulus uint64, maxLen int) []uint64 {
	switch rng.Intn(8) {
	case 0:
		return make([]uint64, 1+rng.Intn(maxLen)) // all zeros
	case 1:
		return []uint64{uint64(rng.Int63()) % modulus} // single term
	}

	seq := make([]uint64, 1+rng.Intn(maxLen))
	for i := range seq {
		seq[i] = uint64(rng.Int63()) % modulus
	}

	return seq
}

// RandomString draws up to maxLen bytes from alphabet. Boundary draws:
// empty (1/8), single character (1/8), one maximal run (1/8).
func RandomString(rng *rand.Rand, alphabet string, maxLen int) string {
	switch rng.Intn(8) {
	case 0:
		return ""
	case 1:
		return string(alphabet[rng.Intn(len(alphabet))])
	case 2:
		return strings.Repeat(string(alphabet[rng.Intn(len(alphabet))]), 1+rng.Intn(maxLen))
	}

	var b strings.Builder
	n := rng.Intn(maxLen + 1)
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}

	return b.String()
}

// RandomBytes draws up to maxLen arbitrary bytes (for the sponge property).
func RandomBytes(rng *rand.Rand, maxLen int) []byte {
	out := make([]byte, rng.Intn(maxLen+1))
	rng.Read(out) // rand.Rand.Read never fails

	return out
}
