// Package oracle - built-in property suites and their brute-force oracles.
//
// Each oracle computes the reference answer by a method independent of the
// implementation under test: exhaustive enumeration where the input is kept
// small enough (graphs ≤ 6 vertices, |S|^T paths for short T), algebraic
// replay for recurrences, and structural identities elsewhere.
package oracle

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/verialg/bellmanford"
	"github.com/katalvlaran/verialg/bwt"
	"github.com/katalvlaran/verialg/linrec"
	"github.com/katalvlaran/verialg/sponge"
	"github.com/katalvlaran/verialg/viterbi"
)

// distCmp lets go-cmp diff Dist values (comparable struct, unexported fields).
var distCmp = cmp.Comparer(func(a, b bellmanford.Dist) bool { return a == b })

// bmPrimes are the field moduli the Berlekamp–Massey property cycles through.
var bmPrimes = []uint64{2, 3, 5, 7, 13, 101, 65537}

// Suites returns the built-in property suites binding every algorithm
// package to its defining contract. Pass the result to Verify.
func Suites() []Suite {
	return []Suite{
		{
			Algorithm: "bellman-ford",
			Properties: []Property{
				{Name: "optimality-vs-bruteforce", Check: checkBellmanFordOptimality},
				{Name: "seeded-negative-cycle-flagged", Check: checkBellmanFordSeededCycle},
			},
		},
		{
			Algorithm: "viterbi",
			Properties: []Property{
				{Name: "optimality-vs-bruteforce", Check: checkViterbiOptimality},
			},
		},
		{
			Algorithm: "berlekamp-massey",
			Properties: []Property{
				{Name: "recurrence-replay", Check: checkRecurrenceReplay},
			},
		},
		{
			Algorithm: "bwt",
			Properties: []Property{
				{Name: "round-trip-identity", Check: checkBWTRoundTrip},
				{Name: "last-column-permutation", Check: checkBWTPermutation},
			},
		},
		{
			Algorithm: "sponge",
			Properties: []Property{
				{Name: "xof-prefix-consistency", Check: checkSpongePrefix},
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Bellman–Ford: exhaustive simple-path / simple-cycle enumeration (≤ 6 vertices).
// ---------------------------------------------------------------------------

func checkBellmanFordOptimality(rng *rand.Rand) error {
	fx := RandomGraph(rng, 6)
	g, err := fx.Build()
	if err != nil {
		return fmt.Errorf("fixture rejected: %w", err)
	}

	got, err := bellmanford.ShortestPaths(g, fx.Source)
	if err != nil {
		return err
	}
	want := bruteForceDistances(fx)

	if diff := cmp.Diff(want, got.Dist, distCmp); diff != "" {
		return fmt.Errorf("distance mismatch on %d vertices, %d edges (-want +got):\n%s",
			len(fx.Vertices), len(fx.Edges), diff)
	}

	return nil
}

func checkBellmanFordSeededCycle(rng *rand.Rand) error {
	fx := GraphWithNegativeCycle(rng, 6)
	g, err := fx.Build()
	if err != nil {
		return fmt.Errorf("fixture rejected: %w", err)
	}

	got, err := bellmanford.ShortestPaths(g, fx.Source)
	if err != nil {
		return err
	}
	if !got.NegativeCycle {
		return fmt.Errorf("seeded negative cycle not flagged (edges: %v)", fx.Edges)
	}
	// A flagged run must never report a finite distance for a vertex the
	// brute-force oracle marks as cycle-influenced.
	want := bruteForceDistances(fx)
	if diff := cmp.Diff(want, got.Dist, distCmp); diff != "" {
		return fmt.Errorf("distance mismatch (-want +got):\n%s", diff)
	}

	return nil
}

// bruteForceDistances computes the exact Dist map by enumeration:
// reachability by flood, cycle influence via all simple cycles, and finite
// distances as minima over all simple paths from the source.
func bruteForceDistances(fx GraphFixture) map[string]bellmanford.Dist {
	type arc struct {
		to string
		w  int64
	}
	adj := make(map[string][]arc, len(fx.Vertices))
	for _, e := range fx.Edges {
		adj[e.From] = append(adj[e.From], arc{to: e.To, w: e.Weight})
	}

	// Reachability flood from a set of roots.
	reachFrom := func(roots ...string) map[string]bool {
		seen := make(map[string]bool)
		stack := append([]string(nil), roots...)
		for _, r := range roots {
			seen[r] = true
		}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range adj[u] {
				if !seen[a.to] {
					seen[a.to] = true
					stack = append(stack, a.to)
				}
			}
		}

		return seen
	}
	reachable := reachFrom(fx.Source)

	// Enumerate every simple cycle by DFS with an on-path set; collect the
	// vertices of negative cycles. prefix[i] is the cost of onPath[:i+1]
	// walked from onPath[0], so a closing arc back to onPath[i] forms a
	// cycle of weight prefix[last]+w-prefix[i].
	cycleSeeds := make(map[string]bool)
	var onPath []string
	var prefix []int64
	pathIdx := make(map[string]int)
	var dfsCycles func(u string)
	dfsCycles = func(u string) {
		sum := prefix[len(prefix)-1]
		for _, a := range adj[u] {
			if i, on := pathIdx[a.to]; on {
				if sum+a.w-prefix[i] < 0 {
					for _, cv := range onPath[i:] {
						cycleSeeds[cv] = true
					}
				}

				continue
			}
			pathIdx[a.to] = len(onPath)
			onPath = append(onPath, a.to)
			prefix = append(prefix, sum+a.w)
			dfsCycles(a.to)
			onPath = onPath[:len(onPath)-1]
			prefix = prefix[:len(prefix)-1]
			delete(pathIdx, a.to)
		}
	}
	for _, v := range fx.Vertices {
		pathIdx = map[string]int{v: 0}
		onPath = []string{v}
		prefix = []int64{0}
		dfsCycles(v)
	}

	// Everything downstream of a source-reachable negative-cycle vertex is
	// influenced. Vertices of one cycle reach each other, so checking each
	// seed for reachability suffices.
	influenced := map[string]bool{}
	roots := make([]string, 0, len(cycleSeeds))
	for v := range cycleSeeds {
		if reachable[v] {
			roots = append(roots, v)
		}
	}
	if len(roots) > 0 {
		influenced = reachFrom(roots...)
	}

	// Minimum cost over simple paths from the source.
	best := make(map[string]int64, len(fx.Vertices))
	visited := make(map[string]bool)
	var dfsPaths func(u string, cost int64)
	dfsPaths = func(u string, cost int64) {
		if old, ok := best[u]; !ok || cost < old {
			best[u] = cost
		}
		for _, a := range adj[u] {
			if !visited[a.to] {
				visited[a.to] = true
				dfsPaths(a.to, cost+a.w)
				visited[a.to] = false
			}
		}
	}
	visited[fx.Source] = true
	dfsPaths(fx.Source, 0)

	out := make(map[string]bellmanford.Dist, len(fx.Vertices))
	for _, v := range fx.Vertices {
		switch {
		case influenced[v]:
			out[v] = bellmanford.NegInf()
		case !reachable[v]:
			out[v] = bellmanford.Unreachable()
		default:
			out[v] = bellmanford.Finite(best[v])
		}
	}

	return out
}

// ---------------------------------------------------------------------------
// Viterbi: exhaustive |S|^T path scoring (≤ 3 states, ≤ 5 observations).
// ---------------------------------------------------------------------------

// logProbTol absorbs the rounding difference between summing logs along a
// path and the decoder's column-wise accumulation of the same terms.
const logProbTol = 1e-9

func checkViterbiOptimality(rng *rand.Rand) error {
	fx := RandomHMM(rng, 3, 3)
	m, err := fx.Build()
	if err != nil {
		return fmt.Errorf("fixture rejected: %w", err)
	}
	obs := RandomObservations(rng, fx, 5)

	got, err := viterbi.Decode(m, obs)
	if err != nil {
		return err
	}

	want := bestPathLogProb(fx, obs)
	if !logProbEqual(got.LogProb, want) {
		return fmt.Errorf("score mismatch: decoder %v, brute force %v (obs %v)", got.LogProb, want, obs)
	}
	// The returned path must itself score what the decoder claims.
	if self := scorePath(fx, obs, got.Path); !logProbEqual(got.LogProb, self) {
		return fmt.Errorf("reported path scores %v, decoder claims %v", self, got.LogProb)
	}

	// ScoreOnly must agree with the full trellis.
	scored, err := viterbi.Decode(m, obs, viterbi.WithMemoryMode(viterbi.ScoreOnly))
	if err != nil {
		return err
	}
	if !logProbEqual(scored.LogProb, got.LogProb) {
		return fmt.Errorf("ScoreOnly %v diverges from FullTrellis %v", scored.LogProb, got.LogProb)
	}

	return nil
}

func logProbEqual(a, b float64) bool {
	if math.IsInf(a, -1) || math.IsInf(b, -1) {
		return a == b
	}

	return math.Abs(a-b) <= logProbTol*(1+math.Abs(a)+math.Abs(b))
}

// bestPathLogProb enumerates every state sequence and returns the maximum
// joint log-probability, recomputed from the raw fixture tables.
func bestPathLogProb(fx HMMFixture, obs []string) float64 {
	s := len(fx.States)
	path := make([]string, len(obs))
	best := math.Inf(-1)

	var walk func(t int)
	walk = func(t int) {
		if t == len(obs) {
			if p := scorePath(fx, obs, path); p > best {
				best = p
			}

			return
		}
		for i := 0; i < s; i++ {
			path[t] = fx.States[i]
			walk(t + 1)
		}
	}
	walk(0)

	return best
}

// scorePath computes log P(path, obs) directly from the fixture tables.
func scorePath(fx HMMFixture, obs, path []string) float64 {
	stateIdx := make(map[string]int, len(fx.States))
	for i, s := range fx.States {
		stateIdx[s] = i
	}
	symbolIdx := make(map[string]int, len(fx.Symbols))
	for i, o := range fx.Symbols {
		symbolIdx[o] = i
	}

	logp := 0.0
	prev := -1
	for t, state := range path {
		i := stateIdx[state]
		if t == 0 {
			logp += math.Log(fx.Pi[i])
		} else {
			logp += math.Log(fx.Trans[prev][i])
		}
		logp += math.Log(fx.Emit[i][symbolIdx[obs[t]]])
		prev = i
	}

	return logp
}

// ---------------------------------------------------------------------------
// Berlekamp–Massey: the minimal recurrence must replay its own input.
// ---------------------------------------------------------------------------

func checkRecurrenceReplay(rng *rand.Rand) error {
	p := bmPrimes[rng.Intn(len(bmPrimes))]
	seq := RandomSequence(rng, p, 24)

	rec, err := linrec.MinimalPolynomial(seq, p)
	if err != nil {
		return err
	}
	if rec.Order() > len(seq) {
		return fmt.Errorf("order %d exceeds sequence length %d", rec.Order(), len(seq))
	}

	replay, err := rec.Extend(seq[:rec.Order()], len(seq))
	if err != nil {
		return err
	}
	if diff := cmp.Diff(seq, replay); diff != "" {
		return fmt.Errorf("order-%d recurrence mod %d does not replay (-want +got):\n%s",
			rec.Order(), p, diff)
	}

	return nil
}

// ---------------------------------------------------------------------------
// BWT: inverse composes to identity, last column is a permutation.
// ---------------------------------------------------------------------------

// bwtAlphabet deliberately skews toward runs, which is where rotation
// sorting and LF mapping earn their keep.
const bwtAlphabet = "aabnr$"

func checkBWTRoundTrip(rng *rand.Rand) error {
	s := RandomString(rng, bwtAlphabet, 256)

	last, primary, err := bwt.Transform(s)
	if err != nil {
		return err
	}
	back, err := bwt.Inverse(last, primary)
	if err != nil {
		return err
	}
	if back != s {
		return fmt.Errorf("round trip lost the input: %q -> %q", s, back)
	}

	return nil
}

func checkBWTPermutation(rng *rand.Rand) error {
	s := RandomString(rng, bwtAlphabet, 256)

	last, primary, err := bwt.Transform(s)
	if err != nil {
		return err
	}
	if len(last) != len(s)+1 {
		return fmt.Errorf("last column has %d bytes for %d input bytes", len(last), len(s))
	}
	if primary < 0 || primary >= len(last) {
		return fmt.Errorf("primary index %d outside column of length %d", primary, len(last))
	}

	var want, got [256]int
	for i := 0; i < len(s); i++ {
		want[s[i]]++
	}
	want[bwt.DefaultSentinel]++
	for i := 0; i < len(last); i++ {
		got[last[i]]++
	}
	if want != got {
		return fmt.Errorf("last column %q is not a permutation of %q plus sentinel", last, s)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Sponge: XOF prefix consistency across output lengths.
// ---------------------------------------------------------------------------

func checkSpongePrefix(rng *rand.Rand) error {
	msg := RandomBytes(rng, 512)
	custom := RandomBytes(rng, 48)

	long, err := sponge.K12(msg, custom, 64)
	if err != nil {
		return err
	}
	short, err := sponge.K12(msg, custom, 32)
	if err != nil {
		return err
	}
	if !bytes.Equal(long[:32], short) {
		return fmt.Errorf("32-byte digest %x is not a prefix of the 64-byte digest %x", short, long)
	}

	return nil
}
