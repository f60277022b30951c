// Package bwt - forward transform via prefix-doubling suffix array, inverse
// via the LF mapping.
package bwt

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/verialg/gfp"
)

// Transform returns the Burrows–Wheeler last column of s plus the primary
// index (the sorted-rotation row that equals s+sentinel). The sentinel is
// appended internally and appears in the returned column.
//
// Complexity: O(n log² n) time, O(n) space, n = len(s)+1.
func Transform(s string, opts ...Option) (last string, primary int, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == cfg.Sentinel:
			return "", 0, fmt.Errorf("%w: %q at position %d", ErrSentinelCollision, s[i], i)
		case s[i] < cfg.Sentinel:
			return "", 0, fmt.Errorf("%w: %q at position %d", ErrSentinelOrder, s[i], i)
		}
	}

	t := append([]byte(s), cfg.Sentinel)
	n := len(t)
	sa := suffixArray(t)

	// Rotation ending at sa[i] starts at sa[i]; its last character is the
	// one cyclically preceding the suffix start.
	out := make([]byte, n)
	for i, start := range sa {
		out[i] = t[(start+n-1)%n]
		if start == 0 {
			primary = i
		}
	}

	return string(out), primary, nil
}

// Inverse reconstructs the original string from a last column and primary
// index produced by Transform (with matching sentinel option).
//
// Complexity: O(n) time and space.
func Inverse(last string, primary int, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(last)
	if primary < 0 || primary >= n {
		return "", fmt.Errorf("%w: %d (column length %d)", ErrBadPrimaryIndex, primary, n)
	}
	sentinels := 0
	for i := 0; i < n; i++ {
		switch {
		case last[i] == cfg.Sentinel:
			sentinels++
		case last[i] < cfg.Sentinel:
			return "", fmt.Errorf("%w: %q at position %d", ErrCorruptTransform, last[i], i)
		}
	}
	if sentinels != 1 {
		return "", fmt.Errorf("%w: found %d", ErrCorruptTransform, sentinels)
	}

	// Counting sort of the last column yields, for each byte value, where
	// its run begins in the first column.
	var count [256]int
	for i := 0; i < n; i++ {
		count[last[i]]++
	}
	starts := make([]int, 256)
	sum := 0
	for v := 0; v < 256; v++ {
		starts[v] = sum
		sum += count[v]
	}

	// LF mapping: row i (k-th occurrence of byte c in the last column) maps
	// to the row beginning with that same occurrence in the first column.
	lf := make([]int, n)
	var seen [256]int
	for i := 0; i < n; i++ {
		c := last[i]
		lf[i] = starts[c] + seen[c]
		seen[c]++
	}

	// Walk backwards from the primary row, filling the output right to left;
	// the final character written is the sentinel, which we strip.
	out := make([]byte, n)
	row := primary
	for k := n - 1; k >= 0; k-- {
		out[k] = last[row]
		row = lf[row]
	}

	return string(out[:n-1]), nil
}

// suffixArray builds the suffix array of t by prefix doubling: suffixes are
// ranked by their first k characters, then pairs of ranks are sorted to
// double k until all ranks are distinct. The unique minimal sentinel at the
// end makes suffix order equal rotation order.
func suffixArray(t []byte) []int {
	n := len(t)
	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(t[i])
	}

	for k := 1; ; k <<= 1 {
		// Rank of the suffix starting k past i, or -1 once past the end.
		rankAt := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}

			return -1
		}
		sort.Slice(sa, func(a, b int) bool {
			return gfp.LexLessPair(rank[sa[a]], rankAt(sa[a]), rank[sa[b]], rankAt(sa[b]))
		})

		// Re-rank: equal (rank, rank+k) pairs share a rank.
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if gfp.LexLessPair(rank[sa[i-1]], rankAt(sa[i-1]), rank[sa[i]], rankAt(sa[i])) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)

		if rank[sa[n-1]] == n-1 {
			break // all ranks distinct: fully sorted
		}
	}

	return sa
}
