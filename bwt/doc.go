// Package bwt implements the Burrows–Wheeler transform of byte strings,
// forward and inverse, using a suffix array instead of materialized
// rotations.
//
// What
//
//   - Transform(s) appends a unique sentinel (strictly smaller than every
//     byte of s), conceptually sorts all cyclic rotations of s+sentinel,
//     and returns the last column plus the primary index — the row holding
//     the original string.
//   - Inverse(last, primary) rebuilds s in O(n) with the LF mapping: rank
//     each last-column character among its equals, derive the first column
//     by counting sort, and walk the mapping n steps backwards.
//
// Why a suffix array
//
//	Because the sentinel is unique and lexicographically minimal, sorting
//	the rotations of s+sentinel is the same as sorting its suffixes — every
//	comparison is decided at or before the sentinel. The suffix array is
//	built by prefix doubling: O(n log n) overall, no n×n rotation table.
//
// Sentinel
//
//	The default sentinel is 0x00; WithSentinel overrides it (the classic
//	'$' convention in textbooks). Two failure modes are rejected up front:
//	the input already contains the sentinel (ErrSentinelCollision), or some
//	input byte sorts below it (ErrSentinelOrder), which would break the
//	"strictly smallest" premise the suffix/rotation equivalence rests on.
//
// Invariant
//
//	Inverse(Transform(s)) == s for every s free of the sentinel, including
//	the empty string (whose transform is the sentinel alone at row 0).
//
// Complexity (n = len(s)+1)
//
//   - Transform: O(n log² n) comparisons worst case (sort-based doubling),
//     O(n) space.
//   - Inverse:   O(n) time and space.
//
// Errors
//
//   - ErrSentinelCollision  input contains the sentinel byte.
//   - ErrSentinelOrder      input contains a byte smaller than the sentinel.
//   - ErrBadPrimaryIndex    primary outside [0, len(last)).
//   - ErrCorruptTransform   last column does not contain exactly one sentinel.
package bwt
