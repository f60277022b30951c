// Package bwt - sentinel errors and functional options.
package bwt

import "errors"

// Sentinel errors returned by Transform and Inverse.
var (
	// ErrSentinelCollision indicates the input already contains the
	// sentinel byte, so a unique terminator cannot be appended.
	ErrSentinelCollision = errors.New("bwt: input contains the sentinel byte")

	// ErrSentinelOrder indicates an input byte sorts below the sentinel,
	// violating the "sentinel is strictly smallest" premise.
	ErrSentinelOrder = errors.New("bwt: input byte smaller than the sentinel")

	// ErrBadPrimaryIndex indicates the primary index is outside the last column.
	ErrBadPrimaryIndex = errors.New("bwt: primary index out of range")

	// ErrCorruptTransform indicates the last column does not contain
	// exactly one sentinel byte and therefore is not a valid transform.
	ErrCorruptTransform = errors.New("bwt: last column must contain the sentinel exactly once")
)

// DefaultSentinel is the terminator appended internally when no option
// overrides it. 0x00 sorts below every other byte.
const DefaultSentinel byte = 0x00

// Options configures Transform and Inverse.
//
// Sentinel – the unique terminator byte; must be strictly smaller than
// every byte of the input and absent from it.
type Options struct {
	Sentinel byte
}

// Option is a functional option for configuring Transform and Inverse.
type Option func(*Options)

// WithSentinel overrides the sentinel byte (e.g. '$' for the textbook
// rendering of the transform). Transform and Inverse must agree on it.
func WithSentinel(b byte) Option {
	return func(o *Options) { o.Sentinel = b }
}

// DefaultOptions returns the baseline configuration: sentinel 0x00.
func DefaultOptions() Options {
	return Options{Sentinel: DefaultSentinel}
}
