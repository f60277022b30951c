// Package sponge - the generic duplex sponge over Keccak-p.
package sponge

import (
	"errors"
	"fmt"
)

// stateBytes is the Keccak-p[1600] state width in bytes.
const stateBytes = 200

// Sentinel errors returned by the Sponge layer.
var (
	// ErrBadRate indicates a rate outside (0, 200) bytes.
	ErrBadRate = errors.New("sponge: rate must be in (0, 200) bytes")

	// ErrWriteAfterRead indicates an absorb after squeezing started.
	ErrWriteAfterRead = errors.New("sponge: cannot absorb after squeezing has started")
)

// Sponge is a Keccak-p based sponge: absorb bytes with Write, then squeeze
// any number of output bytes with Read. The first Read pads the message and
// flips the sponge into the squeeze phase; Write afterwards fails.
//
// A Sponge is NOT safe for concurrent use; every instance is single-stream
// by construction (the absorb position is mutable state).
type Sponge struct {
	state     [25]uint64
	rate      int // bytes of the state exposed per permutation
	rounds    int
	domain    byte // multi-rate padding domain-separation byte
	pos       int  // next byte offset within the rate
	squeezing bool
}

// NewSponge returns a zeroed sponge with the given rate (bytes), padding
// domain byte, and permutation round count.
//
// Standard configurations: (168, 0x1F, 24) is SHAKE128; (168, 0x07, 12)
// is the KangarooTwelve single-node sponge.
func NewSponge(rate int, domain byte, rounds int) (*Sponge, error) {
	if rate <= 0 || rate >= stateBytes {
		return nil, fmt.Errorf("%w: %d", ErrBadRate, rate)
	}
	if rounds < 1 || rounds > maxRounds {
		return nil, fmt.Errorf("%w: %d", ErrBadRounds, rounds)
	}

	return &Sponge{rate: rate, rounds: rounds, domain: domain}, nil
}

// xorByte folds one byte into the state at byte offset pos (little-endian
// lane layout, FIPS 202 §3.1.2).
func (s *Sponge) xorByte(pos int, b byte) {
	s.state[pos/8] ^= uint64(b) << uint(8*(pos%8))
}

// byteAt extracts the state byte at offset pos.
func (s *Sponge) byteAt(pos int) byte {
	return byte(s.state[pos/8] >> uint(8*(pos%8)))
}

// Write absorbs p into the sponge. It never fails mid-stream: the only
// error is absorbing after Read has started squeezing.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.squeezing {
		return 0, ErrWriteAfterRead
	}
	for _, b := range p {
		s.xorByte(s.pos, b)
		s.pos++
		if s.pos == s.rate {
			keccakP(&s.state, s.rounds)
			s.pos = 0
		}
	}

	return len(p), nil
}

// pad applies multi-rate padding and switches to the squeeze phase:
// domain byte at the current position, 0x80 into the final rate byte
// (they coincide in the one-byte-left case, hence XOR), one permutation.
func (s *Sponge) pad() {
	s.xorByte(s.pos, s.domain)
	s.xorByte(s.rate-1, 0x80)
	keccakP(&s.state, s.rounds)
	s.pos = 0
	s.squeezing = true
}

// Read squeezes len(p) output bytes. The stream is unbounded; successive
// Reads continue it, which is what gives the XOF its prefix property.
// Read never returns an error (io.Reader conformance).
func (s *Sponge) Read(p []byte) (int, error) {
	if !s.squeezing {
		s.pad()
	}
	for i := range p {
		p[i] = s.byteAt(s.pos)
		s.pos++
		if s.pos == s.rate {
			keccakP(&s.state, s.rounds)
			s.pos = 0
		}
	}

	return len(p), nil
}

// Sum absorbs nothing further and returns the next n bytes of the output
// stream as a fresh slice. n = 0 yields an empty, non-nil digest.
func (s *Sponge) Sum(n int) []byte {
	out := make([]byte, n)
	_, _ = s.Read(out)

	return out
}
