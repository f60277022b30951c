// Package sponge implements the Keccak-p[1600] permutation, a generic
// absorb/squeeze sponge over it, and the KangarooTwelve extendable-output
// function (XOF).
//
// Layers, bottom up:
//
//   - Permute applies Keccak-p[1600, rounds] to a 25-lane state. The round
//     function (θ, ρ, π, χ, ι) uses the published rotation offsets and, for
//     a reduced round count nr, the LAST nr of the 24 Keccak-f round
//     constants — exactly the convention KangarooTwelve specifies. No
//     approximate or partial permutation is offered.
//   - Sponge splits the 200-byte state into rate and capacity, absorbs
//     message bytes by XOR into the rate, applies multi-rate padding
//     (domain byte at the message boundary, 0x80 into the last rate byte),
//     and squeezes arbitrarily many output bytes. It implements io.Writer
//     and io.Reader; the first Read closes the absorb phase.
//   - K12 is KangarooTwelve per the CFRG specification: rate 168, 12
//     rounds; inputs up to 8192 bytes hash as a single node (domain 0x07);
//     longer inputs switch to the tree mode with 32-byte chaining values
//     (leaf domain 0x0B, final-node domain 0x06).
//
// XOF prefix property
//
//	For any message, the first L1 bytes of an L2-byte digest (L1 < L2)
//	equal the L1-byte digest. This follows from squeezing being a pure
//	stream; the tests assert it explicitly alongside the known-answer
//	vectors.
//
// Verification anchors
//
//   - K12("", "", 32) equals the published IETF draft vector.
//   - A Sponge configured with rate 168, domain 0x1F and 24 rounds IS
//     SHAKE128; the tests cross-check it byte-for-byte against
//     golang.org/x/crypto/sha3, independently validating the permutation,
//     padding and squeeze logic shared with the 12-round K12 path.
//
// Errors
//
//   - ErrBadRounds        rounds outside [1, 24].
//   - ErrBadRate          rate outside (0, 200).
//   - ErrWriteAfterRead   absorbing after squeezing has started.
//   - ErrBadOutputLength  negative digest length.
package sponge
