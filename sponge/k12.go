// Package sponge - KangarooTwelve on top of the generic sponge.
package sponge

import "errors"

// ErrBadOutputLength indicates a negative requested digest length.
var ErrBadOutputLength = errors.New("sponge: output length must be non-negative")

// KangarooTwelve parameters (draft-irtf-cfrg-kangarootwelve).
const (
	k12Rate   = 168 // bytes: 1600 bits minus 256 bits capacity
	k12Rounds = 12

	k12ChunkSize = 8192 // bytes per tree leaf
	k12CVSize    = 32   // chaining value length

	domainSingle = 0x07 // |input| ≤ one chunk: plain sponge
	domainLeaf   = 0x0B // intermediate leaf nodes
	domainFinal  = 0x06 // final node of the tree mode
)

// K12 computes the KangarooTwelve digest of message with an optional
// customization string, producing outLen bytes.
//
// outLen == 0 returns an empty digest; an empty message is valid input.
// The prefix property holds: K12(m, c, a)[:b] == K12(m, c, b) for b ≤ a.
//
// Complexity: O(len(message) + outLen).
func K12(message, customization []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrBadOutputLength
	}

	// S = message ‖ customization ‖ length_encode(|customization|).
	s := make([]byte, 0, len(message)+len(customization)+9)
	s = append(s, message...)
	s = append(s, customization...)
	s = append(s, lengthEncode(len(customization))...)

	if len(s) <= k12ChunkSize {
		node, err := NewSponge(k12Rate, domainSingle, k12Rounds)
		if err != nil {
			return nil, err
		}
		_, _ = node.Write(s)

		return node.Sum(outLen), nil
	}

	return k12Tree(s, outLen)
}

// k12Tree hashes inputs longer than one chunk: the first chunk opens the
// final node, every further chunk reduces to a 32-byte chaining value via
// its own leaf sponge, and the final node closes over the chaining values,
// the leaf count and the 0xFFFF terminator.
func k12Tree(s []byte, outLen int) ([]byte, error) {
	final, err := NewSponge(k12Rate, domainFinal, k12Rounds)
	if err != nil {
		return nil, err
	}
	_, _ = final.Write(s[:k12ChunkSize])
	_, _ = final.Write([]byte{0x03, 0, 0, 0, 0, 0, 0, 0})

	leaves := 0
	for off := k12ChunkSize; off < len(s); off += k12ChunkSize {
		end := off + k12ChunkSize
		if end > len(s) {
			end = len(s)
		}
		leaf, leafErr := NewSponge(k12Rate, domainLeaf, k12Rounds)
		if leafErr != nil {
			return nil, leafErr
		}
		_, _ = leaf.Write(s[off:end])
		_, _ = final.Write(leaf.Sum(k12CVSize))
		leaves++
	}

	_, _ = final.Write(lengthEncode(leaves))
	_, _ = final.Write([]byte{0xFF, 0xFF})

	return final.Sum(outLen), nil
}

// lengthEncode is the K12 length encoding: the value's big-endian bytes
// without leading zeros (none at all for zero), followed by the byte count.
func lengthEncode(x int) []byte {
	var digits []byte
	for v := x; v > 0; v >>= 8 {
		digits = append(digits, byte(v))
	}
	// digits are little-endian; emit reversed, then the count.
	out := make([]byte, 0, len(digits)+1)
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}

	return append(out, byte(len(digits)))
}
