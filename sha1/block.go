//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Round constants.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// State holds the five SHA-1 accumulators h0..h4.
type State [5]uint32

// NewState returns the SHA-1 initial state.
func NewState() State {
	return State{init0, init1, init2, init3, init4}
}

// StateFromDigest returns the state that was serialized into the
// digest d.
func StateFromDigest(d [Size]byte) State {
	var s State
	for i := range s {
		s[i] = binary.BigEndian.Uint32(d[i*4:])
	}
	return s
}

// Digest serializes the state words in big-endian order.
func (s State) Digest() [Size]byte {
	var digest [Size]byte

	binary.BigEndian.PutUint32(digest[0:], s[0])
	binary.BigEndian.PutUint32(digest[4:], s[1])
	binary.BigEndian.PutUint32(digest[8:], s[2])
	binary.BigEndian.PutUint32(digest[12:], s[3])
	binary.BigEndian.PutUint32(digest[16:], s[4])

	return digest
}

// Schedule expands the 64 byte block into the 80 word message
// schedule. The function panics if block is not BlockSize bytes long.
func Schedule(block []byte) [80]uint32 {
	if len(block) != BlockSize {
		panic(fmt.Sprintf("sha1: invalid block size %d", len(block)))
	}
	var w [80]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	return w
}

// Block runs the compression function over all full blocks of p and
// accumulates the results into the state. Trailing bytes that do not
// form a full block are ignored.
func (s *State) Block(p []byte) {
	h0, h1, h2, h3, h4 := s[0], s[1], s[2], s[3], s[4]

	for len(p) >= BlockSize {
		w := Schedule(p[:BlockSize])

		a, b, c, d, e := h0, h1, h2, h3, h4

		for i := 0; i < 80; i++ {
			var f, k uint32
			switch {
			case i < 20:
				f = b&c | (^b)&d
				k = _K0
			case i < 40:
				f = b ^ c ^ d
				k = _K1
			case i < 60:
				f = b&c | b&d | c&d
				k = _K2
			default:
				f = b ^ c ^ d
				k = _K3
			}
			t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}

	s[0], s[1], s[2], s[3], s[4] = h0, h1, h2, h3, h4
}
