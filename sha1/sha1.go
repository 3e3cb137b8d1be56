//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174. The implementation follows the specification step by step:
// the message is padded to a multiple of the block size, each block
// is expanded into an 80-word schedule, and the schedule is mixed
// into the five state words with 80 rounds.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Size is the size of a SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

var (
	// ErrorInvalidLength is returned when a resumed digest is given a
	// length that is not a multiple of BlockSize.
	ErrorInvalidLength = errors.New("sha1: length is not block aligned")

	// ErrorInvalidState is returned when unmarshaling a malformed
	// digest state.
	ErrorInvalidState = errors.New("sha1: invalid hash state")
)

// ComputationError is returned when a digest computation fails
// because its input could not be read.
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("sha1: %s: %s", e.Op, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	state := NewState()
	state.Block(Pad(data))
	return state.Digest()
}

// SumReader returns the SHA-1 checksum of all data read from r. If
// reading fails, the function returns a *ComputationError wrapping
// the read error.
func SumReader(r io.Reader) ([Size]byte, error) {
	d := newDigest()
	if _, err := io.Copy(d, r); err != nil {
		return [Size]byte{}, &ComputationError{
			Op:  "read",
			Err: err,
		}
	}
	return d.checkSum(), nil
}

// PadLen returns the length of the padded message for an n byte
// input. It is the smallest multiple of BlockSize that can hold the
// input, the 0x80 marker byte, and the 8 byte length field.
func PadLen(n uint64) uint64 {
	return (n + 8 + BlockSize) &^ (BlockSize - 1)
}

// Pad returns a padded copy of data. The data is followed by one 0x80
// byte, zero bytes until the length is 56 mod 64, and the data length
// in bits as a 64-bit big-endian integer.
func Pad(data []byte) []byte {
	length := uint64(len(data))

	padded := make([]byte, len(data), PadLen(length))
	copy(padded, data)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0)
	}

	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], length<<3)

	return append(padded, tmp[:]...)
}
