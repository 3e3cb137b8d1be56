//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mac implements the secret-prefix message authentication
// code MAC = SHA1(key || message).
//
// The construction is insecure. Since the MAC is the complete SHA-1
// state after the padded key and message, anyone knowing a MAC and
// the key length can continue the hash computation and produce valid
// MACs for messages extended with the glue padding and an arbitrary
// suffix. The Extend function implements this length-extension
// attack. Use HMAC for real message authentication.
package mac

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"

	"github.com/markkurossi/sha1mac/sha1"
)

var (
	// ErrorInvalidKeyLength is returned if the assumed key length of
	// a forgery is negative.
	ErrorInvalidKeyLength = errors.New("mac: invalid key length")
)

// Sum returns the MAC of message under key.
func Sum(key, message []byte) [sha1.Size]byte {
	data := make([]byte, 0, len(key)+len(message))
	data = append(data, key...)
	data = append(data, message...)
	return sha1.Sum(data)
}

// SumReader returns the MAC of the message read from r under key. Read
// errors are returned as *sha1.ComputationError.
func SumReader(key []byte, r io.Reader) ([sha1.Size]byte, error) {
	return sha1.SumReader(io.MultiReader(bytes.NewReader(key), r))
}

// Verify tests if tag is the MAC of message under key. The comparison
// is done in constant time.
func Verify(key, message, tag []byte) bool {
	sum := Sum(key, message)
	return subtle.ConstantTimeCompare(sum[:], tag) == 1
}
