//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mac

import (
	"encoding/binary"

	"github.com/markkurossi/sha1mac/sha1"
)

// Forgery contains a length-extended message and its MAC.
type Forgery struct {
	// Message is the original message followed by the glue padding
	// and the suffix. It does not include the key.
	Message []byte
	Tag     [sha1.Size]byte
}

// GluePadding returns the SHA-1 padding that follows an n byte
// input. With secret-prefix MACs, n is the key length plus the
// message length.
func GluePadding(n uint64) []byte {
	glue := make([]byte, sha1.PadLen(n)-n)
	glue[0] = 0x80
	binary.BigEndian.PutUint64(glue[len(glue)-8:], n<<3)
	return glue
}

// Extend forges the MAC for message || glue || suffix from the MAC
// tag of message, without knowing the key. The argument keyLen is the
// assumed key length; if it is wrong, the forged tag does not verify.
func Extend(tag [sha1.Size]byte, keyLen int, message, suffix []byte) (
	*Forgery, error) {

	if keyLen < 0 {
		return nil, ErrorInvalidKeyLength
	}
	n := uint64(keyLen) + uint64(len(message))
	glue := GluePadding(n)

	h, err := sha1.Resume(tag, n+uint64(len(glue)))
	if err != nil {
		return nil, err
	}
	h.Write(suffix)

	forgery := &Forgery{
		Message: make([]byte, 0, len(message)+len(glue)+len(suffix)),
	}
	forgery.Message = append(forgery.Message, message...)
	forgery.Message = append(forgery.Message, glue...)
	forgery.Message = append(forgery.Message, suffix...)
	copy(forgery.Tag[:], h.Sum(nil))

	return forgery, nil
}
