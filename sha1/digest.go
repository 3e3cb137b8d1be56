//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"hash"
)

const (
	magic         = "sha\x01"
	marshaledSize = len(magic) + 5*4 + BlockSize + 8
)

// digest represents the partial evaluation of a checksum.
type digest struct {
	h   State
	x   [BlockSize]byte
	nx  int
	len uint64
}

func newDigest() *digest {
	d := new(digest)
	d.Reset()
	return d
}

// New returns a new hash.Hash computing the SHA-1 checksum. The Hash
// also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to marshal and unmarshal the internal
// state of the hash.
func New() hash.Hash {
	return newDigest()
}

// Resume returns a hash.Hash that continues from the state encoded in
// the checksum sum, as if length bytes had already been written. The
// length must be a multiple of BlockSize since a checksum only
// captures the state at a block boundary.
func Resume(sum [Size]byte, length uint64) (hash.Hash, error) {
	if length%BlockSize != 0 {
		return nil, ErrorInvalidLength
	}
	return &digest{
		h:   StateFromDigest(sum),
		len: length,
	}, nil
}

func (d *digest) Reset() {
	d.h = NewState()
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			d.h.Block(d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		d.h.Block(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest) Sum(in []byte) []byte {
	// Make a copy of d so that caller can keep writing and summing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	// The pending bytes are the tail of the message; pad them and
	// encode the total length.
	padded := Pad(d.x[:d.nx])
	binary.BigEndian.PutUint64(padded[len(padded)-8:], d.len<<3)
	d.h.Block(padded)
	d.nx = 0

	return d.h.Digest()
}

func (d *digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, h := range d.h {
		b = binary.BigEndian.AppendUint32(b, h)
	}
	b = append(b, d.x[:d.nx]...)
	b = append(b, make([]byte, len(d.x)-d.nx)...)
	b = binary.BigEndian.AppendUint64(b, d.len)
	return b, nil
}

func (d *digest) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return ErrorInvalidState
	}
	b = b[len(magic):]
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	copy(d.x[:], b[:BlockSize])
	b = b[BlockSize:]
	d.len = binary.BigEndian.Uint64(b)
	d.nx = int(d.len % BlockSize)
	return nil
}
