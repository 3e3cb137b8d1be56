//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	csha1 "crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20"
)

var vectors = []struct {
	input string
	sum   string
}{
	{
		input: "",
		sum:   "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	},
	{
		input: "abc",
		sum:   "a9993e364706816aba3e25717850c26c9cd0d89d",
	},
	{
		input: "The quick brown fox jumps over the lazy dog",
		sum:   "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
	},
	{
		// 56 bytes, pads into two blocks.
		input: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		sum:   "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
	},
	{
		// 112 bytes, pads into two blocks.
		input: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		sum: "a49b2446a02c645bf419f995b67091253a04a259",
	},
	{
		input: strings.Repeat("a", 1000000),
		sum:   "34aa973cd4c4daa4f61eeb2bdbad27316534016f",
	},
}

// testInput returns n deterministic pseudorandom bytes.
func testInput(t testing.TB, seed byte, n int) []byte {
	key := make([]byte, chacha20.KeySize)
	key[0] = seed
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	require.NoError(t, err)

	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}

func TestVectors(t *testing.T) {
	for idx, v := range vectors {
		sum := Sum([]byte(v.input))
		assert.Equal(t, v.sum, hex.EncodeToString(sum[:]), "vector %d", idx)

		h := New()
		h.Write([]byte(v.input))
		assert.Equal(t, v.sum, hex.EncodeToString(h.Sum(nil)),
			"vector %d", idx)
	}
}

func TestMultiBlock(t *testing.T) {
	inputs := []string{
		"----------------------------------------------------------------+!!",
		"----------------------------------------------------------------+" +
			"---------------------------------------------------------------+",
	}
	for blocks, input := range inputs {
		assert.Len(t, Pad([]byte(input)), (blocks+2)*BlockSize, input)
		assert.Equal(t, csha1.Sum([]byte(input)), Sum([]byte(input)), input)
	}
}

func TestPad(t *testing.T) {
	for _, l := range []int{0, 1, 55, 56, 63, 64, 119, 120, 1000} {
		data := bytes.Repeat([]byte{0xff}, l)
		padded := Pad(data)

		require.Zero(t, len(padded)%BlockSize, "len=%d", l)
		require.GreaterOrEqual(t, len(padded), l+9, "len=%d", l)
		require.Less(t, len(padded)-BlockSize, l+9, "len=%d: not minimal", l)
		require.Equal(t, PadLen(uint64(l)), uint64(len(padded)), "len=%d", l)
		require.Equal(t, data, padded[:l], "len=%d", l)
		require.Equal(t, byte(0x80), padded[l], "len=%d", l)
		require.Equal(t, make([]byte, len(padded)-8-l-1),
			padded[l+1:len(padded)-8], "len=%d", l)
		require.Equal(t, uint64(l)*8,
			binary.BigEndian.Uint64(padded[len(padded)-8:]), "len=%d", l)
	}

	// 55 bytes fill the first block exactly with the marker and the
	// length field.
	assert.Len(t, Pad(make([]byte, 55)), BlockSize)
}

func TestSchedule(t *testing.T) {
	w := Schedule(Pad([]byte("abc")))

	assert.Equal(t, uint32(0x61626380), w[0])
	for i := 1; i < 15; i++ {
		assert.Zero(t, w[i], "w[%d]", i)
	}
	assert.Equal(t, uint32(0x18), w[15])
	assert.Equal(t, uint32(0xc2c4c700), w[16])
	for i := 16; i < 80; i++ {
		x := w[i-3] ^ w[i-8] ^ w[i-14] ^ w[i-16]
		require.Equal(t, x<<1|x>>31, w[i], "w[%d]", i)
	}

	var zero [BlockSize]byte
	assert.Equal(t, [80]uint32{}, Schedule(zero[:]))
}

func TestSchedulePanic(t *testing.T) {
	assert.Panics(t, func() {
		Schedule(make([]byte, BlockSize-1))
	})
}

func TestState(t *testing.T) {
	s := NewState()
	assert.Equal(t, s, StateFromDigest(s.Digest()))

	// Trailing partial blocks are ignored.
	s.Block(make([]byte, BlockSize-1))
	assert.Equal(t, NewState(), s)
}

func TestCrypto(t *testing.T) {
	for l := 0; l < 3*BlockSize+8; l++ {
		data := testInput(t, byte(l), l)
		require.Equal(t, csha1.Sum(data), Sum(data), "len=%d", l)
	}
}

func TestDeterministic(t *testing.T) {
	data := testInput(t, 42, 1000)
	a := Sum(data)
	assert.Equal(t, a, Sum(data))

	data[500] ^= 1
	assert.NotEqual(t, a, Sum(data))
}

func TestStreaming(t *testing.T) {
	data := testInput(t, 7, 1031)
	expected := Sum(data)

	for _, chunk := range []int{1, 3, 63, 64, 65, 200} {
		h := New()
		for i := 0; i < len(data); i += chunk {
			end := i + chunk
			if end > len(data) {
				end = len(data)
			}
			h.Write(data[i:end])

			// Sum must not disturb the running state.
			h.Sum(nil)
		}
		assert.Equal(t, expected[:], h.Sum(nil), "chunk=%d", chunk)
	}

	h := New()
	h.Write(data)
	h.Reset()
	empty := Sum(nil)
	assert.Equal(t, empty[:], h.Sum(nil))
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, BlockSize, h.BlockSize())
}

type marshaler interface {
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

func TestMarshal(t *testing.T) {
	data := testInput(t, 9, 300)
	expected := Sum(data)

	for _, split := range []int{0, 1, 64, 100, 299} {
		h := New()
		h.Write(data[:split])

		state, err := h.(marshaler).MarshalBinary()
		require.NoError(t, err)
		require.Len(t, state, marshaledSize)

		h2 := New()
		require.NoError(t, h2.(marshaler).UnmarshalBinary(state))
		h2.Write(data[split:])
		assert.Equal(t, expected[:], h2.Sum(nil), "split=%d", split)
	}

	h := New()
	assert.ErrorIs(t, h.(marshaler).UnmarshalBinary([]byte(magic)),
		ErrorInvalidState)
	assert.ErrorIs(t, h.(marshaler).UnmarshalBinary(
		make([]byte, marshaledSize)), ErrorInvalidState)
}

func TestResume(t *testing.T) {
	prefix := testInput(t, 11, 2*BlockSize)
	suffix := []byte("appended data")

	// Resuming from Sum(prefix) continues after the padded prefix.
	expected := Sum(append(Pad(prefix), suffix...))

	h, err := Resume(Sum(prefix), PadLen(uint64(len(prefix))))
	require.NoError(t, err)
	h.Write(suffix)
	assert.Equal(t, expected[:], h.Sum(nil))

	_, err = Resume(Sum(prefix), 10)
	assert.ErrorIs(t, err, ErrorInvalidLength)
}

type failingReader struct {
	n int
}

var errRead = errors.New("device failure")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.n == 0 {
		return 0, errRead
	}
	n := len(p)
	if n > r.n {
		n = r.n
	}
	for i := 0; i < n; i++ {
		p[i] = 'a'
	}
	r.n -= n
	return n, nil
}

func TestSumReader(t *testing.T) {
	data := testInput(t, 13, 5000)
	sum, err := SumReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Sum(data), sum)

	sum, err = SumReader(&failingReader{n: 100})
	require.Error(t, err)

	var cerr *ComputationError
	assert.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, errRead)
	assert.Equal(t, [Size]byte{}, sum)
}

func BenchmarkSum1K(b *testing.B) {
	data := testInput(b, 1, 1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}

func BenchmarkStream8K(b *testing.B) {
	data := testInput(b, 2, 8192)
	b.SetBytes(int64(len(data)))
	h := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset()
		h.Write(data)
		h.Sum(nil)
	}
}
