// Package hashing adapts hash functions to a fixed-width key hasher.
//
// A Hasher is deterministic: equal keys always yield equal hashes. Its width
// tells a trie how many bits of every hash are meaningful.
package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

const (
	Width32 uint = 32
	Width64 uint = 64

	mask32 uint64 = 1<<Width32 - 1
)

// Bytes is a set of key types hashed by their byte content.
type Bytes interface {
	~string | ~[]byte
}

// Integer is a set of key types hashed by their 64-bit little-endian encoding.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Hasher produces a Width()-bit hash of a key.
type Hasher[K any] struct {
	width uint
	fn    func(K) uint64
}

// New wraps a hash function. Only 32 and 64 are valid widths; the result of
// a 32-bit hasher is masked to its low 32 bits.
func New[K any](width uint, fn func(K) uint64) Hasher[K] {
	if width != Width32 && width != Width64 {
		panic("hashing: width must be 32 or 64")
	}

	return Hasher[K]{width: width, fn: fn}
}

func (h Hasher[K]) Hash(key K) uint64 {
	if h.width == Width32 {
		return h.fn(key) & mask32
	}

	return h.fn(key)
}

func (h Hasher[K]) Width() uint {
	return h.width
}

// Murmur3 hashes keys with the lower half of MurmurHash3 x64_128.
func Murmur3[K Bytes]() Hasher[K] {
	return New(Width64, func(key K) uint64 {
		return murmur3.Sum64([]byte(key))
	})
}

// Murmur3x32 hashes keys with MurmurHash3 x86_32.
func Murmur3x32[K Bytes]() Hasher[K] {
	return New(Width32, func(key K) uint64 {
		return uint64(murmur3.Sum32([]byte(key)))
	})
}

func XXHash[K Bytes]() Hasher[K] {
	return New(Width64, func(key K) uint64 {
		return xxhash.Sum64([]byte(key))
	})
}

func XXH3[K Bytes]() Hasher[K] {
	return New(Width64, func(key K) uint64 {
		return xxh3.Hash([]byte(key))
	})
}

// Murmur3Int hashes integer keys with MurmurHash3 over their 8-byte encoding.
func Murmur3Int[K Integer]() Hasher[K] {
	return New(Width64, func(key K) uint64 {
		var buf [8]byte

		binary.LittleEndian.PutUint64(buf[:], uint64(key))

		return murmur3.Sum64(buf[:])
	})
}
