// Package bitcount counts set bits (population count) in bitmap words.
//
// The default engine looks every 16-bit slice of a word up in a table that is
// built once at process start. Wider words are sliced into 16-bit chunks and
// the per-chunk counts are summed.
package bitcount

import (
	"github.com/hideo55/go-popcount"
)

const (
	chunkWidth = 16
	chunkMask  = (1 << chunkWidth) - 1
)

// table16 holds popcounts of every 16-bit value. Read-only after init.
var table16 [1 << chunkWidth]uint8

func init() {
	for i := 1; i < len(table16); i++ {
		table16[i] = uint8(i&1) + table16[i>>1]
	}
}

// Counter returns the number of set bits in a word.
type Counter func(uint64) int

var (
	// Table is the 16-bit lookup table engine.
	Table Counter = Count64

	// Native delegates to go-popcount which uses the POPCNT instruction when
	// the CPU supports it.
	Native Counter = func(v uint64) int {
		return int(popcount.Count(v))
	}
)

func Count16(v uint16) int {
	return int(table16[v])
}

func Count32(v uint32) int {
	return int(table16[v&chunkMask]) +
		int(table16[(v>>16)&chunkMask])
}

func Count64(v uint64) int {
	return int(table16[v&chunkMask]) +
		int(table16[(v>>16)&chunkMask]) +
		int(table16[(v>>32)&chunkMask]) +
		int(table16[(v>>48)&chunkMask])
}

// Rank returns the number of bits set in bitmap below the given single bit,
// i.e. a position of that bit among the set ones.
func Rank(count Counter, bitmap, bit uint64) int {
	return count(bitmap & (bit - 1))
}
