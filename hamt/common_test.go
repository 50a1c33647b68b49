package hamt

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/aglyzov/go-hamt/hashing"
)

// fixedHasher hashes keys with a predefined table, unknown keys hash to zero.
func fixedHasher(width uint, hashes map[string]uint64) hashing.Hasher[string] {
	return hashing.New(width, func(key string) uint64 {
		return hashes[key]
	})
}

// constHasher makes every key collide in every chunk.
func constHasher(width uint) hashing.Hasher[string] {
	return hashing.New(width, func(string) uint64 {
		return 0
	})
}

// weakHasher keeps only the lowest bits of murmur3 to force deep collisions.
func weakHasher(keep uint) hashing.Hasher[string] {
	var (
		base = hashing.Murmur3[string]()
		mask = uint64(1)<<keep - 1
	)

	return hashing.New(hashing.Width64, func(key string) uint64 {
		return base.Hash(key) & mask
	})
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}
