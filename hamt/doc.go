// Package hamt defines an implementation of a Hash Array Mapped Trie (HAMT): a map
// organized as a trie over the bits of a fixed-width key hash.
//
// A key is hashed exactly once per Get/Set. Every trie level then consumes the next
// C bits of that hash (a chunk), starting from the least significant end:
//
//	hash:  ... [ chunk 3 ] [ chunk 2 ] [ chunk 1 ] [ chunk 0 ]
//	level:          3           2           1           0
//
// Tables:
// ------
//
// Each table (a bitmap-indexed node) has two 2^C-bit bitmaps and a compact slice of
// slots, one per bit set in the entry bitmap, ordered by the bit index:
//
//   - entry bitmap - bit i is set when slot i holds anything;
//   - table bitmap - bit i is set when slot i holds a child (a table or an overflow),
//     it is always a subset of the entry bitmap.
//
// A slot position in the slice is the number of entry bits set below its own bit:
//
//	entries: 0b_0100_1010      chunk 6 -> bit 0b_0100_0000
//	                           rank    -> popcount(0b_0000_1010) == 2
//	slots:   [ kv ][ table ][ kv ]
//	                          ^ slots[2]
//
// Growth:
// ------
//
// When a new key meets a kv slot holding a different key (a chunk collision), the
// slot is replaced with a new table one level deeper and both pairs are set into it.
// Once the next level would run out of hash bits, an overflow (a flat list of
// pairs) is created instead; it never grows any further.
//
// Example trie (C=6):
//
//	[table:L0] --+-- [kv:"foo"]
//	             |
//	             `-- [table:L1] --+-- [kv:"bar"]
//	                              |
//	                              `-- [kv:"baz"]
//
// A Map is not safe for concurrent use: Set mutates tables in place.
package hamt
