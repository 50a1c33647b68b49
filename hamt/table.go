package hamt

import (
	"github.com/aglyzov/go-hamt/bitcount"
)

type slotKind uint8

const (
	kvSlot slotKind = iota
	tableSlot
	overflowSlot
)

func (kind slotKind) String() string {
	switch kind {
	case kvSlot:
		return "kv"
	case tableSlot:
		return "table"
	case overflowSlot:
		return "overflow"
	}

	return "unknown"
}

// slot is a tagged variant: a key-value pair, a child table or an overflow.
type slot[K comparable, V any] struct {
	kind     slotKind
	key      K
	val      V
	table    *table[K, V]
	overflow *overflow[K, V]
}

// table is a bitmap-indexed node of the trie.
type table[K comparable, V any] struct {
	level       uint   // number of hash chunks consumed by the ancestors
	entryBitmap uint64 // occupied slots
	tableBitmap uint64 // slots holding a child (subset of entryBitmap)
	slots       []slot[K, V]
}

func newTable[K comparable, V any](level uint) *table[K, V] {
	return &table[K, V]{level: level}
}

// chunkBit returns a single bit addressing the table's chunk of the hash.
func (t *table[K, V]) chunkBit(p *params[K], hash uint64) uint64 {
	chunk := (hash >> (t.level * p.chunkWidth)) & p.chunkMask

	return uint64(1) << chunk
}

func (t *table[K, V]) get(p *params[K], key K, hash uint64) (V, bool) {
	var zero V

	bit := t.chunkBit(p, hash)

	if t.entryBitmap&bit == 0 {
		// nothing was ever set under this chunk
		return zero, false
	}

	s := &t.slots[bitcount.Rank(p.popCount, t.entryBitmap, bit)]

	if t.tableBitmap&bit != 0 {
		// the slot holds a child
		if s.kind == overflowSlot {
			return s.overflow.get(key)
		}

		return s.table.get(p, key, hash)
	}

	if s.key == key {
		return s.val, true
	}

	// a different key owns this chunk
	return zero, false
}

func (t *table[K, V]) set(p *params[K], key K, hash uint64, val V) {
	var (
		bit = t.chunkBit(p, hash)
		idx = bitcount.Rank(p.popCount, t.entryBitmap, bit)
	)

	if t.entryBitmap&bit == 0 {
		// the slot is empty - insert a pair at idx shifting the tail
		t.slots = append(t.slots, slot[K, V]{})
		copy(t.slots[idx+1:], t.slots[idx:])
		t.slots[idx] = slot[K, V]{kind: kvSlot, key: key, val: val}

		t.entryBitmap |= bit

		return
	}

	s := &t.slots[idx]

	if t.tableBitmap&bit != 0 {
		// the slot holds a child
		if s.kind == overflowSlot {
			s.overflow.set(key, val)
		} else {
			s.table.set(p, key, hash, val)
		}

		return
	}

	if s.key == key {
		// same key - replace the value
		s.val = val
		return
	}

	// chunk collision - replace the pair with a child
	*s = t.grow(p, s.key, s.val, key, hash, val)

	t.tableBitmap |= bit
}

// grow builds a child holding both the existing pair and the new one.
func (t *table[K, V]) grow(p *params[K], oldKey K, oldVal V, key K, hash uint64, val V) slot[K, V] {
	next := t.level + 1

	if next*p.chunkWidth < p.hashWidth {
		p.log.Debugf("level %d: chunk collision of %#v and %#v, new table at level %d", t.level, oldKey, key, next)

		child := newTable[K, V](next)

		// the existing key is hashed again since pairs don't keep their hashes
		child.set(p, oldKey, p.hasher.Hash(oldKey), oldVal)
		child.set(p, key, hash, val)

		return slot[K, V]{kind: tableSlot, table: child}
	}

	p.log.Debugf("level %d: hash bits exhausted for %#v and %#v, new overflow", t.level, oldKey, key)

	over := newOverflow[K, V]()
	over.set(oldKey, oldVal)
	over.set(key, val)

	return slot[K, V]{kind: overflowSlot, overflow: over}
}
