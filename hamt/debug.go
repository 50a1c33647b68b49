package hamt

import (
	"fmt"
	"math/bits"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Stats describes the shape of a trie.
type Stats struct {
	Tables    int  // bitmap-indexed nodes including the root
	Overflows int  // overflow nodes
	Pairs     int  // key-value pairs including those in overflows
	Depth     uint // the deepest table level in use
}

// String returns a nested dump of the trie: every table with its level and both
// bitmaps in binary followed by its slots in order. It is meant for debugging
// only and is not a stable format.
func (m *Map[K, V]) String() string {
	var b strings.Builder

	m.root.dump(&b, m.params, "T:", "")

	return b.String()
}

func (m *Map[K, V]) DebugDump() {
	fmt.Fprint(os.Stdout, m.String())
}

// Stats walks the trie and counts its nodes and pairs.
func (m *Map[K, V]) Stats() Stats {
	var stats Stats

	m.root.stats(&stats)

	return stats
}

// Verify walks the trie and checks its structural invariants.
func (m *Map[K, V]) Verify() error {
	return m.root.verify(m.params, 0)
}

func (t *table[K, V]) dump(b *strings.Builder, p *params[K], tag, indent string) {
	width := 1 << p.chunkWidth

	fmt.Fprintf(b, "%s%s TABLE level=%d entries=%0*b tables=%0*b\n",
		indent, tag, t.level, width, t.entryBitmap, width, t.tableBitmap)

	indent += "  "

	for i := range t.slots {
		var (
			s   = &t.slots[i]
			tag = fmt.Sprintf("%d:", i)
		)

		switch s.kind {
		case tableSlot:
			s.table.dump(b, p, tag, indent)
		case overflowSlot:
			fmt.Fprintf(b, "%s%s OVERFLOW pairs=%d\n", indent, tag, len(s.overflow.kvs))

			for j, kv := range s.overflow.kvs {
				fmt.Fprintf(b, "%s  %d: KV key=%#v val=%v\n", indent, j, kv.Key, kv.Val)
			}
		default:
			fmt.Fprintf(b, "%s%s KV key=%#v val=%v\n", indent, tag, s.key, s.val)
		}
	}
}

func (t *table[K, V]) stats(stats *Stats) {
	stats.Tables++

	if t.level > stats.Depth {
		stats.Depth = t.level
	}

	for i := range t.slots {
		s := &t.slots[i]

		switch s.kind {
		case tableSlot:
			s.table.stats(stats)
		case overflowSlot:
			stats.Overflows++
			stats.Pairs += len(s.overflow.kvs)
		default:
			stats.Pairs++
		}
	}
}

// verify checks the table and its children. Every key below must share the
// path bits consumed so far.
func (t *table[K, V]) verify(p *params[K], path uint64) error {
	if n := p.popCount(t.entryBitmap); n != len(t.slots) {
		return errors.AssertionFailedf("level %d: %d slots for %d entry bits", t.level, len(t.slots), n)
	}

	if t.tableBitmap&^t.entryBitmap != 0 {
		return errors.AssertionFailedf("level %d: table bitmap %b is not a subset of %b", t.level, t.tableBitmap, t.entryBitmap)
	}

	var (
		shift    = t.level * p.chunkWidth
		pathMask = uint64(1)<<shift - 1
		idx      int
	)

	for bitmap := t.entryBitmap; bitmap != 0; bitmap &= bitmap - 1 {
		var (
			chunk   = uint64(bits.TrailingZeros64(bitmap))
			bit     = uint64(1) << chunk
			s       = &t.slots[idx]
			isChild = t.tableBitmap&bit != 0
			subPath = path | chunk<<shift
		)

		idx++

		if isChild != (s.kind != kvSlot) {
			return errors.AssertionFailedf("level %d, chunk %d: %s slot disagrees with the table bitmap", t.level, chunk, s.kind)
		}

		switch s.kind {
		case tableSlot:
			if s.table.level != t.level+1 || s.table.level > p.maxLevel {
				return errors.AssertionFailedf("level %d, chunk %d: child table at level %d", t.level, chunk, s.table.level)
			}

			if err := s.table.verify(p, subPath); err != nil {
				return err
			}
		case overflowSlot:
			if t.level != p.maxLevel {
				return errors.AssertionFailedf("level %d, chunk %d: overflow above the max level %d", t.level, chunk, p.maxLevel)
			}

			if len(s.overflow.kvs) < 2 {
				return errors.AssertionFailedf("level %d, chunk %d: overflow with %d pairs", t.level, chunk, len(s.overflow.kvs))
			}

			for _, kv := range s.overflow.kvs {
				if err := checkPath(p, kv.Key, subPath, pathMask|p.chunkMask<<shift); err != nil {
					return err
				}
			}
		default:
			if err := checkPath(p, s.key, subPath, pathMask|p.chunkMask<<shift); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkPath[K any](p *params[K], key K, path, mask uint64) error {
	if hash := p.hasher.Hash(key); hash&mask != path {
		return errors.AssertionFailedf("key %#v with hash %#x is misplaced at path %#x", key, hash, path)
	}

	return nil
}
