package hamt

import (
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/aglyzov/go-hamt/hashing"
)

var log = logging.MustGetLogger("hamt")

// ErrKeyNotFound is returned by Find when a key was never set.
var ErrKeyNotFound = errors.New("hamt: key not found")

// Hasher produces a fixed-width hash of a key. Equal keys must have equal hashes.
type Hasher[K any] interface {
	Hash(key K) uint64
	Width() uint // 32 or 64
}

// KV represents a key-value pair
type KV[K comparable, V any] struct {
	Key K
	Val V
}

// Map is a HAMT owning a single root table at level 0.
type Map[K comparable, V any] struct {
	params *params[K]
	root   *table[K, V]
}

// New returns an empty Map hashing keys with the given hasher.
//
// It panics if the hasher width or the options are invalid (see CheckConfig).
func New[K comparable, V any](hasher Hasher[K], opts ...Option) *Map[K, V] {
	p, err := newParams(hasher, opts)
	if err != nil {
		panic(err)
	}

	return &Map[K, V]{
		params: p,
		root:   newTable[K, V](0),
	}
}

// NewString returns a new Map with string keys hashed by MurmurHash3, optionally
// initialized with the given key-value pairs.
func NewString[V any](init ...KV[string, V]) *Map[string, V] {
	m := New[string, V](hashing.Murmur3[string]())

	for _, kv := range init {
		m.Set(kv.Key, kv.Val)
	}

	return m
}

// Get returns a value associated with the given key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.root.get(m.params, key, m.params.hasher.Hash(key))
}

// Find is like Get but reports a missing key with an error wrapping ErrKeyNotFound.
func (m *Map[K, V]) Find(key K) (V, error) {
	val, ok := m.Get(key)
	if !ok {
		return val, errors.Wrapf(ErrKeyNotFound, "%#v", key)
	}

	return val, nil
}

// Set associates a value with the given key replacing a previous one.
func (m *Map[K, V]) Set(key K, val V) {
	m.root.set(m.params, key, m.params.hasher.Hash(key), val)
}

// MaxLevel returns the deepest level a table can have; collisions there end up
// in overflows.
func (m *Map[K, V]) MaxLevel() uint {
	return m.params.maxLevel
}
