package hamt

// overflow is a flat list of pairs whose hashes collide in every chunk.
// Pairs are kept in the insertion order.
type overflow[K comparable, V any] struct {
	kvs []KV[K, V]
}

func newOverflow[K comparable, V any]() *overflow[K, V] {
	return &overflow[K, V]{
		kvs: make([]KV[K, V], 0, 2),
	}
}

func (o *overflow[K, V]) get(key K) (V, bool) {
	for i := range o.kvs {
		if o.kvs[i].Key == key {
			return o.kvs[i].Val, true
		}
	}

	var zero V

	return zero, false
}

func (o *overflow[K, V]) set(key K, val V) {
	for i := range o.kvs {
		if o.kvs[i].Key == key {
			o.kvs[i].Val = val
			return
		}
	}

	o.kvs = append(o.kvs, KV[K, V]{Key: key, Val: val})
}
