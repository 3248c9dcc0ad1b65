package store

// entry is one key/value pair in a bucket chain.
type entry[V any] struct {
	key   string
	value V
}

// Table is a fixed-size hash table with separate chaining. There is no
// resizing: under heavy load operations degrade toward O(n/buckets),
// which is acceptable at this scale as long as the bucket count is sized
// to expected load. Values() is a full scan and callers that iterate it
// (search, conversation history) pay that cost on every call.
//
// Table itself is not safe for concurrent use; Store serializes access.
type Table[V any] struct {
	buckets [][]entry[V]
	size    int
}

const defaultBuckets = 256

// NewTable creates a table with the default bucket count.
func NewTable[V any]() *Table[V] {
	return &Table[V]{buckets: make([][]entry[V], defaultBuckets)}
}

// hash sums the key's code points. Stable across runs, which keeps
// bucket placement deterministic for tests.
func (t *Table[V]) hash(key string) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum % len(t.buckets)
}

// Put inserts or overwrites the value for key.
func (t *Table[V]) Put(key string, value V) {
	idx := t.hash(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return
		}
	}
	t.buckets[idx] = append(bucket, entry[V]{key: key, value: value})
	t.size++
}

// Get returns the value for key and whether it was present.
func (t *Table[V]) Get(key string) (V, bool) {
	for _, e := range t.buckets[t.hash(key)] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes the key and reports whether it existed.
func (t *Table[V]) Remove(key string) bool {
	idx := t.hash(key)
	bucket := t.buckets[idx]
	for i := range bucket {
		if bucket[i].key == key {
			t.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			t.size--
			return true
		}
	}
	return false
}

// Values returns a snapshot of all stored values. Order is bucket order,
// which callers must treat as unspecified.
func (t *Table[V]) Values() []V {
	out := make([]V, 0, t.size)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			out = append(out, e.value)
		}
	}
	return out
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int {
	return t.size
}
