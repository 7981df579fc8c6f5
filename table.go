package main

import (
	"bytes"
	"sort"

	"github.com/zeebo/xxh3"
)

type entry struct {
	key   []byte
	stats *Stats
}

// Table maps keys to their Stats. Keys are views into the input buffer
// and are never copied, so the buffer must outlive the table.
type Table struct {
	buckets map[uint64][]entry
	n       int
}

func NewTable() *Table {
	return &Table{
		buckets: make(map[uint64][]entry, 1000),
	}
}

// Get returns the Stats for key, creating empty Stats on first use.
func (t *Table) Get(key []byte) *Stats {
	h := xxh3.Hash(key)
	bucket := t.buckets[h]
	for i := range bucket {
		if bytes.Equal(bucket[i].key, key) {
			return bucket[i].stats
		}
	}
	s := NewStats()
	t.buckets[h] = append(bucket, entry{key: key, stats: &s})
	t.n++
	return &s
}

func (t *Table) Lookup(key []byte) (*Stats, bool) {
	for _, e := range t.buckets[xxh3.Hash(key)] {
		if bytes.Equal(e.key, key) {
			return e.stats, true
		}
	}
	return nil, false
}

func (t *Table) Len() int {
	return t.n
}

// Range calls fn for every key in unspecified order.
func (t *Table) Range(fn func(key []byte, s *Stats)) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			fn(e.key, e.stats)
		}
	}
}

// SortedKeys returns all keys in ascending byte order.
func (t *Table) SortedKeys() [][]byte {
	keys := make([][]byte, 0, t.n)
	t.Range(func(key []byte, _ *Stats) {
		keys = append(keys, key)
	})
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	})
	return keys
}
