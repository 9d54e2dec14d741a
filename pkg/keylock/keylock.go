// Package keylock provides mutual exclusion scoped to keys.
package keylock

import (
	"cmp"
	"slices"
	"sync"
)

// Map hands out one mutex per key. Entries are kept for the life of the Map.
type Map[K cmp.Ordered] struct {
	mu    sync.Mutex
	locks map[K]*sync.Mutex
}

// New creates an empty lock map.
func New[K cmp.Ordered]() *Map[K] {
	return &Map[K]{locks: make(map[K]*sync.Mutex)}
}

func (m *Map[K]) get(key K) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	return l
}

// Lock locks key and returns the unlock function.
func (m *Map[K]) Lock(key K) func() {
	l := m.get(key)
	l.Lock()
	return l.Unlock
}

// LockAll locks every distinct key in ascending order and returns the unlock function.
// Ordered acquisition keeps overlapping key sets from deadlocking.
func (m *Map[K]) LockAll(keys []K) func() {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		l := m.get(key)
		l.Lock()
		held = append(held, l)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
