package nonempty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"maps"
)

// Map is a keyed collection which is guaranteed to hold at least one entry.
//
// It follows the same storage shape as Seq: one key/value pair is held
// statically in the struct, all further entries live in an ordinary Go map.
// The statically held key never occurs in the dynamic map, so every key has a
// single source of truth. Key uniqueness and unordered iteration are
// inherited from the backing map.
type Map[K comparable, V any] struct {
	firstKey K
	firstVal V
	dynamic  map[K]V
}

// NewMap creates a map holding a single entry. The dynamic portion does not
// allocate until more entries are set.
func NewMap[K comparable, V any](key K, value V) *Map[K, V] {
	return &Map[K, V]{firstKey: key, firstVal: value}
}

// Len returns the number of entries, which is always at least 1.
func (m *Map[K, V]) Len() int {
	return 1 + len(m.dynamic)
}

// IsEmpty returns false; see Seq.IsEmpty.
func (m *Map[K, V]) IsEmpty() bool {
	return false
}

// Contains reports whether the map holds an entry for key.
func (m *Map[K, V]) Contains(key K) bool {
	if key == m.firstKey {
		return true
	}
	_, ok := m.dynamic[key]
	return ok
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if key == m.firstKey {
		return m.firstVal, true
	}
	value, ok := m.dynamic[key]
	return value, ok
}

// Set stores value under key, replacing any previous value. Setting the
// statically held key updates the static slot, keeping the key out of the
// dynamic map.
func (m *Map[K, V]) Set(key K, value V) {
	if key == m.firstKey {
		m.firstVal = value
		return
	}
	if m.dynamic == nil {
		m.dynamic = make(map[K]V)
	}
	m.dynamic[key] = value
}

// Delete removes the entry stored under key, reporting whether an entry was
// removed. Like Seq.Pop it conceptually consumes the receiver and returns a
// successor: deleting the statically held key promotes an arbitrary dynamic
// entry into the static slot, and once no such entry remains the map as a
// whole is consumed and the successor is nil. The receiver must not be used
// after a nil return.
func (m *Map[K, V]) Delete(key K) (*Map[K, V], bool) {
	if key != m.firstKey {
		if _, ok := m.dynamic[key]; !ok {
			return m, false
		}
		delete(m.dynamic, key)
		return m, true
	}
	if len(m.dynamic) == 0 {
		return nil, true
	}
	for k, v := range m.dynamic {
		m.firstKey, m.firstVal = k, v
		delete(m.dynamic, k)
		break
	}
	return m, true
}

// All iterates over the entries of the map. The statically held entry comes
// first; dynamic entries follow in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !yield(m.firstKey, m.firstVal) {
			return
		}
		for k, v := range m.dynamic {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys iterates over the keys of the map, statically held key first.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if !yield(m.firstKey) {
			return
		}
		for k := range m.dynamic {
			if !yield(k) {
				return
			}
		}
	}
}

// MapFromGoMap converts a plain (possibly empty) Go map into a non-empty map.
// It fails with ErrSourceEmpty if the source holds no entries; otherwise an
// arbitrary entry becomes the statically held one and the remainder is copied
// into the dynamic portion. The source map is not aliased.
func MapFromGoMap[K comparable, V any](src map[K]V) (*Map[K, V], error) {
	if len(src) == 0 {
		return nil, ErrSourceEmpty
	}
	T().Debugf("non-empty map from Go map of %d entries", len(src))
	m := &Map[K, V]{dynamic: maps.Clone(src)}
	for k, v := range m.dynamic {
		m.firstKey, m.firstVal = k, v
		delete(m.dynamic, k)
		break
	}
	return m, nil
}

// ToGoMap converts the map into a freshly allocated plain Go map holding all
// entries.
func (m *Map[K, V]) ToGoMap() map[K]V {
	out := make(map[K]V, m.Len())
	maps.Copy(out, m.dynamic)
	out[m.firstKey] = m.firstVal
	return out
}
