package util

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/trustedfirmware/lavagen/log"
)

// OrderedMap is a map supporting iteration ordered by the key.
//
// The map aborts on an attempt to override a key. This keeps static lookup
// tables (e.g., the model registry) free of silently clobbered entries.
type OrderedMap[K constraints.Ordered, V any] struct {
	data            map[K]V
	forbidOverrides bool
}

// OrderedMapEntry is an accessor into a single (key, value) pair of the map.
type OrderedMapEntry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// NewOrderedMap instantiates an empty OrderedMap.
func NewOrderedMap[K constraints.Ordered, V any]() OrderedMap[K, V] {
	return OrderedMap[K, V]{
		data:            map[K]V{},
		forbidOverrides: true,
	}
}

// AllowOverrides permits overriding values of existing keys.
func (m *OrderedMap[K, V]) AllowOverrides() {
	m.forbidOverrides = false
}

// Insert adds a (key, value) pair.
func (m *OrderedMap[K, V]) Insert(key K, value V) {
	if m.forbidOverrides {
		if val, ok := m.data[key]; ok {
			log.Fatal(
				"Attempting to override a value with key: %v; old value: %v; new value: %v",
				key, val, value)
		}
	}
	m.data[key] = value
}

// Lookup performs a lookup of the key, similar to `v, ok := m[k]`.
func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := m.data[key]
	return val, ok
}

// Entries returns the list of entries ordered by keys.
func (m *OrderedMap[K, V]) Entries() []OrderedMapEntry[K, V] {
	keys := m.Keys()

	result := make([]OrderedMapEntry[K, V], 0, len(m.data))
	for _, k := range keys {
		result = append(result, OrderedMapEntry[K, V]{
			Key:   k,
			Value: m.data[k],
		})
	}
	return result
}

// Keys returns the ordered list of map keys.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Values returns the values of entries ordered by their keys.
func (m *OrderedMap[K, V]) Values() []V {
	keys := m.Keys()

	result := make([]V, 0, len(m.data))
	for _, k := range keys {
		result = append(result, m.data[k])
	}
	return result
}
