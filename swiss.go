package probe

import "github.com/cockroachdb/swiss"

type swissMap[K comparable, V any] struct {
	m *swiss.Map[K, V]
}

func (s swissMap[K, V]) Len() int          { return s.m.Len() }
func (s swissMap[K, V]) Get(k K) (V, bool) { return s.m.Get(k) }
func (s swissMap[K, V]) Put(k K, v V)      { s.m.Put(k, v) }
func (s swissMap[K, V]) Delete(k K)        { s.m.Delete(k) }

func (s swissMap[K, V]) Keys() []K {
	keys := make([]K, 0, s.m.Len())
	s.m.All(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// SwissMap is Map for a swiss.Map.
func SwissMap[K comparable, V any](m *swiss.Map[K, V], keys KeyCodec[K], elem func(*V) Prober, newValue func() V) MapProbe[K, V] {
	return MapProbe[K, V]{m: swissMap[K, V]{m}, keys: keys, elem: elem, newValue: newValue}
}
