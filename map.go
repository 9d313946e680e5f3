package probe

import (
	"cmp"
	"encoding"
	"fmt"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-theft-auto/probe/gui"
	"golang.org/x/exp/constraints"
)

// KeyCodec shows map keys as text and parses typed keys back.
type KeyCodec[K comparable] struct {
	Format func(K) string
	Parse  func(string) (K, error)
	// Compare orders rows. Nil compares the formatted keys.
	Compare func(a, b K) int
}

// StringKeys is the codec for string keys.
func StringKeys() KeyCodec[string] {
	return KeyCodec[string]{
		Format:  func(k string) string { return k },
		Parse:   func(s string) (string, error) { return s, nil },
		Compare: cmp.Compare[string],
	}
}

// IntKeys is the codec for integer keys in base 10.
func IntKeys[K constraints.Integer]() KeyCodec[K] {
	var zero K
	unsigned := zero-1 > zero
	return KeyCodec[K]{
		Format: func(k K) string {
			if unsigned {
				return strconv.FormatUint(uint64(k), 10)
			}
			return strconv.FormatInt(int64(k), 10)
		},
		Parse: func(s string) (K, error) {
			if unsigned {
				u, err := strconv.ParseUint(s, 10, 64)
				if err != nil || uint64(K(u)) != u {
					return 0, errors.Newf("%q is not a valid key", s)
				}
				return K(u), nil
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil || int64(K(n)) != n {
				return 0, errors.Newf("%q is not a valid key", s)
			}
			return K(n), nil
		},
		Compare: cmp.Compare[K],
	}
}

// TextKeys is the codec for keys that marshal themselves to text.
func TextKeys[K interface {
	comparable
	encoding.TextMarshaler
}, PK interface {
	*K
	encoding.TextUnmarshaler
}]() KeyCodec[K] {
	return KeyCodec[K]{
		Format: func(k K) string {
			b, err := k.MarshalText()
			if err != nil {
				return fmt.Sprintf("%v", k)
			}
			return string(b)
		},
		Parse: func(s string) (K, error) {
			var k K
			if err := PK(&k).UnmarshalText([]byte(s)); err != nil {
				return k, errors.Wrapf(err, "parsing key %q", s)
			}
			return k, nil
		},
	}
}

func (c KeyCodec[K]) sortKeys(keys []K) {
	if c.Compare != nil {
		slices.SortFunc(keys, c.Compare)
		return
	}
	slices.SortFunc(keys, func(a, b K) int { return cmp.Compare(c.Format(a), c.Format(b)) })
}

// assoc is the part of a map MapProbe needs.
type assoc[K comparable, V any] interface {
	Len() int
	Get(k K) (V, bool)
	Put(k K, v V)
	Delete(k K)
	Keys() []K
}

type goMap[K comparable, V any] struct {
	m *map[K]V
}

func (g goMap[K, V]) Len() int { return len(*g.m) }

func (g goMap[K, V]) Get(k K) (V, bool) {
	v, ok := (*g.m)[k]
	return v, ok
}

func (g goMap[K, V]) Put(k K, v V) {
	if *g.m == nil {
		*g.m = make(map[K]V)
	}
	(*g.m)[k] = v
}

func (g goMap[K, V]) Delete(k K) { delete(*g.m, k) }

func (g goMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(*g.m))
	for k := range *g.m {
		keys = append(keys, k)
	}
	return keys
}

// MapState is the persisted new-key field of a map editor.
type MapState struct {
	NewKey string
	Error  bool
}

// MapProbe edits a map. Unless frozen, the map's own row has a field for a
// new key and a button inserting it, and every entry has a remove button.
// A key that does not parse or already exists marks the field as errored
// and leaves the map alone.
type MapProbe[K comparable, V any] struct {
	m        assoc[K, V]
	keys     KeyCodec[K]
	elem     func(*V) Prober
	newValue func() V
	frozen   bool
}

// Map edits m. newValue makes the value of inserted keys; nil inserts the
// zero value.
func Map[K comparable, V any](m *map[K]V, keys KeyCodec[K], elem func(*V) Prober, newValue func() V) MapProbe[K, V] {
	return MapProbe[K, V]{m: goMap[K, V]{m}, keys: keys, elem: elem, newValue: newValue}
}

// FrozenMap edits the values of m without inserting or removing keys.
func FrozenMap[K comparable, V any](m map[K]V, keys KeyCodec[K], elem func(*V) Prober) MapProbe[K, V] {
	return MapProbe[K, V]{m: goMap[K, V]{&m}, keys: keys, elem: elem, frozen: true}
}

// Frozen returns a copy without the new-key field and remove buttons.
func (p MapProbe[K, V]) Frozen() MapProbe[K, V] {
	p.frozen = true
	return p
}

func (p MapProbe[K, V]) Probe(s Surface, style *Style) Response {
	count := fmt.Sprintf("[%d]", p.m.Len())
	if p.frozen {
		s.WeakLabel(count)
		return Response{}
	}

	id := s.MakeID("map_probe")
	state := gui.Load(s.Memory(), id, MapState{})
	before := state
	var resp Response
	s.Horizontal(func(row Surface) {
		row.WeakLabel(count)
		if row.SmallButton(style.AddButtonText()) {
			resp.Changed = p.insert(&state)
		}
		opts := TextEditOptions{Error: state.Error, Hint: "new key"}
		if row.TextEdit(id.With("new_key"), &state.NewKey, opts) {
			state.Error = false
		}
	})
	if state != before {
		s.Memory().Set(id, state)
		s.RequestRedraw()
	}
	return resp
}

// insert adds the key typed into the new-key field and reports whether it
// did.
func (p MapProbe[K, V]) insert(state *MapState) bool {
	k, err := p.keys.Parse(state.NewKey)
	if err != nil {
		probeLogger.Debug("rejected map key", "key", state.NewKey, "err", err)
		state.Error = true
		return false
	}
	if _, ok := p.m.Get(k); ok {
		state.Error = true
		return false
	}
	var v V
	if p.newValue != nil {
		v = p.newValue()
	}
	p.m.Put(k, v)
	state.NewKey = ""
	state.Error = false
	return true
}

func (p MapProbe[K, V]) HasInner() bool { return p.m.Len() > 0 }

func (p MapProbe[K, V]) IterateInner(s Surface, visit Visit) {
	keys := p.m.Keys()
	p.keys.sortKeys(keys)

	var removed []K
	for _, k := range keys {
		v, _ := p.m.Get(k)
		var child Prober = p.elem(&v)
		remove := false
		if !p.frozen {
			child = deleteMe{value: child, remove: &remove}
		}
		visit(p.keys.Format(k), s, child)
		if remove {
			removed = append(removed, k)
			continue
		}
		p.m.Put(k, v)
	}
	for _, k := range removed {
		p.m.Delete(k)
	}
}

// LoadMapState returns the new-key field state of the map editor drawn in
// the ID scope of a value column.
func LoadMapState(store StateStore, scope ID) MapState {
	return gui.Load(store, scope.With("map_probe"), MapState{})
}
