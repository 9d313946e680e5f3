package probe

import "sync"

// SharedProbe edits a value guarded by a lock that other goroutines write
// to. It edits a copy taken under the read lock and writes the copy back
// under the write lock when it was edited or no longer matches the live
// value. No lock is held while the editor runs.
//
// The copy is shallow, so slices and maps inside T are shared with the live
// value.
type SharedProbe[T any] struct {
	mu    *sync.RWMutex
	value *T
	elem  func(*T) Prober
	equal func(a, b *T) bool
}

// Shared edits a comparable value guarded by mu.
func Shared[T comparable](mu *sync.RWMutex, v *T, elem func(*T) Prober) SharedProbe[T] {
	return SharedFunc(mu, v, elem, func(a, b *T) bool { return *a == *b })
}

// SharedFunc edits a value guarded by mu, comparing copies with equal.
func SharedFunc[T any](mu *sync.RWMutex, v *T, elem func(*T) Prober, equal func(a, b *T) bool) SharedProbe[T] {
	return SharedProbe[T]{mu: mu, value: v, elem: elem, equal: equal}
}

func (p SharedProbe[T]) snapshot() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return *p.value
}

func (p SharedProbe[T]) diverged(snap *T) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.equal(snap, p.value)
}

func (p SharedProbe[T]) writeBack(snap T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.value = snap
}

func (p SharedProbe[T]) Probe(s Surface, style *Style) Response {
	snap := p.snapshot()
	resp := p.elem(&snap).Probe(s, style)
	if resp.Changed || p.diverged(&snap) {
		p.writeBack(snap)
	}
	return resp
}

func (p SharedProbe[T]) HasInner() bool {
	snap := p.snapshot()
	return HasInner(p.elem(&snap))
}

func (p SharedProbe[T]) IterateInner(s Surface, visit Visit) {
	snap := p.snapshot()
	IterateInner(p.elem(&snap), s, visit)
	if p.diverged(&snap) {
		p.writeBack(snap)
	}
}
