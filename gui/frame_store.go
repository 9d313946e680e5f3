package gui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// GUI.Begin calls NextFrame on its store when it implements this interface.
type Cleanable interface {
	NextFrame()
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a typed state store that forgets entries nobody touched for
// a number of frames. It is owned by whoever creates it (usually one per UI
// session); there is no package-level registry.
//
// FrameStore[any] satisfies StateStore:
//
//	store := gui.NewFrameStore[any](600)
//	ui := gui.New(renderer, gui.WithStateStore(store))
type FrameStore[T any] struct {
	mu     sync.RWMutex
	states map[ID]*stateEntry[T]
	frame  uint64
	ttl    uint64
}

// NewFrameStore creates a store whose entries expire after ttl frames
// without a Get or Set. A ttl of 0 keeps entries for exactly one frame.
func NewFrameStore[T any](ttl uint64) *FrameStore[T] {
	return &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
		ttl:    ttl,
	}
}

// Get retrieves state for id and marks it as used this frame.
func (s *FrameStore[T]) Get(id ID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		var zero T
		return zero, false
	}
	entry.lastFrame = s.frame
	return entry.value, true
}

// Set creates or updates the entry and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = s.frame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: s.frame}
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// NextFrame advances the store's frame counter and drops stale entries.
func (s *FrameStore[T]) NextFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame++
	if s.frame <= s.ttl {
		return
	}
	threshold := s.frame - s.ttl - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}
