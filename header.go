package probe

import (
	"math"

	"github.com/go-theft-auto/probe/gui"
)

// HeaderState is the persisted part of a collapsible row.
type HeaderState struct {
	HasInner   bool
	Open       bool
	BodyHeight float32
}

// bodyHeightEpsilon is how much the measured body has to change before the
// new height is stored.
const bodyHeightEpsilon = 0.001

// header is the per-frame view of a row's HeaderState.
type header struct {
	id       ID
	state    HeaderState
	openness float32
	dirty    bool
}

// LoadHeaderState returns the header state stored under id, or the zero
// state.
func LoadHeaderState(store StateStore, id ID) HeaderState {
	return gui.Load(store, id, HeaderState{})
}

func loadHeader(s Surface, id ID) *header {
	state := LoadHeaderState(s.Memory(), id)
	return &header{
		id:       id,
		state:    state,
		openness: s.AnimateBool(id, state.Open),
	}
}

func (h *header) toggle() {
	h.state.Open = !h.state.Open
	h.dirty = true
}

func (h *header) setHasInner(hasInner bool) {
	if h.state.HasInner != hasInner {
		h.state.HasInner = hasInner
		h.dirty = true
	}
}

func (h *header) setBodyHeight(height float32) {
	if math.Abs(float64(h.state.BodyHeight-height)) > bodyHeightEpsilon {
		h.state.BodyHeight = height
		h.dirty = true
	}
}

// bodyShift is how far the body is pulled up under the header while it
// slides open or closed.
func (h *header) bodyShift() float32 {
	return (1 - h.openness) * h.state.BodyHeight
}

// collapseButton draws the arrow and toggles on click.
func (h *header) collapseButton(s Surface) {
	if s.CollapseIcon(h.id.With("collapse"), h.openness) {
		h.toggle()
	}
}

// store writes the state back if anything changed. The change is seen by
// loadHeader from the next frame on.
func (h *header) store(s Surface) {
	if !h.dirty {
		return
	}
	s.Memory().Set(h.id, h.state)
	s.RequestRedraw()
	h.dirty = false
}
