package gui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence.
//
// IDs are derived from a path of salts starting at the root, so the same
// logical position yields the same ID every frame no matter how many widgets
// were drawn before it.
type ID uint64

// With derives a child ID from the receiver and a salt.
// Strings and integers are hashed by value; anything else through fmt.
func (id ID) With(salt any) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])

	switch s := salt.(type) {
	case string:
		h.Write([]byte{'s'})
		h.Write([]byte(s))
	case int:
		h.Write([]byte{'i'})
		binary.LittleEndian.PutUint64(buf[:], uint64(s))
		h.Write(buf[:])
	case ID:
		h.Write([]byte{'d'})
		binary.LittleEndian.PutUint64(buf[:], uint64(s))
		h.Write(buf[:])
	default:
		h.Write([]byte{'f'})
		fmt.Fprint(h, salt)
	}
	return ID(h.Sum64())
}

// GetID generates an ID for a label relative to the current parent.
func (ctx *Context) GetID(label string) ID {
	return ctx.CurrentID().With(label)
}

// GetIDFromInt generates an ID for an index relative to the current parent.
// Useful for items in arrays/slices.
func (ctx *Context) GetIDFromInt(n int) ID {
	return ctx.CurrentID().With(n)
}

// PushID pushes an already derived ID as the parent for nested widgets.
func (ctx *Context) PushID(id ID) {
	ctx.idStack = append(ctx.idStack, id)
}

// PushIDLabel derives an ID from label and pushes it.
func (ctx *Context) PushIDLabel(label string) {
	ctx.PushID(ctx.GetID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
