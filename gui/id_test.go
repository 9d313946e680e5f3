package gui_test

import (
	"testing"

	"github.com/go-theft-auto/probe/gui"
	"github.com/stretchr/testify/assert"
)

func TestIDWithIsDeterministic(t *testing.T) {
	root := gui.ID(0).With("root")
	assert.Equal(t, root.With("a").With(3), gui.ID(0).With("root").With("a").With(3))
	assert.NotEqual(t, root.With("a"), root.With("b"))
	assert.NotEqual(t, root.With(1), root.With(2))
}

func TestIDWithSaltKinds(t *testing.T) {
	root := gui.ID(7)
	// The same digits as string, int and ID are different salts.
	assert.NotEqual(t, root.With("1"), root.With(1))
	assert.NotEqual(t, root.With(1), root.With(gui.ID(1)))
	// Other types hash through their printed form.
	assert.Equal(t, root.With(struct{ A int }{1}), root.With(struct{ A int }{1}))
	assert.NotEqual(t, root.With(1.5), root.With(2.5))
}

func TestIDsDoNotDependOnDrawOrder(t *testing.T) {
	ctx := gui.NewContext()
	ctx.BeginFrame(displaySize, 0.016)
	first := ctx.GetID("button")
	ctx.Button("other")
	again := ctx.GetID("button")
	ctx.EndFrame()

	assert.Equal(t, first, again, "same label in the same scope resolves to the same ID")
}

func TestPushPopID(t *testing.T) {
	ctx := gui.NewContext()
	ctx.BeginFrame(displaySize, 0.016)

	ctx.PushIDLabel("section1")
	id1 := ctx.GetID("item")
	ctx.PopID()

	ctx.PushIDLabel("section2")
	id2 := ctx.GetID("item")
	ctx.PopID()

	assert.NotEqual(t, id1, id2, "same label in different sections")
	assert.Equal(t, gui.ID(0), ctx.CurrentID())

	ctx.PushID(id1)
	assert.Equal(t, id1.With(4), ctx.GetIDFromInt(4))
	ctx.PopID()
	ctx.PopID() // popping an empty stack is harmless
	ctx.EndFrame()
}
