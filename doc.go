// Package probe draws editable trees of Go values in the gui toolkit.
//
// A value becomes editable by implementing Prober. Values with children
// implement Composite as well and are shown as a collapsible header with a
// table of label and value columns underneath:
//
//	surface := probe.NewSurface(ctx)
//	if probe.Show(surface, "player", &player).Changed {
//	    save(player)
//	}
//
// # Leaves
//
// The package ships editors for common shapes: Number, Bool, Toggle,
// String, Multiline, the color family, Slice, Map, SwissMap, Option,
// Shared, Enum, Angle, With, Vec2Of, RectOf and GUIStyle. Each takes a
// pointer to the value it edits and is cheap to build every frame.
//
// # Generated glue
//
// For structs and enums, cmd/probegen writes the Prober methods:
//
//	//go:generate go run github.com/go-theft-auto/probe/cmd/probegen
//
//	//probe:generate
//	type Player struct {
//	    Name   string
//	    Health int     `probe:"range=0..100"`
//	    Facing float64 `probe:"as=angle"`
//	}
//
// # State
//
// Open rows, the label column width and similar state live in the host's
// StateStore under IDs derived from the path to each row, never in the
// values. Everything is single pass: a click or a measurement in one frame
// takes effect in the next, and a redraw is requested whenever state
// changes.
//
// # Debugging
//
// Set PROBE_DEBUG=1 to log changes and rejected input.
package probe
