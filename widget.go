package probe

import (
	"log/slog"
	"os"

	"github.com/go-theft-auto/probe/gui"
)

// probeLogger is the logger for probe tree debugging.
var probeLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: probeLogLevel()}))

func probeLogLevel() slog.Level {
	if os.Getenv("PROBE_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Probe shows an editable tree for a value.
//
// Values without children are drawn as their plain editor. Anything else
// gets a framed header row with a collapse arrow, and when open a table of
// label and value columns, one row per child, nested rows indented.
//
//	probe.New("player", &player).Show(surface)
type Probe struct {
	label  string
	value  Prober
	style  Style
	idSalt any
}

// ProbeOption configures a Probe.
type ProbeOption func(*Probe)

// WithStyle sets the style used by every editor in the tree.
func WithStyle(style Style) ProbeOption {
	return func(p *Probe) { p.style = style }
}

// WithIDSalt scopes the tree's persisted state by salt instead of the label.
// Use it to show two trees with the same label side by side.
func WithIDSalt(salt any) ProbeOption {
	return func(p *Probe) { p.idSalt = salt }
}

// New creates a probe for value with a root label.
func New(label string, value Prober, opts ...ProbeOption) *Probe {
	p := &Probe{
		label:  label,
		value:  value,
		style:  DefaultStyle(),
		idSalt: label,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Show draws the tree at the cursor of s and reports whether any value in
// it changed.
func Show(s Surface, label string, value Prober, opts ...ProbeOption) Response {
	return New(label, value, opts...).Show(s)
}

// RootID returns the ID scope the tree of a probe shown on s keeps its state
// under.
func RootID(s Surface, salt any) ID {
	return s.MakeID(salt)
}

// Show draws the tree.
func (p *Probe) Show(s Surface) Response {
	if !HasInner(p.value) {
		return p.value.Probe(s, &p.style)
	}

	var resp Response
	used := s.Child(s.Cursor(), RootID(s, p.idSalt), s.ClipRect(), func(c Surface) {
		h := loadHeader(c, c.MakeID("probe_header"))
		h.setHasInner(true)

		c.Frame(func(f Surface) {
			f.Horizontal(func(row Surface) {
				h.collapseButton(row)
				row.Label(p.label)
				resp = resp.Or(p.value.Probe(row, &p.style))
			})
		})

		if h.openness > 0 && HasInner(p.value) {
			layout := loadLayout(c, c.MakeID("probe_layout"), &p.style)
			resp = resp.Or(showTable(p.value, h, layout, 0, c, &p.style, "table"))
			layout.store(c)
		}
		h.store(c)
	})
	s.AdvanceCursorAfter(used)

	if resp.Changed {
		probeLogger.Debug("probe changed", "label", p.label)
	}
	return resp
}

// showHeader draws one child row and returns its header.
//
// The arrow follows the stored HasInner, so a child that just gained
// children gets its arrow in the next frame and one that lost them loses it
// in the next frame.
func showHeader(label string, value Prober, layout *Layout, indent int, s Surface, style *Style, idx int) (*header, Response) {
	id := s.MakeID(idx)
	h := loadHeader(s, id)
	arrow := h.state.HasInner
	h.setHasInner(HasInner(value))

	var resp Response
	s.Horizontal(func(row Surface) {
		layout.InnerLabelUI(indent, id.With("label"), row, func(l Surface) {
			if arrow {
				h.collapseButton(l)
			}
			l.Label(label)
		})
		layout.InnerValueUI(id.With("value"), row, func(v Surface) {
			resp = value.Probe(v, style)
		})
	})
	return h, resp
}

// showTable draws the children of value below the current row, sliding in
// from under it while h opens.
func showTable(value Prober, h *header, layout *Layout, indent int, s Surface, style *Style, salt any) Response {
	cursor := s.Cursor()
	tableRect := gui.RectFromMinMax(
		Vec2{X: cursor.X, Y: cursor.Y - h.bodyShift()},
		s.MaxRect().Max(),
	)
	clip := s.ClipRect().Intersect(gui.EverythingBelow(s.MinRect().Max().Y))

	var resp Response
	used := s.Child(tableRect, s.MakeID(salt), clip, func(t Surface) {
		idx := 0
		IterateInner(value, t, func(label string, _ Surface, child Prober) {
			ch, r := showHeader(label, child, layout, indent+1, t, style, idx)
			resp = resp.Or(r)
			if ch.state.HasInner && ch.openness > 0 {
				resp = resp.Or(showTable(child, ch, layout, indent+1, t, style, idx))
			}
			ch.store(t)
			idx++
		})
	})

	s.AdvanceCursorAfter(used)
	h.setBodyHeight(s.Cursor().Y - tableRect.Y)
	return resp
}
