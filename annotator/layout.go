// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"spanlay/span"
	"spanlay/surface"
)

// baseLineHeight is the default line height of unstacked text; each
// additional stacking level adds one entities gap on top of the
// configured base.
const baseLineHeight = 32

// Position is the computed placement of one span's label widget, in
// the host container's own coordinate space. Top/Left anchor the label
// at the span's first character; TopEnd/Right anchor its trailing edge
// at the span's last character, so asymmetric label shapes can follow
// a span that wraps across lines. Positions are derived state,
// recomputed on every pass and never persisted.
type Position struct {
	Top    float32
	Left   float32
	Width  float32
	TopEnd float32
	Right  float32
}

// WidgetFactory turns a committed span and its computed position into
// a renderable label widget. The three closures toggle hover, remove
// the span, and reassign its entity; each runs a full recompute. The
// engine owns insertion and removal of the returned widget, not its
// internal behavior.
type WidgetFactory func(sp *span.Span, pos Position, hover func(bool), remove func(), replace func(*span.Entity)) surface.Widget

// layout is the full per-pass re-render: it clears the container's
// widgets and recreates one positioned widget per span of the bound
// host node. Geometry is invalidated by causes the engine cannot
// cheaply diff against (reflow, scroll, resize), so correctness wins
// over incremental updates.
func (en *Engine) layout() {
	en.node.ClearWidgets()
	// spans of other host nodes are invisible to this pass: they are
	// neither laid out nor counted toward overlap stacking
	var spans []*span.Span
	for _, sp := range en.store.Spans() {
		if sp.Node.ID() == en.node.ID() {
			spans = append(spans, sp)
		}
	}
	vscroll := en.surf.ViewportScroll()
	crect := en.node.BoundingRect()
	cscroll := en.node.Scroll()
	// start from the configured base; overlap stacking below only ever
	// grows it within the pass
	overlapLevels := 0
	en.config.LineHeight = en.opts.LineHeight
	en.node.SetLineHeight(en.config.LineHeight)
	for _, sp := range spans {
		start := en.geo.CharRect(en.node, sp.From)
		end := en.geo.CharRect(en.node, sp.To-1)
		full := en.geo.RangeRect(en.node, sp.Range())

		pos := Position{
			Top:    start.Min.Y + vscroll.Y,
			Left:   start.Min.X + vscroll.X,
			Width:  full.Width(),
			TopEnd: end.Min.Y + vscroll.Y,
			Right:  end.Max.X + vscroll.X,
		}

		ov := span.Overlaps(sp, spans)
		if len(ov) > overlapLevels {
			overlapLevels = len(ov)
		}
		if len(ov) > 0 {
			idx := spanIndex(ov, sp)
			shift := float32(idx) * en.opts.EntitiesGap
			pos.Top += shift
			pos.TopEnd += shift
			// grows monotonically within the pass as later spans
			// reveal deeper overlaps
			en.config.LineHeight = en.opts.LineHeight + en.opts.EntitiesGap*float32(overlapLevels-1)
			en.node.SetLineHeight(en.config.LineHeight)
		}

		// translate into the container's local coordinate space
		pos.Top += cscroll.Y - crect.Min.Y
		pos.TopEnd += cscroll.Y - crect.Min.Y
		pos.Left += cscroll.X - crect.Min.X
		pos.Right += cscroll.X - crect.Min.X

		w := en.factory(sp, pos,
			func(hovered bool) { en.SetHover(sp, hovered) },
			func() { en.Remove(sp) },
			func(e *span.Entity) { en.ReplaceEntity(sp, e) },
		)
		en.node.AppendWidget(w)
	}
}

// spanIndex returns the index of the span within its overlap set,
// which is its stacking level.
func spanIndex(ov []*span.Span, sp *span.Span) int {
	for i, o := range ov {
		if o.ID == sp.ID {
			return i
		}
	}
	return 0
}
