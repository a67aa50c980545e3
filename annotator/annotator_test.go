// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spanlay/geom"
	"spanlay/span"
	"spanlay/surface"
	"spanlay/surface/sim"
)

var (
	entityX = &span.Entity{ID: "x", Name: "Person"}
	entityY = &span.Entity{ID: "y", Name: "Place"}
)

// testWidget records the factory arguments so tests can inspect the
// computed positions and drive the widget closures.
type testWidget struct {
	sp      *span.Span
	pos     Position
	hover   func(bool)
	remove  func()
	replace func(*span.Entity)
}

func testFactory(sp *span.Span, pos Position, hover func(bool), remove func(), replace func(*span.Entity)) surface.Widget {
	return &testWidget{sp, pos, hover, remove, replace}
}

// fixture is a mounted engine over a simulated surface: a host node at
// (100, 200) inside a scrollable ancestor, with an 8x16 character
// cell grid.
type fixture struct {
	surf     *sim.Surface
	host     *sim.Node
	inner    *sim.Node
	scroller *sim.Node
	store    *span.Store
	en       *Engine
}

func newFixture(t *testing.T, text string) *fixture {
	t.Helper()
	f := &fixture{}
	f.surf = sim.NewSurface()
	f.host = sim.NewNode("host", text)
	f.host.SetRect(geom.R(100, 200, 740, 400))
	f.inner = sim.NewNode("inner", "")
	f.scroller = sim.NewNode("scroller", "")
	f.scroller.SetScrollMetrics(1000, 300)
	f.host.SetParent(f.inner)
	f.inner.SetParent(f.scroller)
	f.surf.AddNode(f.host)
	f.store = span.NewStore()
	f.en = New(f.surf, f.surf, f.store, testFactory)
	return f
}

func (f *fixture) widgets(t *testing.T) []*testWidget {
	t.Helper()
	var ws []*testWidget
	for _, w := range f.host.Widgets() {
		tw, ok := w.(*testWidget)
		require.True(t, ok)
		ws = append(ws, tw)
	}
	return ws
}

func (f *fixture) positions(t *testing.T) []Position {
	t.Helper()
	var ps []Position
	for _, w := range f.widgets(t) {
		ps = append(ps, w.pos)
	}
	return ps
}

// overlapSpans is the canonical scenario: A=[0,5] and B=[3,8]
// intersect, C=[10,12] is disjoint from both.
func overlapSpans(n span.TextNode) []*span.Span {
	return []*span.Span{
		{ID: "a", From: 0, To: 5, Entity: entityX, Node: n},
		{ID: "b", From: 3, To: 8, Entity: entityY, Node: n},
		{ID: "c", From: 10, To: 12, Entity: entityX, Node: n},
	}
}

func TestMountMissingNode(t *testing.T) {
	f := newFixture(t, "some text")
	err := f.en.Mount("nope", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestMountNoHighlighter(t *testing.T) {
	f := newFixture(t, "some text")
	f.surf.SetHighlighter(nil)
	err := f.en.Mount("host", nil)
	assert.ErrorIs(t, err, surface.ErrNoHighlighter)
}

func TestMountLayout(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	ws := f.widgets(t)
	require.Len(t, ws, 3)

	// A and B stack: A at level 0, B at level 1; C is unstacked.
	// Cell grid: 8px wide, 16px tall, host origin (100, 200), so
	// container-local x is 8*offset and unstacked y is 0.
	a, b, c := ws[0].pos, ws[1].pos, ws[2].pos
	assert.Equal(t, Position{Top: 0, Left: 0, Width: 40, TopEnd: 0, Right: 40}, a)
	assert.Equal(t, Position{Top: 12, Left: 24, Width: 40, TopEnd: 12, Right: 64}, b)
	assert.Equal(t, Position{Top: 0, Left: 80, Width: 16, TopEnd: 0, Right: 96}, c)

	// the deepest stack has two levels, so the line height grows by
	// one gap
	assert.Equal(t, float32(44), f.host.LineHeight())

	hl := f.surf.Highlights()
	assert.Equal(t, []string{"hl-x", "hl-y"}, hl.Keys())
	assert.Equal(t, []span.Range{{From: 0, To: 5}, {From: 10, To: 12}}, hl.Ranges("hl-x"))
	assert.Equal(t, []span.Range{{From: 3, To: 8}}, hl.Ranges("hl-y"))
}

func TestDisjointSpansUnstacked(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	spans := []*span.Span{
		{ID: "a", From: 0, To: 3, Entity: entityX, Node: f.host},
		{ID: "b", From: 4, To: 9, Entity: entityY, Node: f.host},
		{ID: "c", From: 16, To: 19, Entity: entityX, Node: f.host},
	}
	require.NoError(t, f.en.Mount("host", spans))

	for _, p := range f.positions(t) {
		assert.Equal(t, float32(0), p.Top)
		assert.Equal(t, float32(0), p.TopEnd)
	}
	assert.Equal(t, float32(baseLineHeight), f.host.LineHeight())
}

func TestLayoutSkipsOtherNodes(t *testing.T) {
	f := newFixture(t, "the quick brown fox")
	other := sim.NewNode("other", "unrelated text")
	spans := []*span.Span{
		{ID: "a", From: 0, To: 3, Entity: entityX, Node: f.host},
		{ID: "b", From: 0, To: 3, Entity: entityY, Node: other},
	}
	require.NoError(t, f.en.Mount("host", spans))
	require.Len(t, f.widgets(t), 1)
	assert.Equal(t, "a", f.widgets(t)[0].sp.ID)
}

func TestForeignSpansDoNotStack(t *testing.T) {
	f := newFixture(t, "the quick brown fox")
	other := sim.NewNode("other", "the quick brown fox")
	// the foreign span intersects A by offsets but lives on another
	// host, so A must stay unstacked and the line height at its base
	spans := []*span.Span{
		{ID: "a", From: 0, To: 5, Entity: entityX, Node: f.host},
		{ID: "b", From: 3, To: 8, Entity: entityY, Node: other},
	}
	require.NoError(t, f.en.Mount("host", spans))

	ws := f.widgets(t)
	require.Len(t, ws, 1)
	assert.Equal(t, float32(0), ws[0].pos.Top)
	assert.Equal(t, float32(baseLineHeight), f.host.LineHeight())
}

func TestLineHeightAppliedWithoutSpans(t *testing.T) {
	f := newFixture(t, "the quick brown fox")
	require.NoError(t, f.en.Mount("host", nil))
	assert.Equal(t, float32(baseLineHeight), f.host.LineHeight())
}

func TestLineHeightRevertsWhenStackEmpties(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))
	require.Equal(t, float32(44), f.host.LineHeight())

	f.en.ClearAllHighlights()
	assert.Equal(t, float32(baseLineHeight), f.host.LineHeight())
}

func TestSetLineHeightRaisesBase(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	f.en.SetLineHeight(40)
	// two stacking levels on a 40px base
	assert.Equal(t, float32(52), f.host.LineHeight())
}

func TestLayoutIdempotent(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	first := f.positions(t)
	firstKeys := append([]string{}, f.surf.Highlights().Keys()...)
	firstX := append([]span.Range{}, f.surf.Highlights().Ranges("hl-x")...)

	f.en.Refresh()

	assert.Equal(t, first, f.positions(t))
	assert.Equal(t, firstKeys, f.surf.Highlights().Keys())
	assert.Equal(t, firstX, f.surf.Highlights().Ranges("hl-x"))
}

func TestRemoveAbsentSpanNoop(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	before := f.positions(t)
	keys := append([]string{}, f.surf.Highlights().Keys()...)

	f.en.Remove(&span.Span{ID: "zz", From: 0, To: 1, Entity: entityX, Node: f.host})

	assert.Equal(t, before, f.positions(t))
	assert.Equal(t, keys, f.surf.Highlights().Keys())
}

func TestRemoveViaWidget(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	f.widgets(t)[1].remove()

	ws := f.widgets(t)
	require.Len(t, ws, 2)
	assert.Equal(t, "a", ws[0].sp.ID)
	assert.Equal(t, "c", ws[1].sp.ID)
	// with B gone nothing overlaps, so A returns to level 0
	assert.Equal(t, float32(0), ws[0].pos.Top)
	assert.Equal(t, []string{"hl-x"}, f.surf.Highlights().Keys())
}

func TestReplaceEntityViaWidget(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	f.widgets(t)[2].replace(entityY)

	hl := f.surf.Highlights()
	assert.Equal(t, []span.Range{{From: 0, To: 5}}, hl.Ranges("hl-x"))
	assert.Equal(t, []span.Range{{From: 3, To: 8}, {From: 10, To: 12}}, hl.Ranges("hl-y"))
	// offsets and order are untouched by relabeling
	assert.Equal(t, "c", f.store.Spans()[2].ID)
	assert.Equal(t, 10, f.store.Spans()[2].From)
}

func TestHoverRoundTrip(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	hl := f.surf.Highlights()
	keys := append([]string{}, hl.Keys()...)
	xRanges := append([]span.Range{}, hl.Ranges("hl-x")...)

	a := f.store.Spans()[0]
	f.en.SetHover(a, true)
	assert.Equal(t, []string{"hl-x-hover", "hl-y", "hl-x"}, hl.Keys())
	assert.Equal(t, []span.Range{{From: 0, To: 5}}, hl.Ranges("hl-x-hover"))
	assert.Equal(t, []span.Range{{From: 10, To: 12}}, hl.Ranges("hl-x"))

	f.en.SetHover(a, false)
	assert.Equal(t, keys, hl.Keys())
	assert.Equal(t, xRanges, hl.Ranges("hl-x"))
	assert.Empty(t, hl.Ranges("hl-x-hover"))
}

func TestHoverViaWidget(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	f.widgets(t)[0].hover(true)
	assert.Contains(t, f.surf.Highlights().Keys(), "hl-x-hover")
}

func TestClearAllHighlights(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	f.en.ClearAllHighlights()

	assert.Empty(t, f.surf.Highlights().Keys())
	assert.Empty(t, f.host.Widgets())
	assert.Equal(t, 0, f.store.Len())
}

func TestUnmount(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	require.NoError(t, f.en.Mount("host", overlapSpans(f.host)))

	f.en.Unmount()

	assert.Empty(t, f.host.Widgets())
	assert.Empty(t, f.surf.Highlights().Keys())
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.host.ListenerCount(surface.Click))
	assert.Equal(t, 0, f.host.ListenerCount(surface.Resize))
	assert.Equal(t, 0, f.scroller.ListenerCount(surface.Scroll))

	// unmounting twice is a no-op
	f.en.Unmount()
}

func TestViewportAndContainerScrollOffsets(t *testing.T) {
	f := newFixture(t, "the quick brown fox jumps")
	f.surf.SetViewportScroll(geom.Vec2(0, 50))
	f.host.SetScroll(geom.Vec2(0, 30))
	spans := []*span.Span{{ID: "a", From: 0, To: 3, Entity: entityX, Node: f.host}}
	require.NoError(t, f.en.Mount("host", spans))

	// top = char top (200) + viewport scroll (50) + container scroll
	// (30) - container origin (200)
	assert.Equal(t, float32(80), f.positions(t)[0].Top)
}
