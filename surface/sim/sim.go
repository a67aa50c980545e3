// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim provides an in-memory implementation of the
// [spanlay/surface] capability interfaces, with a synthetic
// character-cell geometry provider. It backs the engine tests and the
// demo command, so layout behavior can be exercised without a real
// rendering surface.
package sim

import (
	"github.com/google/uuid"

	"spanlay/geom"
	"spanlay/span"
	"spanlay/surface"
)

// Node is an in-memory surface node. Construct with [NewNode] and
// configure its rectangle and scroll metrics with the setters; events
// are delivered by calling [Node.Emit].
type Node struct {
	id           string
	text         []rune
	parent       *Node
	rect         geom.Rect
	scroll       geom.Vector2
	scrollHeight float32
	clientHeight float32
	lineHeight   float32
	widgets      []surface.Widget
	listeners    surface.Listeners
}

// NewNode returns a new [Node] with the given identifier and text
// content. An empty identifier is replaced with a generated one.
func NewNode(id, text string) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	return &Node{id: id, text: []rune(text)}
}

func (n *Node) ID() string   { return n.id }
func (n *Node) Text() string { return string(n.text) }

func (n *Node) Parent() surface.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// SetParent sets the node's parent back reference.
func (n *Node) SetParent(p *Node) { n.parent = p }

func (n *Node) BoundingRect() geom.Rect { return n.rect }

// SetRect sets the node's rectangle in viewport coordinates.
func (n *Node) SetRect(r geom.Rect) { n.rect = r }

func (n *Node) Scroll() geom.Vector2 { return n.scroll }

// SetScroll sets the node's internal scroll offset.
func (n *Node) SetScroll(v geom.Vector2) { n.scroll = v }

func (n *Node) ScrollHeight() float32 { return n.scrollHeight }
func (n *Node) ClientHeight() float32 { return n.clientHeight }

// SetScrollMetrics sets the node's scrollable content height and
// visible height; the node is a scroll source when the first exceeds
// the second.
func (n *Node) SetScrollMetrics(scrollHeight, clientHeight float32) {
	n.scrollHeight = scrollHeight
	n.clientHeight = clientHeight
}

func (n *Node) SetLineHeight(px float32) { n.lineHeight = px }

// LineHeight returns the last line height pushed to the node.
func (n *Node) LineHeight() float32 { return n.lineHeight }

func (n *Node) AppendWidget(w surface.Widget) { n.widgets = append(n.widgets, w) }
func (n *Node) ClearWidgets()                 { n.widgets = nil }
func (n *Node) Widgets() []surface.Widget     { return n.widgets }

func (n *Node) On(t surface.EventType, f func()) surface.Handle {
	return n.listeners.Add(t, f)
}

func (n *Node) Off(t surface.EventType, h surface.Handle) {
	n.listeners.Remove(t, h)
}

// Emit delivers an event of the given type to all registered
// listeners, synchronously.
func (n *Node) Emit(t surface.EventType) {
	n.listeners.Call(t)
}

// ListenerCount returns the number of listeners registered for the
// given event type, for verifying attach and detach discipline.
func (n *Node) ListenerCount(t surface.EventType) int {
	return n.listeners.Count(t)
}

// Highlighter is an in-memory native highlight primitive that records
// registrations by style key, preserving first-set order.
type Highlighter struct {
	keys []string
	sets map[string][]span.Range
}

// NewHighlighter returns a new empty [Highlighter].
func NewHighlighter() *Highlighter {
	return &Highlighter{sets: make(map[string][]span.Range)}
}

func (hl *Highlighter) Set(key string, ranges []span.Range) {
	if _, ok := hl.sets[key]; !ok {
		hl.keys = append(hl.keys, key)
	}
	hl.sets[key] = ranges
}

func (hl *Highlighter) Clear() {
	hl.keys = nil
	hl.sets = make(map[string][]span.Range)
}

// Keys returns the registered style keys in first-set order.
func (hl *Highlighter) Keys() []string { return hl.keys }

// Ranges returns the ranges registered under the given key.
func (hl *Highlighter) Ranges(key string) []span.Range { return hl.sets[key] }

// Surface is an in-memory rendering surface. Its geometry provider
// lays text out on a fixed character-cell grid: WrapWidth runes per
// line, each cell CellWidth by CellHeight pixels, starting at the
// node's rectangle origin.
type Surface struct {
	// CellWidth and CellHeight are the synthetic character cell size.
	CellWidth  float32
	CellHeight float32

	// WrapWidth is the number of runes per line before wrapping.
	WrapWidth int

	nodes       map[string]*Node
	highlighter *Highlighter
	selection   surface.Selection
	viewScroll  geom.Vector2
}

// NewSurface returns a new [Surface] with an 8x16 cell grid, 80-rune
// lines, and highlight support enabled.
func NewSurface() *Surface {
	return &Surface{
		CellWidth:   8,
		CellHeight:  16,
		WrapWidth:   80,
		nodes:       make(map[string]*Node),
		highlighter: NewHighlighter(),
	}
}

// AddNode registers a node so it can be found by [Surface.NodeByID].
func (sf *Surface) AddNode(n *Node) {
	sf.nodes[n.ID()] = n
}

func (sf *Surface) NodeByID(id string) surface.Node {
	n, ok := sf.nodes[id]
	if !ok {
		return nil
	}
	return n
}

func (sf *Surface) Highlighter() surface.Highlighter {
	if sf.highlighter == nil {
		return nil
	}
	return sf.highlighter
}

// SetHighlighter replaces the highlight primitive; pass nil to
// simulate a surface without highlight support.
func (sf *Surface) SetHighlighter(hl *Highlighter) { sf.highlighter = hl }

// Highlights returns the concrete highlighter for inspection in tests.
func (sf *Surface) Highlights() *Highlighter { return sf.highlighter }

func (sf *Surface) ReadSelection() surface.Selection { return sf.selection }

// SetSelection scripts the native selection the next read will return.
func (sf *Surface) SetSelection(sel surface.Selection) { sf.selection = sel }

func (sf *Surface) ClearSelection() {
	sf.selection = surface.Selection{Kind: surface.SelectionNone}
}

func (sf *Surface) ViewportScroll() geom.Vector2 { return sf.viewScroll }

// SetViewportScroll sets the ambient viewport scroll offset.
func (sf *Surface) SetViewportScroll(v geom.Vector2) { sf.viewScroll = v }

// CharRect returns the cell rectangle of the rune at the given offset,
// in viewport coordinates relative to the node's rectangle origin.
func (sf *Surface) CharRect(n surface.Node, i int) geom.Rect {
	line := i / sf.WrapWidth
	col := i % sf.WrapWidth
	org := n.BoundingRect().Min
	x := org.X + float32(col)*sf.CellWidth
	y := org.Y + float32(line)*sf.CellHeight
	return geom.R(x, y, x+sf.CellWidth, y+sf.CellHeight)
}

// RangeRect returns the bounding rectangle of the given character
// range: the union of its first and last character cells.
func (sf *Surface) RangeRect(n surface.Node, r span.Range) geom.Rect {
	if r.IsNil() {
		return geom.Rect{}
	}
	return sf.CharRect(n, r.From).Union(sf.CharRect(n, r.To-1))
}
