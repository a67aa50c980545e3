// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the capability interfaces the annotation
// engine requires from a rendering surface: node lookup and geometry,
// the native highlight primitive, text selection access, and widget
// containment. The engine is written purely against these interfaces
// so it can run over a real rendering surface or over the in-memory
// [spanlay/surface/sim] implementation in tests.
package surface

import (
	"errors"

	"spanlay/geom"
	"spanlay/span"
)

// ErrNoHighlighter indicates that the surface does not support the
// native highlight capability. This is a fatal precondition at mount
// time, not a recoverable condition.
var ErrNoHighlighter = errors.New("surface: native highlight capability not supported")

// Widget is an opaque label element produced by an external widget
// factory. The engine only inserts and removes widgets; their internal
// behavior belongs to the factory.
type Widget any

// Node is one node of the rendering surface. The annotation engine
// binds to a host node holding the raw text, walks Parent references
// to find a scroll source, and appends label widgets to the host.
type Node interface {
	span.TextNode

	// Parent returns the parent node, or nil at the root. This is a
	// non-owning back reference; ancestor searches are iterative walks
	// over it.
	Parent() Node

	// BoundingRect returns the node's rectangle in viewport coordinates.
	BoundingRect() geom.Rect

	// Scroll returns the node's internal scroll offset.
	Scroll() geom.Vector2

	// ScrollHeight returns the total height of the node's scrollable
	// content.
	ScrollHeight() float32

	// ClientHeight returns the node's visible height. A node is a
	// scroll source when ScrollHeight exceeds ClientHeight.
	ClientHeight() float32

	// SetLineHeight sets the line height of the node's text, so
	// downstream reflow leaves room for stacked labels.
	SetLineHeight(px float32)

	// AppendWidget inserts a label widget into the node.
	AppendWidget(w Widget)

	// ClearWidgets removes all label widgets from the node.
	ClearWidgets()

	// Widgets returns the node's current label widgets.
	Widgets() []Widget

	// On registers a listener for the given event type, returning a
	// handle for removal.
	On(t EventType, f func()) Handle

	// Off removes a previously registered listener.
	Off(t EventType, h Handle)
}

// Geometry resolves screen rectangles for character offsets within a
// node, in viewport coordinates. It is a separate capability so layout
// can be tested against a synthetic provider, independent of any real
// paint engine.
type Geometry interface {
	// CharRect returns the rectangle of the single character at the
	// given rune offset.
	CharRect(n Node, i int) geom.Rect

	// RangeRect returns the bounding rectangle of the given character
	// range.
	RangeRect(n Node, r span.Range) geom.Rect
}

// SelectionKind describes the shape of the native text selection.
type SelectionKind int32

const (
	// SelectionNone means no selection is active.
	SelectionNone SelectionKind = iota

	// SelectionCaret means the selection is a collapsed insertion point.
	SelectionCaret

	// SelectionRange means the selection is a contiguous range of text.
	SelectionRange
)

// Selection is a snapshot of the native text selection. Anchor and
// Focus are rune offsets within the node text; Anchor may be after
// Focus when the user selected backwards.
type Selection struct {
	Kind   SelectionKind
	Anchor int
	Focus  int
	Text   string
	Node   Node
}

// Highlighter is the native highlight primitive: it renders a union of
// text ranges under one style key without wrapping the text in
// additional nodes. Registrations are replaced wholesale; there is no
// incremental add or remove.
type Highlighter interface {
	// Set registers the union of the given ranges under the style key.
	Set(key string, ranges []span.Range)

	// Clear removes all highlight registrations.
	Clear()
}

// Surface is the rendering surface the engine runs over.
type Surface interface {
	// NodeByID returns the node with the given identifier, or nil if
	// no such node exists.
	NodeByID(id string) Node

	// Highlighter returns the native highlight capability, or nil if
	// the surface does not support it.
	Highlighter() Highlighter

	// ReadSelection returns a snapshot of the current text selection.
	ReadSelection() Selection

	// ClearSelection drops the native selection so its default
	// rendering does not linger after a span is committed.
	ClearSelection()

	// ViewportScroll returns the ambient viewport scroll offset.
	ViewportScroll() geom.Vector2
}
