// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package span provides the data model for text annotations: entity-labeled
// character ranges over a host text node, an ordered [Store] of committed
// spans, and the overlap resolver used for label stacking.
package span

// Entity is the label identity attached to a span. Entities are
// compared by ID; Name is display-only.
type Entity struct {
	ID   string
	Name string
}

// Range is a contiguous range of character (rune) offsets within a host
// text, with inclusive From and exclusive To.
type Range struct {
	From int
	To   int
}

// IsNil returns whether the range is empty, because the start is at or
// after the end.
func (r Range) IsNil() bool {
	return r.From >= r.To
}

// Len returns the number of characters in the range.
func (r Range) Len() int {
	return r.To - r.From
}

// TextNode is the minimal view of a host surface node that a span
// needs: its identity and the text its offsets index into.
type TextNode interface {
	// ID returns the node's unique identifier.
	ID() string

	// Text returns the node's raw text content.
	Text() string
}

// Span is a committed, entity-labeled region of a host node's text.
// Offsets are rune indexes into the node text, with From inclusive and
// To exclusive. A span belongs to exactly one host node and its Entity
// is non-nil once committed.
type Span struct {
	// ID is the store-assigned unique identifier.
	ID string

	// From is the starting rune offset within the host text.
	From int

	// To is the ending rune offset (exclusive).
	To int

	// Entity is the label attached to this span.
	Entity *Entity

	// Node is the host text node the offsets index into.
	Node TextNode
}

// Range returns the span's character range.
func (sp *Span) Range() Range {
	return Range{sp.From, sp.To}
}

// Candidate is a transient, pre-commit selection produced by the
// selection capture gesture. It is discarded without effect if the
// store rejects it.
type Candidate struct {
	From   int
	To     int
	Text   string
	Entity *Entity
	Node   TextNode
}

// Config is the per-engine annotation policy, read by the store on
// every commit and by the layout engine on every recompute.
type Config struct {
	// AllowOverlap permits committing a span whose range intersects an
	// existing span.
	AllowOverlap bool

	// AllowCharacter permits character-level annotation. When off,
	// candidate offsets are snapped outward to word boundaries.
	AllowCharacter bool

	// LineHeight is the host text line height in pixels. The layout
	// engine grows it to make room for the deepest label stack.
	LineHeight float32
}
