// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotator implements the overlap-aware layout and highlight
// synchronization engine for labeled text spans. An [Engine] binds to
// one host node of a [surface.Surface], projects the spans of an
// injected [span.Store] into positioned label widgets and native
// highlight registrations, and keeps that projection synchronized as
// the user scrolls, resizes, selects new text, or mutates spans.
//
// Everything runs single-threaded and event-driven: every operation
// runs to completion synchronously inside one event callback, so a
// layout pass always observes a fully settled store. Geometry is never
// cached; each pass is a full re-render.
package annotator

import (
	"errors"
	"fmt"

	"spanlay/span"
	"spanlay/surface"
)

// ErrNodeNotFound indicates that the host node was missing at mount or
// load time. This is a caller ordering bug or an unsupported
// environment; it is surfaced immediately and never retried.
var ErrNodeNotFound = errors.New("annotator: host node not found")

// Engine is one annotation engine instance. It owns no spans directly,
// only the live projection derived from the store: widget instances,
// native highlight registrations, and listener bindings. Construct
// with [New]; one engine per mounted host node.
type Engine struct {
	surf    surface.Surface
	geo     surface.Geometry
	store   *span.Store
	factory WidgetFactory

	opts   Options
	config span.Config

	node    surface.Node
	armed   *span.Entity
	hovered *hoverState
	capture captureState

	scrollSource surface.Node
	scrollHandle surface.Handle
	resizeHandle surface.Handle
	clickHandle  surface.Handle
	mounted      bool
}

type hoverState struct {
	sp     *span.Span
	active bool
}

// New returns a new [Engine] over the given surface, geometry
// resolver, span store, and widget factory, with default [Options].
// The store must be constructed by the caller and not shared between
// engines.
func New(surf surface.Surface, geo surface.Geometry, store *span.Store, factory WidgetFactory) *Engine {
	en := &Engine{surf: surf, geo: geo, store: store, factory: factory, opts: DefaultOptions()}
	en.config = en.opts.config()
	return en
}

// SetOptions replaces the engine options. Call before [Engine.Mount];
// after mounting, use the individual setters.
func (en *Engine) SetOptions(o Options) {
	en.opts = o
	en.config = o.config()
}

// Mount binds the engine to the host node with the given identifier,
// loads the initial spans into the store, attaches the click, scroll,
// and resize listeners, and runs the first layout and highlight pass.
// It fails fast with [surface.ErrNoHighlighter] if the surface lacks
// the native highlight capability, and with [ErrNodeNotFound] if the
// node does not exist.
func (en *Engine) Mount(nodeID string, initial []*span.Span) error {
	if en.surf.Highlighter() == nil {
		return surface.ErrNoHighlighter
	}
	n := en.surf.NodeByID(nodeID)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}
	if en.mounted {
		en.Unmount()
	}
	en.node = n
	en.mounted = true
	en.store.Load(initial)
	en.bindScrollSource()
	en.resizeHandle = n.On(surface.Resize, en.Refresh)
	en.clickHandle = n.On(surface.Click, en.handleClick)
	en.Refresh()
	return nil
}

// Unmount releases all listener bindings, clears the projection
// (widgets and native highlights), and clears the store. The engine
// can be mounted again afterwards.
func (en *Engine) Unmount() {
	if !en.mounted {
		return
	}
	en.releaseScrollSource()
	en.node.Off(surface.Resize, en.resizeHandle)
	en.node.Off(surface.Click, en.clickHandle)
	en.node.ClearWidgets()
	if hl := en.surf.Highlighter(); hl != nil {
		hl.Clear()
	}
	en.store.Clear()
	en.hovered = nil
	en.mounted = false
	en.node = nil
}

// ArmEntity sets the entity that subsequent selection gestures commit
// under. Arming persists across selections until changed; pass nil to
// disarm, after which selections are discarded.
func (en *Engine) ArmEntity(e *span.Entity) {
	en.armed = e
}

// SetAllowOverlap sets whether new spans may intersect existing ones.
func (en *Engine) SetAllowOverlap(allow bool) {
	en.config.AllowOverlap = allow
}

// SetAllowCharacterAnnotation sets whether spans may start and end
// mid-word. When off, committed offsets snap to word boundaries.
func (en *Engine) SetAllowCharacterAnnotation(allow bool) {
	en.config.AllowCharacter = allow
}

// SetLineHeight sets the base host text line height in pixels and,
// when mounted, recomputes the projection. Overlap stacking grows the
// applied line height from this base.
func (en *Engine) SetLineHeight(px float32) {
	en.opts.LineHeight = px
	en.config.LineHeight = px
	if en.mounted {
		en.Refresh()
	}
}

// ReplaceEntity reassigns the entity of an existing span without
// changing its offsets, then recomputes the projection. Replacing on a
// span not in the store is a no-op.
func (en *Engine) ReplaceEntity(sp *span.Span, e *span.Entity) {
	if en.store.ReplaceEntity(sp, e) {
		en.Refresh()
	}
}

// Remove deletes a span from the store and recomputes the projection.
// Removing a span not in the store is a no-op.
func (en *Engine) Remove(sp *span.Span) {
	if en.store.Remove(sp) {
		en.Refresh()
	}
}

// ClearAllHighlights removes every span, leaving an empty native
// highlight set and no widgets in the container.
func (en *Engine) ClearAllHighlights() {
	en.store.Clear()
	en.hovered = nil
	en.Refresh()
}

// SetHover marks a span as hovered or not and rebuilds the native
// highlight registrations so the hovered span renders under its hover
// style key. Widget positions are unaffected.
func (en *Engine) SetHover(sp *span.Span, isHovered bool) {
	en.hovered = &hoverState{sp: sp, active: isHovered}
	if en.mounted {
		en.applyHighlights()
	}
}

// Refresh runs a full layout and highlight pass against the store's
// current contents. It is invoked on every content or viewport change;
// callers only need it after mutating spans outside the engine API.
func (en *Engine) Refresh() {
	if !en.mounted {
		return
	}
	en.layout()
	en.applyHighlights()
}
