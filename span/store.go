// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import (
	"github.com/google/uuid"
)

// Store is an ordered collection of committed spans, with an index from
// span ID for fast lookup. The zero value is usable; construct with
// [NewStore] and inject one store per engine so independent mounts
// never share state. The store is the sole arbiter of commit policy:
// overlap rejection and word snapping happen here, not in the
// selection gesture.
type Store struct {
	spans   []*Span
	indexes map[string]int
}

// NewStore returns a new empty [Store].
func NewStore() *Store {
	return &Store{}
}

func (st *Store) initIndexes() {
	if st.indexes == nil {
		st.indexes = make(map[string]int)
	}
}

func (st *Store) reindex() {
	st.indexes = make(map[string]int, len(st.spans))
	for i, sp := range st.spans {
		st.indexes[sp.ID] = i
	}
}

// Len returns the number of committed spans.
func (st *Store) Len() int {
	return len(st.spans)
}

// Spans returns the committed spans in insertion order. This order is
// the stacking tie-break for overlapping spans. Callers must not
// mutate the returned slice.
func (st *Store) Spans() []*Span {
	return st.spans
}

// Load replaces the store contents with the given spans, preserving
// their order. Spans without an ID are assigned one. Used to restore
// prior annotations in bulk.
func (st *Store) Load(spans []*Span) {
	st.Clear()
	for _, sp := range spans {
		if sp.ID == "" {
			sp.ID = uuid.NewString()
		}
		st.indexes[sp.ID] = len(st.spans)
		st.spans = append(st.spans, sp)
	}
}

// Add commits a candidate selection under the given config, returning
// the created span. A candidate with no entity, empty or out-of-range
// offsets, or one that violates the overlap policy is rejected with a
// nil span and false; rejection is a silent no-op, not an error.
func (st *Store) Add(c Candidate, cfg Config) (*Span, bool) {
	if c.Entity == nil || c.Node == nil {
		return nil, false
	}
	txt := []rune(c.Node.Text())
	if c.From < 0 || c.To > len(txt) || c.From >= c.To {
		return nil, false
	}
	from, to := c.From, c.To
	if !cfg.AllowCharacter {
		from, to = snapToWords(txt, from, to)
		// a selection of only word-break runes collapses
		if from >= to {
			return nil, false
		}
	}
	sp := &Span{ID: uuid.NewString(), From: from, To: to, Entity: c.Entity, Node: c.Node}
	if !cfg.AllowOverlap && len(Overlaps(sp, st.spans)) > 0 {
		return nil, false
	}
	st.initIndexes()
	st.indexes[sp.ID] = len(st.spans)
	st.spans = append(st.spans, sp)
	return sp, true
}

// Remove deletes the given span from the store, matching by ID.
// Removing a span not present is a no-op returning false.
func (st *Store) Remove(sp *Span) bool {
	i, ok := st.indexes[sp.ID]
	if !ok {
		return false
	}
	st.spans = append(st.spans[:i], st.spans[i+1:]...)
	st.reindex()
	return true
}

// ReplaceEntity reassigns the entity of an existing span in place,
// without changing its offsets or its position in the order.
// Replacing on a span not present is a no-op returning false.
func (st *Store) ReplaceEntity(sp *Span, e *Entity) bool {
	i, ok := st.indexes[sp.ID]
	if !ok {
		return false
	}
	st.spans[i].Entity = e
	return true
}

// Clear removes all spans from the store.
func (st *Store) Clear() {
	st.spans = nil
	st.indexes = make(map[string]int)
}
