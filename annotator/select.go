// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"log/slog"

	"spanlay/span"
	"spanlay/surface"
)

// captureState tracks the selection capture gesture. The native
// browser-style selection in progress is opaque to the engine; only
// the click that ends it is observed.
type captureState int32

const (
	captureIdle captureState = iota

	// captureCandidate means a valid selection was read and normalized
	// but not yet accepted by the store.
	captureCandidate

	// captureCommitted means the store accepted the candidate.
	captureCommitted

	// captureDiscarded means the gesture ended without a committable
	// selection: not a range, no armed entity, or rejected by the
	// store. A silent no-op, not an error.
	captureDiscarded
)

// handleClick converts the native selection at the end of a click
// gesture into a candidate span and commits it to the store. The store
// is the sole arbiter of whether the commit is accepted; overlap
// policy and word snapping live there.
func (en *Engine) handleClick() {
	sel := en.surf.ReadSelection()
	if sel.Kind != surface.SelectionRange || en.armed == nil {
		en.capture = captureDiscarded
		slog.Debug("annotator: selection discarded", "kind", sel.Kind, "armed", en.armed != nil)
		return
	}
	c := span.Candidate{
		From:   min(sel.Anchor, sel.Focus),
		To:     max(sel.Anchor, sel.Focus),
		Text:   sel.Text,
		Entity: en.armed,
		Node:   en.node,
	}
	en.capture = captureCandidate
	en.surf.ClearSelection()
	if _, ok := en.store.Add(c, en.config); !ok {
		en.capture = captureDiscarded
		return
	}
	en.capture = captureCommitted
	en.Refresh()
}
