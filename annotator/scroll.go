// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"log/slog"

	"spanlay/surface"
)

// bindScrollSource walks upward from the host node over parent back
// references and binds the relayout trigger to the first ancestor
// whose scrollable content height exceeds its visible height. Any
// previous binding is released first. If no scrollable ancestor
// exists, scroll-driven relayout stays disabled for this mount.
// Every scroll tick runs a full pass; there is no throttling.
func (en *Engine) bindScrollSource() {
	en.releaseScrollSource()
	for p := en.node.Parent(); p != nil; p = p.Parent() {
		if p.ScrollHeight() > p.ClientHeight() {
			en.scrollSource = p
			en.scrollHandle = p.On(surface.Scroll, en.Refresh)
			return
		}
	}
	slog.Debug("annotator: no scrollable ancestor; scroll-driven relayout disabled", "node", en.node.ID())
}

// releaseScrollSource detaches the current scroll listener, if any.
// Listeners must be released before a new one is bound or on teardown,
// so remounts do not leak listeners.
func (en *Engine) releaseScrollSource() {
	if en.scrollSource != nil {
		en.scrollSource.Off(surface.Scroll, en.scrollHandle)
		en.scrollSource = nil
	}
}
