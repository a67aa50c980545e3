// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotator

import (
	"spanlay/span"
)

// applyHighlights rebuilds the native highlight registrations from the
// store's current contents: spans are grouped by style key, member
// ranges are unioned under that key, and the whole registration set is
// cleared and re-set. Single-threaded execution makes the rebuild
// atomic from the caller's perspective.
func (en *Engine) applyHighlights() {
	hl := en.surf.Highlighter()
	if hl == nil {
		return
	}
	var keys []string
	groups := map[string][]span.Range{}
	for _, sp := range en.store.Spans() {
		key := en.styleKey(sp)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], sp.Range())
	}
	hl.Clear()
	for _, key := range keys {
		hl.Set(key, groups[key])
	}
}

// styleKey derives the style class key for a span from its entity
// identity. The one actively hovered span instead gets a distinct
// hover-variant key, so it renders apart from its entity group.
func (en *Engine) styleKey(sp *span.Span) string {
	key := en.opts.HighlightPrefix + "-" + sp.Entity.ID
	if h := en.hovered; h != nil && h.active && h.sp.ID == sp.ID {
		return key + "-hover"
	}
	return key
}
