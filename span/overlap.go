// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

// Intersects returns whether the other span's range intersects this
// span's range: other starts within [From, To], ends within [From, To],
// or strictly contains the span.
func (sp *Span) Intersects(other *Span) bool {
	if other.From >= sp.From && other.From <= sp.To {
		return true
	}
	if other.To >= sp.From && other.To <= sp.To {
		return true
	}
	return other.From < sp.From && other.To > sp.To
}

// Overlaps returns every span in all whose range intersects the given
// span's range, including the span itself when present. The result
// preserves the iteration order of all, which drives stacking
// tie-breaks. Linear per query; results are never memoized so they
// always reflect the current span set.
func Overlaps(sp *Span, all []*Span) []*Span {
	var ov []*Span
	for _, other := range all {
		if sp.Intersects(other) {
			ov = append(ov, other)
		}
	}
	return ov
}
