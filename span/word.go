// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package span

import "unicode"

// runeIsWordBreak returns true if the given rune counts as a word break
// for the purposes of snapping annotations to whole words.
func runeIsWordBreak(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}

// snapToWords adjusts a candidate range to whole-word boundaries:
// word-break runes at either end of the selection are trimmed off, then
// both ends are expanded outward to the enclosing word edges.
func snapToWords(txt []rune, from, to int) (int, int) {
	sz := len(txt)
	if from < 0 {
		from = 0
	}
	if to > sz {
		to = sz
	}
	for from < to && runeIsWordBreak(txt[from]) {
		from++
	}
	for to > from && runeIsWordBreak(txt[to-1]) {
		to--
	}
	if from >= to {
		// nothing but word breaks selected
		return from, from
	}
	for from > 0 && !runeIsWordBreak(txt[from-1]) {
		from--
	}
	for to < sz && !runeIsWordBreak(txt[to]) {
		to++
	}
	return from, to
}
