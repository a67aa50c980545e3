// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var ls Listeners
	order := []int{}

	h1 := ls.Add(Scroll, func() { order = append(order, 1) })
	ls.Add(Scroll, func() { order = append(order, 2) })
	ls.Add(Resize, func() { order = append(order, 3) })

	ls.Call(Scroll)
	assert.Equal(t, []int{1, 2}, order, "called in registration order")
	assert.Equal(t, 2, ls.Count(Scroll))

	ls.Remove(Scroll, h1)
	assert.Equal(t, 1, ls.Count(Scroll))
	order = nil
	ls.Call(Scroll)
	assert.Equal(t, []int{2}, order)

	// removing an unknown handle is a no-op
	ls.Remove(Scroll, Handle(99))
	assert.Equal(t, 1, ls.Count(Scroll))

	order = nil
	ls.Call(Resize)
	assert.Equal(t, []int{3}, order)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "Click", Click.String())
	assert.Equal(t, "Scroll", Scroll.String())
	assert.Equal(t, "Resize", Resize.String())
	assert.Equal(t, "Unknown", EventType(42).String())
}
