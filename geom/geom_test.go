// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := R(10, 20, 40, 30)
	assert.Equal(t, float32(30), r.Width())
	assert.Equal(t, float32(10), r.Height())
	assert.False(t, r.IsEmpty())
	assert.True(t, R(5, 5, 5, 9).IsEmpty())

	tr := r.Translate(Vec2(-10, 5))
	assert.Equal(t, R(0, 25, 30, 35), tr)

	u := R(0, 0, 10, 10).Union(R(5, 5, 20, 8))
	assert.Equal(t, R(0, 0, 20, 10), u)

	assert.True(t, r.ContainsPoint(Vec2(10, 20)))
	assert.False(t, r.ContainsPoint(Vec2(40, 25)))
}

func TestVector2(t *testing.T) {
	v := Vec2(3, 4).Add(Vec2(1, -2))
	assert.Equal(t, Vec2(4, 2), v)
	assert.Equal(t, Vec2(2, 6), v.Sub(Vec2(2, -4)))
}
