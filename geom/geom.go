// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the minimal float32 vector and rectangle
// primitives used by the span layout engine. Scalar helpers come from
// github.com/chewxy/math32, which has optimized float32 implementations.
package geom

import "github.com/chewxy/math32"

// Vector2 is a 2D float32 point or offset.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Add returns the sum of this vector and the other vector.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the difference of this vector and the other vector.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle defined by the point with minimum
// coordinates and the point with maximum coordinates.
type Rect struct {
	Min Vector2
	Max Vector2
}

// R returns a new [Rect] from the given minimum and maximum x and y
// coordinates.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{Vec2(x0, y0), Vec2(x1, y1)}
}

// IsEmpty returns whether the rectangle has no area (max <= min on
// either coordinate).
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(d Vector2) Rect {
	return Rect{r.Min.Add(d), r.Max.Add(d)}
}

// Union returns the smallest rectangle containing both this rectangle
// and the other one.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Vector2{math32.Min(r.Min.X, o.Min.X), math32.Min(r.Min.Y, o.Min.Y)},
		Vector2{math32.Max(r.Max.X, o.Max.X), math32.Max(r.Max.Y, o.Max.Y)},
	}
}

// ContainsPoint returns whether the given point lies within the
// rectangle, inclusive of the minimum edge and exclusive of the maximum.
func (r Rect) ContainsPoint(p Vector2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}
