package canopy

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// lerpColor interpolates every channel of a toward b by f.
func lerpColor(a, b Color, f float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
		A: a.A + (b.A-a.A)*f,
	}
}

// Vec2 is a 2D vector used for positions, sizes, scales, and points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Lerp interpolates from v toward o by f. f is not clamped, so overshooting
// easing curves extrapolate.
func (v Vec2) Lerp(o Vec2, f float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*f, v.Y + (o.Y-v.Y)*f}
}

// Rect is an axis-aligned rectangle described by its minimum corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Touchable controls whether an actor and its descendants take part in
// Scene.HitTest.
type Touchable uint8

const (
	TouchEnabled      Touchable = iota // the actor and its children are hit-testable
	TouchDisabled                      // neither the actor nor its children are hit-testable
	TouchChildrenOnly                  // only the children are hit-testable
	TouchParentOnly                    // only the actor itself is hit-testable
)

// String returns the lower camel name of the touchability mode.
func (t Touchable) String() string {
	switch t {
	case TouchEnabled:
		return "enabled"
	case TouchDisabled:
		return "disabled"
	case TouchChildrenOnly:
		return "childrenOnly"
	case TouchParentOnly:
		return "parentOnly"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
