package canopy

// Point-space conversions. World space is the parent space of the tree's
// topmost node; screen space is world space projected by the camera resolved
// for the node (see Canvas).

// LocalToParent converts a point in n's local space to its parent's local
// space: the node's origin coordinate in parent space plus the scaled,
// rotated offset.
func LocalToParent(n *Node, p Vec2) Vec2 {
	x, y := transformPoint(computeLocalTransform(n), p.X, p.Y)
	return Vec2{x, y}
}

// ParentToLocal converts a point in n's parent space to n's local space.
func ParentToLocal(n *Node, p Vec2) Vec2 {
	x, y := transformPoint(invertAffine(computeLocalTransform(n)), p.X, p.Y)
	return Vec2{x, y}
}

// LocalToWorld converts a point in n's local space to world space.
func LocalToWorld(n *Node, p Vec2) Vec2 {
	x, y := n.LocalToWorld(p.X, p.Y)
	return Vec2{x, y}
}

// WorldToLocal converts a world-space point to n's local space.
func WorldToLocal(n *Node, p Vec2) Vec2 {
	x, y := n.WorldToLocal(p.X, p.Y)
	return Vec2{x, y}
}

// LocalToOtherLocal converts a point in n's local space to other's local space
// by way of world space.
func LocalToOtherLocal(n, other *Node, p Vec2) Vec2 {
	return WorldToLocal(other, LocalToWorld(n, p))
}

// LocalToCanvas converts a point in n's local space to the local space of its
// coordinate root.
func LocalToCanvas(n *Node, p Vec2) Vec2 {
	return LocalToOtherLocal(n, CanvasOf(n), p)
}

// CanvasToLocal converts a point in the local space of n's coordinate root to
// n's local space.
func CanvasToLocal(n *Node, p Vec2) Vec2 {
	return LocalToOtherLocal(CanvasOf(n), n, p)
}

// ScreenToWorld projects a screen point into world space through the camera
// that renders n.
func ScreenToWorld(n *Node, p Vec2) Vec2 {
	cam := cameraFor(n)
	if cam == nil {
		return p
	}
	x, y := cam.ScreenToWorld(p.X, p.Y)
	return Vec2{x, y}
}

// WorldToScreen projects a world point onto the screen through the camera
// that renders n.
func WorldToScreen(n *Node, p Vec2) Vec2 {
	cam := cameraFor(n)
	if cam == nil {
		return p
	}
	x, y := cam.WorldToScreen(p.X, p.Y)
	return Vec2{x, y}
}

// ScreenToLocal converts a screen point to n's local space.
func ScreenToLocal(n *Node, p Vec2) Vec2 {
	return WorldToLocal(n, ScreenToWorld(n, p))
}

// LocalToScreen converts a point in n's local space to screen space.
func LocalToScreen(n *Node, p Vec2) Vec2 {
	return WorldToScreen(n, LocalToWorld(n, p))
}

// ContainsScreenPoint reports whether the screen point p falls inside n.
// HitShape is used when set; otherwise the unscaled rectangle in local space.
// Zero-size nodes without a HitShape contain nothing.
func ContainsScreenPoint(n *Node, p Vec2) bool {
	lp := ScreenToLocal(n, p)
	if n.HitShape != nil {
		return n.HitShape.Contains(lp.X, lp.Y)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	r := Rect{X: -n.PivotX * n.Width, Y: -n.PivotY * n.Height, Width: n.Width, Height: n.Height}
	return r.Contains(lp.X, lp.Y)
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
