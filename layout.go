package canopy

import (
	"errors"
	"fmt"
)

// ErrCrossHierarchy is returned when one rectangle is positioned relative to
// another that does not share its coordinate root.
var ErrCrossHierarchy = errors.New("rectangles do not share a coordinate root")

// ScaledSize returns the node's size multiplied by its local scale.
func ScaledSize(n *Node) Vec2 {
	return Vec2{n.Width * n.ScaleX, n.Height * n.ScaleY}
}

// CoordX returns the X coordinate of alignment a in anchored space.
func CoordX(a Align, n *Node) float64 {
	f, origin := a.xFraction()
	if origin {
		return n.X
	}
	w := n.Width * n.ScaleX
	return n.X - w*n.PivotX + w*f
}

// CoordY returns the Y coordinate of alignment a in anchored space.
func CoordY(a Align, n *Node) float64 {
	f, origin := a.yFraction()
	if origin {
		return n.Y
	}
	h := n.Height * n.ScaleY
	return n.Y - h*n.PivotY + h*f
}

// Coord returns the point of alignment a in anchored space: the same space
// as the node's X and Y. Rotation is ignored; the point is taken on the
// axis-aligned scaled rectangle.
func Coord(a Align, n *Node) Vec2 {
	return Vec2{CoordX(a, n), CoordY(a, n)}
}

// SetCoordX moves the node along X so that alignment a sits at x.
func SetCoordX(a Align, n *Node, x float64) {
	f, origin := a.xFraction()
	if origin {
		n.X = x
		return
	}
	w := n.Width * n.ScaleX
	n.X = x - w*f + w*n.PivotX
}

// SetCoordY moves the node along Y so that alignment a sits at y.
func SetCoordY(a Align, n *Node, y float64) {
	f, origin := a.yFraction()
	if origin {
		n.Y = y
		return
	}
	h := n.Height * n.ScaleY
	n.Y = y - h*f + h*n.PivotY
}

// SetCoord moves the node so that alignment a sits at v. It is the inverse
// of Coord.
func SetCoord(a Align, n *Node, v Vec2) {
	SetCoordX(a, n, v.X)
	SetCoordY(a, n, v.Y)
}

// LocalAlignPoint returns the point of alignment a in the node's own local
// space, where the pivot is the origin and size is unscaled.
func LocalAlignPoint(a Align, n *Node) Vec2 {
	var p Vec2
	if f, origin := a.xFraction(); !origin {
		p.X = (f - n.PivotX) * n.Width
	}
	if f, origin := a.yFraction(); !origin {
		p.Y = (f - n.PivotY) * n.Height
	}
	return p
}

// Bounds returns the node's axis-aligned scaled rectangle in anchored space.
func Bounds(n *Node) Rect {
	lo := Coord(AlignBottomLeft, n)
	s := ScaledSize(n)
	return Rect{X: lo.X, Y: lo.Y, Width: s.X, Height: s.Y}
}

// SetPositionTo moves n so that its alignment a coincides with alignment
// otherA of other. The target point is carried through world space, so the
// two nodes may have different parents, but they must share a coordinate
// root; otherwise the returned error wraps ErrCrossHierarchy and n is left
// unchanged.
func SetPositionTo(a Align, n *Node, otherA Align, other *Node) error {
	if !SameRoot(n, other) {
		return fmt.Errorf("canopy: position %q relative to %q: %w", n.Name, other.Name, ErrCrossHierarchy)
	}
	target := LocalToWorld(other, LocalAlignPoint(otherA, other))
	if n.Parent != nil {
		target = WorldToLocal(n.Parent, target)
	}
	SetCoord(a, n, target.Sub(anchorReference(n)))
	return nil
}

// SetSizeAligned resizes n while keeping alignment a fixed in place.
func SetSizeAligned(a Align, n *Node, size Vec2) {
	keep := Coord(a, n)
	n.Width, n.Height = size.X, size.Y
	SetCoord(a, n, keep)
}

// ScaleAround sets the node's scale while keeping localPivot (a point in the
// node's local space) fixed in parent space.
//
// A node has one position, so it cannot stay pinned at two different points
// across calls. When localPivot differs from the previous call's pivot, the
// scale is first returned to 1 around the previous pivot and then applied
// around the new one. The result is approximate for sequences of differing
// pivots; only the latest pivot is guaranteed fixed.
func ScaleAround(n *Node, scale Vec2, localPivot Vec2) {
	if n.scalePivotSet && n.scalePivot != localPivot {
		scaleAboutPoint(n, Vec2{1, 1}, n.scalePivot)
	}
	scaleAboutPoint(n, scale, localPivot)
	n.scalePivot = localPivot
	n.scalePivotSet = true
}

// ScaleAroundAligned is ScaleAround with the pivot at alignment a.
func ScaleAroundAligned(n *Node, scale Vec2, a Align) {
	ScaleAround(n, scale, LocalAlignPoint(a, n))
}

// scaleAboutPoint applies scale and shifts the anchored position by however
// far p drifted in parent space.
func scaleAboutPoint(n *Node, scale Vec2, p Vec2) {
	before := LocalToParent(n, p)
	n.ScaleX, n.ScaleY = scale.X, scale.Y
	after := LocalToParent(n, p)
	n.X += before.X - after.X
	n.Y += before.Y - after.Y
}
