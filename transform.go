package canopy

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// anchorReference returns the point in the parent's local space that the
// node's anchored position is measured from. Root nodes measure from 0.
func anchorReference(n *Node) Vec2 {
	p := n.Parent
	if p == nil {
		return Vec2{}
	}
	return Vec2{
		X: (n.AnchorX - p.PivotX) * p.Width,
		Y: (n.AnchorY - p.PivotY) * p.Height,
	}
}

// computeLocalTransform computes the matrix taking the node's local space
// (origin at the pivot, unscaled) into its parent's local space.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(anchorReference + (X, Y))
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	ref := anchorReference(n)
	return [6]float64{
		cos * n.ScaleX,
		sin * n.ScaleX,
		-sin * n.ScaleY,
		cos * n.ScaleY,
		ref.X + n.X,
		ref.Y + n.Y,
	}
}

// worldTransform composes local transforms from n up to the root. Computed on
// demand so conversions see mutations made earlier in the same tick.
func worldTransform(n *Node) [6]float64 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// --- Transform property setters ---

// SetPosition sets the node's anchored position.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the node's unscaled width and height.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// SetPivot sets the node's normalized pivot. Values are clamped to [0, 1].
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = clamp01(px)
	n.PivotY = clamp01(py)
}

// SetAnchor sets the node's normalized anchor within its parent.
func (n *Node) SetAnchor(ax, ay float64) {
	n.AnchorX = ax
	n.AnchorY = ay
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(worldTransform(n))
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(worldTransform(n), lx, ly)
}
