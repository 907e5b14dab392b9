package canopy

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	assertMatrix(t, "identity", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	assertMatrix(t, "translation", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX = 2
	n.ScaleY = 3
	assertMatrix(t, "scale", computeLocalTransform(n), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", computeLocalTransform(n), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformAnchor(t *testing.T) {
	parent := NewImage("parent", 200, 100, ColorWhite)
	child := NewContainer("child")
	parent.AddChild(child)

	// Anchor at the parent's top-right corner; parent pivot is centered.
	child.SetAnchor(1, 1)
	child.X, child.Y = 5, -5
	assertMatrix(t, "anchor", computeLocalTransform(child), [6]float64{1, 0, 0, 1, 105, 45})

	parent.SetPivot(0, 0)
	assertMatrix(t, "anchor after pivot", computeLocalTransform(child), [6]float64{1, 0, 0, 1, 205, 95})
}

func TestLocalTransformCombined(t *testing.T) {
	n := NewContainer("test")
	n.X = 50
	n.Y = 60
	n.ScaleX = 2
	n.ScaleY = 2
	n.Rotation = math.Pi

	got := computeLocalTransform(n)
	assertMatrix(t, "combined", got, [6]float64{-2, 0, 0, -2, 50, 60})
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, -1, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "T*T", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{1, 0, 0, 1, 10, 20}
	assertMatrix(t, "inverse translation", invertAffine(m), [6]float64{1, 0, 0, 1, -10, -20})
}

func TestInvertAffineComplex(t *testing.T) {
	n := NewContainer("test")
	n.X, n.Y = 30, -40
	n.ScaleX, n.ScaleY = 2, 0.5
	n.Rotation = 0.7
	m := computeLocalTransform(n)
	assertMatrix(t, "m*inv(m)", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- world transforms ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	parent.X, parent.Y = 100, 50
	parent.ScaleX, parent.ScaleY = 2, 2
	child := NewContainer("child")
	child.X, child.Y = 10, 5
	parent.AddChild(child)

	wx, wy := child.LocalToWorld(0, 0)
	assertNear(t, "child world x", wx, 120)
	assertNear(t, "child world y", wy, 60)
}

func TestWorldTransformSeesMutationImmediately(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 10
	wx, _ := child.LocalToWorld(0, 0)
	assertNear(t, "after parent move", wx, 10)

	parent.X = 40
	wx, _ = child.LocalToWorld(0, 0)
	assertNear(t, "after second parent move", wx, 40)
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	root := NewContainer("root")
	root.X, root.Y = 20, 30
	root.Rotation = 0.4
	mid := NewImage("mid", 50, 80, ColorWhite)
	mid.ScaleX, mid.ScaleY = 1.5, 0.75
	mid.SetAnchor(0, 1)
	leaf := NewImage("leaf", 10, 10, ColorWhite)
	leaf.X, leaf.Y = -3, 7
	leaf.Rotation = -1.1
	root.AddChild(mid)
	mid.AddChild(leaf)

	wx, wy := leaf.LocalToWorld(4, -2)
	lx, ly := leaf.WorldToLocal(wx, wy)
	assertNear(t, "roundtrip x", lx, 4)
	assertNear(t, "roundtrip y", ly, -2)
}

func TestDeepHierarchy(t *testing.T) {
	root := NewContainer("root")
	n := root
	for range 20 {
		child := NewContainer("c")
		child.X = 1
		n.AddChild(child)
		n = child
	}
	wx, _ := n.LocalToWorld(0, 0)
	assertNear(t, "depth 20 x", wx, 20)
}

func TestSetPivotClamps(t *testing.T) {
	n := NewContainer("n")
	n.SetPivot(-1, 2)
	assertNear(t, "PivotX", n.PivotX, 0)
	assertNear(t, "PivotY", n.PivotY, 1)
}

func TestSetters(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(1, 2)
	n.SetSize(3, 4)
	n.SetScale(5, 6)
	n.SetRotation(0.5)
	n.SetAnchor(0, 1)
	if n.X != 1 || n.Y != 2 || n.Width != 3 || n.Height != 4 ||
		n.ScaleX != 5 || n.ScaleY != 6 || n.Rotation != 0.5 ||
		n.AnchorX != 0 || n.AnchorY != 1 {
		t.Errorf("setters did not store values: %+v", n)
	}
}

func TestWorldToLocalZeroScale(t *testing.T) {
	n := NewContainer("n")
	n.X = 10
	n.ScaleX = 0
	// Singular transforms invert to identity rather than producing NaN.
	lx, ly := n.WorldToLocal(5, 5)
	if math.IsNaN(lx) || math.IsNaN(ly) {
		t.Errorf("WorldToLocal on zero scale = (%v,%v), want finite values", lx, ly)
	}
}

// --- Benchmarks ---

func BenchmarkComputeLocalTransform(b *testing.B) {
	n := NewContainer("n")
	n.X, n.Y = 100, 200
	n.ScaleX, n.ScaleY = 2, 3
	n.Rotation = 0.5
	for b.Loop() {
		computeLocalTransform(n)
	}
}

func BenchmarkMultiplyAffine(b *testing.B) {
	p := [6]float64{1, 0.5, -0.5, 1, 10, 20}
	c := [6]float64{2, 0, 0, 2, 5, 5}
	for b.Loop() {
		multiplyAffine(p, c)
	}
}

func BenchmarkWorldTransformDepth10(b *testing.B) {
	root := NewContainer("root")
	n := root
	for range 10 {
		child := NewContainer("c")
		child.X = 1
		child.Rotation = 0.1
		n.AddChild(child)
		n = child
	}
	for b.Loop() {
		worldTransform(n)
	}
}
