package canopy

// Canvas marks a node as a coordinate root. Nodes below it resolve screen
// projection through its camera, and positioning one rectangle relative to
// another is only defined when both resolve to the same root.
type Canvas struct {
	// Camera projects the canvas to the screen. When nil the enclosing
	// canvas's camera is used, then the scene's main camera, then identity.
	Camera *Camera

	scene *Scene
}

// NewCanvas creates a container node that acts as a coordinate root.
func NewCanvas(name string, cam *Camera) *Node {
	n := NewContainer(name)
	n.Canvas = &Canvas{Camera: cam}
	return n
}

// CanvasOf returns the nearest node at or above n that carries a Canvas. When
// no ancestor does, the topmost ancestor is the coordinate root.
func CanvasOf(n *Node) *Node {
	root := n
	for p := n; p != nil; p = p.Parent {
		if p.Canvas != nil {
			return p
		}
		root = p
	}
	return root
}

// SameRoot reports whether a and b share a coordinate root.
func SameRoot(a, b *Node) bool {
	return CanvasOf(a) == CanvasOf(b)
}

// cameraFor resolves the camera used to project n to the screen.
func cameraFor(n *Node) *Camera {
	for p := n; p != nil; p = p.Parent {
		if p.Canvas == nil {
			continue
		}
		if p.Canvas.Camera != nil {
			return p.Canvas.Camera
		}
		if p.Canvas.scene != nil {
			return p.Canvas.scene.MainCamera()
		}
	}
	return nil
}
