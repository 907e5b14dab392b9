package canopy

// HitShape is used for custom hit testing regions in a node's local space.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; canopy is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a rectangle in the UI tree. It is the host primitive the layout
// functions and actors read and write: an anchored position, a size, a
// normalized pivot, a local scale and rotation. A single flat struct is used
// for every kind of element; optional visual components are typed fields that
// are nil when absent.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// X and Y are the anchored position: the pivot's offset from the anchor
	// reference point inside the parent.
	X, Y float64
	// Width and Height are the unscaled size. Negative sizes are undefined.
	Width, Height float64
	// PivotX and PivotY are normalized to [0, 1] within the rectangle.
	PivotX, PivotY float64
	// AnchorX and AnchorY are normalized to [0, 1] within the parent and
	// select the reference point X and Y are measured from.
	AnchorX, AnchorY float64
	ScaleX, ScaleY   float64
	// Rotation is in radians, counter-clockwise around the pivot.
	Rotation float64

	// Visible is the active flag; invisible subtrees are neither drawn nor
	// hit-tested.
	Visible bool
	// Interactable is the enabled flag.
	Interactable bool

	// Canvas marks this node as a coordinate root. See CanvasOf.
	Canvas *Canvas

	// Optional components. Mutators skip the ones that are nil.
	Fill  *Graphic
	Text  *Text
	Group *AlphaGroup

	// HitShape overrides the rectangle for ContainsScreenPoint.
	HitShape HitShape

	UserData any

	actor *Actor

	// last pivot handed to ScaleAround, in local space
	scalePivot    Vec2
	scalePivotSet bool

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.PivotX = 0.5
	n.PivotY = 0.5
	n.AnchorX = 0.5
	n.AnchorY = 0.5
	n.Visible = true
	n.Interactable = true
}

// NewContainer creates a node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewImage creates a node of the given size filled with a solid color.
func NewImage(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Width: width, Height: height, Fill: &Graphic{Color: c}}
	nodeDefaults(n)
	return n
}

// NewLabel creates a node carrying a text component. Text is not rendered by
// canopy; the component exists so color and alpha actions can drive it.
func NewLabel(name, content string, c Color) *Node {
	n := &Node{Name: name, Text: &Text{Content: content, Graphic: Graphic{Color: c}}}
	nodeDefaults(n)
	return n
}

// NewGroup creates a container whose alpha multiplies that of its subtree.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Group: &AlphaGroup{Alpha: 1}}
	nodeDefaults(n)
	return n
}

// Actor returns the actor bound to this node, or nil.
func (n *Node) Actor() *Actor {
	return n.actor
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("canopy: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("canopy: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("canopy: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("canopy: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("canopy: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("canopy: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("canopy: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, cancels
// the bound actor's actions, and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	if n.actor != nil {
		n.actor.ClearActions()
	}
	n.children = nil
	n.Parent = nil
	n.Canvas = nil
	n.HitShape = nil
	n.Fill = nil
	n.Text = nil
	n.Group = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// visibleInHierarchy reports whether n and all of its ancestors are visible.
func (n *Node) visibleInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}
