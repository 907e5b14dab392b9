package canopy

import (
	"fmt"
	"os"
)

// Actor owns a node's attached actions and is the geometry surface actions
// read and write. Call Act once per frame, or let Scene.Tick do it.
type Actor struct {
	node      *Node
	actions   []*Action
	scratch   []*Action
	current   *Action // top-level action being advanced
	touchable Touchable

	start   Vec2
	started bool

	// OnActionDone is called after an action completes and has been
	// detached. Nil by default.
	OnActionDone func(*Action)

	// sceneDone forwards completions to the scene's store while it ticks us.
	sceneDone func(*Actor, *Action)

	// ExternalTick excludes the actor from Scene.Tick, for actors driven by
	// another loop such as an ECS system.
	ExternalTick bool

	graphicBuf []*Graphic
}

// NewActor binds a new actor to n. A node has at most one actor; binding a
// second replaces the first.
func NewActor(n *Node) *Actor {
	if n == nil {
		panic("canopy: cannot bind actor to nil node")
	}
	a := &Actor{node: n}
	n.actor = a
	return a
}

// Node returns the actor's node.
func (a *Actor) Node() *Node {
	return a.node
}

// --- Actions ---

// AddAction attaches act to the end of the action list. An action attached
// to another actor is moved here.
func (a *Actor) AddAction(act *Action) {
	if act.owner == a {
		return
	}
	if act.owner != nil {
		if globalDebug {
			_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: action %q moved from %q to %q\n",
				act.Name, act.owner.node.Name, a.node.Name)
		}
		act.owner.detach(act)
	}
	act.owner = a
	a.actions = append(a.actions, act)
}

// RemoveAction detaches act immediately. It is not completed or canceled and
// may be attached again later.
func (a *Actor) RemoveAction(act *Action) {
	if act.owner != a {
		return
	}
	a.detach(act)
}

// ClearActions detaches every action.
func (a *Actor) ClearActions() {
	for _, act := range a.actions {
		act.owner = nil
	}
	clear(a.actions)
	a.actions = a.actions[:0]
}

// Actions returns the attached actions in evaluation order. The returned
// slice MUST NOT be mutated by the caller.
func (a *Actor) Actions() []*Action {
	return a.actions
}

// HasActions reports whether any action is attached.
func (a *Actor) HasActions() bool {
	return len(a.actions) > 0
}

// ActionNamed returns the first attached action with the given name, or nil.
func (a *Actor) ActionNamed(name string) *Action {
	for _, act := range a.actions {
		if act.Name == name {
			return act
		}
	}
	return nil
}

func (a *Actor) detach(act *Action) {
	act.owner = nil
	a.actions = removeAction(a.actions, act)
}

// Act advances every attached action by dt seconds in attachment order and
// detaches the ones that complete. Iteration runs over a snapshot, so steps
// may add or remove actions; additions first run on the next call and
// removals take effect at once.
func (a *Actor) Act(dt float64) {
	a.act(dt)
}

// act is Act returning the number of actions that completed.
func (a *Actor) act(dt float64) int {
	if !a.started {
		a.start = Vec2{a.node.X, a.node.Y}
		a.started = true
	}
	if len(a.actions) == 0 {
		return 0
	}

	completed := 0
	a.scratch = append(a.scratch[:0], a.actions...)
	for i, act := range a.scratch {
		a.scratch[i] = nil
		if act.owner != a {
			continue
		}
		a.current = act
		done := act.Advance(a, dt)
		a.current = nil
		if done && act.owner == a {
			a.detach(act)
			completed++
			if a.sceneDone != nil {
				a.sceneDone(a, act)
			}
			if a.OnActionDone != nil {
				a.OnActionDone(act)
			}
		}
	}
	a.scratch = a.scratch[:0]
	return completed
}

// StartPosition returns the anchored position captured on the first Act
// call. ok is false before then.
func (a *Actor) StartPosition() (pos Vec2, ok bool) {
	return a.start, a.started
}

// ResetToStart moves the node back to its StartPosition. No-op before the
// first Act call.
func (a *Actor) ResetToStart() {
	if a.started {
		a.node.X, a.node.Y = a.start.X, a.start.Y
	}
}

// --- Geometry ---

// Position returns alignment point align in anchored space.
func (a *Actor) Position(align Align) Vec2 {
	return Coord(align, a.node)
}

// SetPosition moves the node so alignment point align sits at v.
func (a *Actor) SetPosition(align Align, v Vec2) {
	SetCoord(align, a.node, v)
}

// SetPositionTo moves the node so that its alignment point align coincides
// with other's alignment point otherAlign. See SetPositionTo.
func (a *Actor) SetPositionTo(align Align, other *Actor, otherAlign Align) error {
	return SetPositionTo(align, a.node, otherAlign, other.node)
}

// Size returns the unscaled size.
func (a *Actor) Size() Vec2 {
	return Vec2{a.node.Width, a.node.Height}
}

// SetSize sets the unscaled size about the pivot.
func (a *Actor) SetSize(v Vec2) {
	a.node.Width, a.node.Height = v.X, v.Y
}

// SetSizeAligned sets the unscaled size keeping alignment point align fixed.
func (a *Actor) SetSizeAligned(align Align, v Vec2) {
	SetSizeAligned(align, a.node, v)
}

// ScaledSize returns the size multiplied by the local scale.
func (a *Actor) ScaledSize() Vec2 {
	return ScaledSize(a.node)
}

// Scale returns the local scale.
func (a *Actor) Scale() Vec2 {
	return Vec2{a.node.ScaleX, a.node.ScaleY}
}

// SetScale sets the local scale about the pivot.
func (a *Actor) SetScale(v Vec2) {
	a.node.ScaleX, a.node.ScaleY = v.X, v.Y
}

// ScaleAround sets the local scale keeping localPivot fixed in parent space.
// See ScaleAround for the behavior across differing pivots.
func (a *Actor) ScaleAround(v Vec2, localPivot Vec2) {
	ScaleAround(a.node, v, localPivot)
}

// ScaleAroundAligned sets the local scale keeping alignment point align fixed.
func (a *Actor) ScaleAroundAligned(v Vec2, align Align) {
	ScaleAroundAligned(a.node, v, align)
}

// Rotation returns the rotation in radians.
func (a *Actor) Rotation() float64 {
	return a.node.Rotation
}

// SetRotation sets the rotation in radians.
func (a *Actor) SetRotation(r float64) {
	a.node.Rotation = r
}

// Color returns the color of the first color component (fill, then text),
// or ColorWhite when there is none.
func (a *Actor) Color() Color {
	a.graphicBuf = a.node.graphics(a.graphicBuf[:0])
	if len(a.graphicBuf) == 0 {
		return ColorWhite
	}
	return a.graphicBuf[0].Color
}

// SetColor sets every color component present. Absent components are skipped.
func (a *Actor) SetColor(c Color) {
	a.graphicBuf = a.node.graphics(a.graphicBuf[:0])
	for _, g := range a.graphicBuf {
		g.Color = c
	}
}

// Alpha returns the AlphaGroup alpha if present, otherwise the alpha of the
// first color component, otherwise 1.
func (a *Actor) Alpha() float64 {
	if a.node.Group != nil {
		return a.node.Group.Alpha
	}
	a.graphicBuf = a.node.graphics(a.graphicBuf[:0])
	if len(a.graphicBuf) == 0 {
		return 1
	}
	return a.graphicBuf[0].Color.A
}

// SetAlpha sets the AlphaGroup alpha when the node has one, since the group
// already multiplies the node's own graphics. Otherwise it sets the alpha of
// every color component present.
func (a *Actor) SetAlpha(alpha float64) {
	if a.node.Group != nil {
		a.node.Group.Alpha = alpha
		return
	}
	a.graphicBuf = a.node.graphics(a.graphicBuf[:0])
	for _, g := range a.graphicBuf {
		g.Color.A = alpha
	}
}

// Active reports whether the node is visible.
func (a *Actor) Active() bool {
	return a.node.Visible
}

// SetActive shows or hides the node. Scene.Tick skips actors in inactive
// subtrees.
func (a *Actor) SetActive(v bool) {
	a.node.Visible = v
}

// ActiveInHierarchy reports whether the node and all of its ancestors are
// visible.
func (a *Actor) ActiveInHierarchy() bool {
	return a.node.visibleInHierarchy()
}

// Enabled reports whether the node is interactable.
func (a *Actor) Enabled() bool {
	return a.node.Interactable
}

// SetEnabled sets whether the node is interactable.
func (a *Actor) SetEnabled(v bool) {
	a.node.Interactable = v
}

// Touchable returns the hit-test mode.
func (a *Actor) Touchable() Touchable {
	return a.touchable
}

// SetTouchable sets the hit-test mode used by Scene.HitTest.
func (a *Actor) SetTouchable(t Touchable) {
	a.touchable = t
}

// ContainsScreenPoint reports whether screen point p falls inside the node.
func (a *Actor) ContainsScreenPoint(p Vec2) bool {
	return ContainsScreenPoint(a.node, p)
}
