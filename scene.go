package canopy

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, action lifecycle events are forwarded to it.
type EntityStore interface {
	EmitEvent(event ActionEvent)
}

// ActionEventType identifies what happened to an action.
type ActionEventType uint8

const (
	ActionCompleted ActionEventType = iota // the action finished by step or time
	ActionCanceled                         // the action finished because it was canceled
)

// ActionEvent reports a top-level action leaving an actor's list.
type ActionEvent struct {
	Type       ActionEventType
	NodeID     uint32
	NodeName   string
	ActionName string
}

// Scene is the top-level object that owns the node tree and cameras, and
// ticks every actor in it once per frame.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	cameras    []*Camera
	updateFunc func() error

	actorBuf []*Actor
	hitBuf   []*Actor
	stats    tickStats
}

// NewScene creates a new scene whose root is a canvas.
func NewScene() *Scene {
	s := &Scene{}
	s.root = NewCanvas("root", nil)
	s.root.Canvas.scene = s
	return s
}

// Root returns the scene's root canvas node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc sets a callback run at the start of every Update, before
// actors are ticked. Returning an error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update runs the update callback and ticks the scene by one frame at the
// current ebiten TPS.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// Tick advances every actor in an active subtree by dt seconds, then lets
// cameras follow and clamp. Actors are collected in tree order before any of
// them acts, so actions may reparent nodes during the tick.
func (s *Scene) Tick(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.actorBuf = collectActors(s.root, s.actorBuf[:0])
	completed, live := 0, 0
	for i, a := range s.actorBuf {
		s.actorBuf[i] = nil
		completed += s.tickActor(a, dt)
		live += len(a.actions)
	}

	for _, cam := range s.cameras {
		cam.update()
	}

	if s.debug {
		s.stats = tickStats{
			actors:    len(s.actorBuf),
			live:      live,
			completed: completed,
			tickTime:  time.Since(t0),
		}
		s.debugLog(s.stats)
	}
	s.actorBuf = s.actorBuf[:0]
}

// tickActor advances one actor, forwarding completion events to the store.
func (s *Scene) tickActor(a *Actor, dt float64) int {
	if s.store == nil {
		return a.act(dt)
	}
	a.sceneDone = s.emitActionEvent
	n := a.act(dt)
	a.sceneDone = nil
	return n
}

func (s *Scene) emitActionEvent(a *Actor, act *Action) {
	typ := ActionCompleted
	if act.Canceled() {
		typ = ActionCanceled
	}
	s.store.EmitEvent(ActionEvent{
		Type:       typ,
		NodeID:     a.node.ID,
		NodeName:   a.node.Name,
		ActionName: act.Name,
	})
}

// collectActors appends the actors of n's active subtree in depth-first order.
func collectActors(n *Node, buf []*Actor) []*Actor {
	if !n.Visible {
		return buf
	}
	if n.actor != nil && !n.actor.ExternalTick {
		buf = append(buf, n.actor)
	}
	for _, child := range n.children {
		buf = collectActors(child, buf)
	}
	return buf
}

// --- Hit testing ---

// collectTouchable walks the tree in painter order, appending actors that
// may be hit. Invisible or non-interactable subtrees are skipped, and each
// actor's Touchable mode decides whether it and its children take part.
func collectTouchable(n *Node, buf []*Actor) []*Actor {
	if !n.Visible || !n.Interactable {
		return buf
	}
	mode := TouchEnabled
	if n.actor != nil {
		mode = n.actor.touchable
	}
	if mode == TouchDisabled {
		return buf
	}
	if n.actor != nil && (mode == TouchEnabled || mode == TouchParentOnly) {
		buf = append(buf, n.actor)
	}
	if mode == TouchParentOnly {
		return buf
	}
	for _, child := range n.children {
		buf = collectTouchable(child, buf)
	}
	return buf
}

// HitTest returns the topmost actor containing the screen point p, or nil.
func (s *Scene) HitTest(p Vec2) *Actor {
	s.hitBuf = collectTouchable(s.root, s.hitBuf[:0])
	var hit *Actor
	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		if s.hitBuf[i].ContainsScreenPoint(p) {
			hit = s.hitBuf[i]
			break
		}
	}
	clear(s.hitBuf)
	s.hitBuf = s.hitBuf[:0]
	return hit
}

// PointerActor hit-tests the current mouse cursor position.
func (s *Scene) PointerActor() *Actor {
	mx, my := ebiten.CursorPosition()
	return s.HitTest(Vec2{float64(mx), float64(my)})
}

// --- Cameras ---

// NewCamera creates a camera with the given viewport and adds it to the
// scene. The first camera added is the main camera.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// MainCamera returns the first camera, or nil. Canvases without a camera of
// their own project through it.
func (s *Scene) MainCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-tick stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// and actor operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
