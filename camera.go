package canopy

import "math"

// Camera projects world space onto a screen viewport.
type Camera struct {
	// X and Y are the world point shown at the viewport center.
	X, Y float64
	// Zoom scales world units to pixels. 1 means no zoom.
	Zoom float64
	// Rotation of the view in radians.
	Rotation float64
	// Viewport is the screen rectangle the camera renders into.
	Viewport Rect
	// FlipY maps world +Y to screen up. Screen space grows downward, so set
	// this when AlignTop should render above AlignBottom.
	FlipY bool
	// Limits, when non-nil, keeps the visible area inside this world
	// rectangle. A limit smaller than the view centers the camera on it.
	Limits *Rect

	follow       *Actor
	followAlign  Align
	followOffset Vec2
	followLerp   float64

	view, invView [6]float64
	built         viewKey
	valid         bool
}

// viewKey records the fields the cached view matrix was built from.
type viewKey struct {
	x, y, zoom, rot float64
	viewport        Rect
	flip            bool
}

// NewCamera creates a camera centered on the world origin with the given
// viewport. Attach it to a Canvas, or use Scene.NewCamera to register a main
// camera.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// Follow makes the camera track alignment point align of actor's node, plus
// offset, after every Scene.Tick. lerp is the fraction of the remaining
// distance covered per tick: 1 snaps, smaller values trail behind.
func (c *Camera) Follow(actor *Actor, align Align, offset Vec2, lerp float64) {
	c.follow = actor
	c.followAlign = align
	c.followOffset = offset
	c.followLerp = clamp01(lerp)
}

// Unfollow stops tracking.
func (c *Camera) Unfollow() {
	c.follow = nil
}

// Following returns the tracked actor, or nil.
func (c *Camera) Following() *Actor {
	return c.follow
}

// update applies follow and limits. Scene.Tick calls it after the actors
// have acted so the camera sees this tick's positions.
func (c *Camera) update() {
	if c.follow != nil {
		n := c.follow.node
		if n.IsDisposed() {
			c.follow = nil
		} else {
			target := LocalToWorld(n, LocalAlignPoint(c.followAlign, n)).Add(c.followOffset)
			c.X += (target.X - c.X) * c.followLerp
			c.Y += (target.Y - c.Y) * c.followLerp
		}
	}
	if c.Limits != nil {
		c.X, c.Y = c.clamp(c.X, c.Y)
	}
}

// clamp restricts a camera center so the visible area stays inside Limits.
// Rotation is ignored.
func (c *Camera) clamp(x, y float64) (float64, float64) {
	r := *c.Limits
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)
	clampAxis := func(v, lo, size, half float64) float64 {
		if size <= 2*half {
			return lo + size/2
		}
		return math.Max(lo+half, math.Min(v, lo+size-half))
	}
	return clampAxis(x, r.X, r.Width, halfW), clampAxis(y, r.Y, r.Height, halfH)
}

// viewMatrix returns the cached world-to-screen matrix, rebuilding it when
// any field it depends on changed.
//
//	view = Translate(center) * Scale(zoom, ±zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) viewMatrix() [6]float64 {
	key := viewKey{c.X, c.Y, c.Zoom, c.Rotation, c.Viewport, c.FlipY}
	if c.valid && key == c.built {
		return c.view
	}
	c.built, c.valid = key, true

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	sin, cos := math.Sincos(-c.Rotation)
	fy := 1.0
	if c.FlipY {
		fy = -1
	}

	m := [6]float64{1, 0, 0, 1, -c.X, -c.Y}
	m = multiplyAffine([6]float64{cos, sin, -sin, cos, 0, 0}, m)
	m = multiplyAffine([6]float64{c.Zoom, 0, 0, fy * c.Zoom, 0, 0}, m)
	m = multiplyAffine([6]float64{1, 0, 0, 1, cx, cy}, m)

	c.view = m
	c.invView = invertAffine(m)
	return c.view
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.viewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.viewMatrix()
	return transformPoint(c.invView, sx, sy)
}

// viewOf returns the camera's view matrix, or identity for a nil camera.
func viewOf(c *Camera) [6]float64 {
	if c == nil {
		return identityTransform
	}
	return c.viewMatrix()
}

// --- Camera actions ---

// cameraStep pans and zooms a camera. Either part may be disabled. Start
// values are captured on the first step.
type cameraStep struct {
	cam    *Camera
	to     Vec2
	zoom   float64
	pan    bool
	zoomTo bool
	fn     Interpolation

	from     Vec2
	fromZoom float64
}

func (s *cameraStep) Step(a *Action) bool {
	if a.IsFirstStep() {
		s.from = Vec2{s.cam.X, s.cam.Y}
		s.fromZoom = s.cam.Zoom
	}
	t := s.fn.apply(a.Percent())
	if s.pan {
		p := s.from.Lerp(s.to, t)
		s.cam.X, s.cam.Y = p.X, p.Y
	}
	if s.zoomTo {
		s.cam.Zoom = s.fromZoom + (s.zoom-s.fromZoom)*t
	}
	return false
}

// CameraTo returns an action that pans cam to center on world point to over
// d seconds. It ignores the geometry of the actor running it, so any actor
// can host it. A camera following an actor keeps following, so Unfollow
// first.
func CameraTo(cam *Camera, d float64, to Vec2, fn Interpolation) *Action {
	return NewAction(d, &cameraStep{cam: cam, to: to, pan: true, fn: fn})
}

// ZoomTo returns an action that animates cam's zoom to zoom over d seconds.
func ZoomTo(cam *Camera, d, zoom float64, fn Interpolation) *Action {
	return NewAction(d, &cameraStep{cam: cam, zoom: zoom, zoomTo: true, fn: fn})
}

// FollowActor returns an instant action that makes cam follow the actor
// running it, centered, with the given lerp.
func FollowActor(cam *Camera, lerp float64) *Action {
	return Call(func(a *Actor) {
		cam.Follow(a, AlignCenter, Vec2{}, lerp)
	})
}
