package canopy

// Motion actions capture the property they animate on their first step and
// write an interpolated value back every tick until Percent reaches 1. A nil
// Interpolation is linear.

// moveStep animates the position of one alignment point.
type moveStep struct {
	align    Align
	to       Vec2
	by       Vec2
	relative bool
	fn       Interpolation

	from   Vec2
	target Vec2
}

func (m *moveStep) Step(a *Action) bool {
	actor := a.Actor()
	if a.IsFirstStep() {
		m.from = actor.Position(m.align)
		m.target = m.to
		if m.relative {
			m.target = m.from.Add(m.by)
		}
	}
	actor.SetPosition(m.align, m.from.Lerp(m.target, m.fn.apply(a.Percent())))
	return false
}

// MoveTo returns an action that moves the actor's origin to `to` over d
// seconds.
func MoveTo(d float64, to Vec2, fn Interpolation) *Action {
	return MoveToAligned(d, AlignOrigin, to, fn)
}

// MoveToAligned returns an action that moves alignment point align of the
// actor to `to` over d seconds.
func MoveToAligned(d float64, align Align, to Vec2, fn Interpolation) *Action {
	return NewAction(d, &moveStep{align: align, to: to, fn: fn})
}

// MoveBy returns an action that moves the actor by delta over d seconds,
// measured from wherever it is when the action starts.
func MoveBy(d float64, delta Vec2, fn Interpolation) *Action {
	return NewAction(d, &moveStep{align: AlignOrigin, by: delta, relative: true, fn: fn})
}

// scaleStep animates local scale, optionally around a fixed point.
type scaleStep struct {
	to     Vec2
	align  Align
	around bool
	fn     Interpolation

	from Vec2
}

func (s *scaleStep) Step(a *Action) bool {
	actor := a.Actor()
	if a.IsFirstStep() {
		s.from = actor.Scale()
	}
	v := s.from.Lerp(s.to, s.fn.apply(a.Percent()))
	if s.around {
		actor.ScaleAroundAligned(v, s.align)
	} else {
		actor.SetScale(v)
	}
	return false
}

// ScaleTo returns an action that scales the actor to `to` over d seconds,
// about its pivot.
func ScaleTo(d float64, to Vec2, fn Interpolation) *Action {
	return NewAction(d, &scaleStep{to: to, fn: fn})
}

// ScaleAroundTo returns an action that scales the actor to `to` over d
// seconds while keeping alignment point align fixed.
func ScaleAroundTo(d float64, to Vec2, align Align, fn Interpolation) *Action {
	return NewAction(d, &scaleStep{to: to, align: align, around: true, fn: fn})
}

// sizeStep animates unscaled size, keeping one alignment point fixed.
type sizeStep struct {
	to    Vec2
	align Align
	fn    Interpolation

	from Vec2
}

func (s *sizeStep) Step(a *Action) bool {
	actor := a.Actor()
	if a.IsFirstStep() {
		s.from = actor.Size()
	}
	actor.SetSizeAligned(s.align, s.from.Lerp(s.to, s.fn.apply(a.Percent())))
	return false
}

// SizeTo returns an action that resizes the actor to `to` over d seconds,
// about its pivot.
func SizeTo(d float64, to Vec2, fn Interpolation) *Action {
	return NewAction(d, &sizeStep{to: to, align: AlignOrigin, fn: fn})
}

// SizeToAligned returns an action that resizes the actor to `to` over d
// seconds while keeping alignment point align fixed.
func SizeToAligned(d float64, align Align, to Vec2, fn Interpolation) *Action {
	return NewAction(d, &sizeStep{to: to, align: align, fn: fn})
}

type alphaStep struct {
	to float64
	fn Interpolation

	from float64
}

func (s *alphaStep) Step(a *Action) bool {
	actor := a.Actor()
	if a.IsFirstStep() {
		s.from = actor.Alpha()
	}
	actor.SetAlpha(s.from + (s.to-s.from)*s.fn.apply(a.Percent()))
	return false
}

// Alpha returns an action that fades the actor's alpha to `to` over d
// seconds. Actors with no color or alpha components are unaffected.
func Alpha(d, to float64, fn Interpolation) *Action {
	return NewAction(d, &alphaStep{to: to, fn: fn})
}

// FadeIn returns an action that fades alpha to 1 over d seconds.
func FadeIn(d float64, fn Interpolation) *Action {
	return Alpha(d, 1, fn)
}

// FadeOut returns an action that fades alpha to 0 over d seconds.
func FadeOut(d float64, fn Interpolation) *Action {
	return Alpha(d, 0, fn)
}

type colorStep struct {
	to Color
	fn Interpolation

	from Color
}

func (s *colorStep) Step(a *Action) bool {
	actor := a.Actor()
	if a.IsFirstStep() {
		s.from = actor.Color()
	}
	actor.SetColor(lerpColor(s.from, s.to, s.fn.apply(a.Percent())))
	return false
}

// ColorTo returns an action that tints every color component of the actor
// to `to` over d seconds.
func ColorTo(d float64, to Color, fn Interpolation) *Action {
	return NewAction(d, &colorStep{to: to, fn: fn})
}

type rotateStep struct {
	to float64
	fn Interpolation

	from float64
}

func (s *rotateStep) Step(a *Action) bool {
	actor := a.Actor()
	if a.IsFirstStep() {
		s.from = actor.Rotation()
	}
	actor.SetRotation(s.from + (s.to-s.from)*s.fn.apply(a.Percent()))
	return false
}

// RotateTo returns an action that rotates the actor to `to` radians over d
// seconds.
func RotateTo(d, to float64, fn Interpolation) *Action {
	return NewAction(d, &rotateStep{to: to, fn: fn})
}

// Show returns an action that makes the actor active and completes.
func Show() *Action {
	return Call(func(actor *Actor) { actor.SetActive(true) })
}

// Hide returns an action that makes the actor inactive and completes.
func Hide() *Action {
	return Call(func(actor *Actor) { actor.SetActive(false) })
}
