package canopy

import (
	"math"
	"testing"
)

// runActions ticks actor until it has no actions left and returns the number
// of ticks taken.
func runActions(t *testing.T, actor *Actor, dt float64, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		actor.Act(dt)
		if !actor.HasActions() {
			return i
		}
	}
	t.Fatalf("actions still attached after %d ticks", limit)
	return 0
}

func TestMoveToScenario(t *testing.T) {
	const dt = 1.0 / 64
	actor := NewActor(newSquare())
	actor.AddAction(MoveTo(2, Vec2{10, 0}, nil))

	for range 64 {
		actor.Act(dt)
	}
	if x := actor.Node().X; math.Abs(x-5) > 0.1 {
		t.Errorf("X after 1s = %v, want ≈5", x)
	}

	for range 64 {
		actor.Act(dt)
	}
	if !actor.HasActions() {
		t.Fatal("MoveTo removed before observing its end time")
	}
	actor.Act(dt)
	if actor.HasActions() {
		t.Fatal("MoveTo still attached after reaching its end time")
	}
	if got := actor.Position(AlignOrigin); got != (Vec2{10, 0}) {
		t.Errorf("final position = %v, want exactly (10,0)", got)
	}

	actor.Node().X = 3
	actor.Act(dt)
	if actor.Node().X != 3 {
		t.Error("finished MoveTo still writing position")
	}
}

func TestMoveToAligned(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(MoveToAligned(0.5, AlignTopRight, Vec2{100, 100}, nil))
	runActions(t, actor, 0.25, 100)
	assertVec(t, "topRight", actor.Position(AlignTopRight), Vec2{100, 100})
	assertVec(t, "origin", actor.Position(AlignOrigin), Vec2{50, 50})
}

func TestMoveBy(t *testing.T) {
	actor := NewActor(newSquare())
	actor.Node().X, actor.Node().Y = 5, 5
	actor.AddAction(MoveBy(1, Vec2{10, -5}, nil))
	runActions(t, actor, 0.25, 100)
	assertVec(t, "end", actor.Position(AlignOrigin), Vec2{15, 0})
}

func TestMoveByMeasuresFromStart(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(Sequence(Wait(0.5), MoveBy(0.5, Vec2{1, 1}, nil)))
	actor.Act(0.25)
	actor.Node().X = 100
	runActions(t, actor, 0.25, 100)
	assertVec(t, "end", actor.Position(AlignOrigin), Vec2{101, 1})
}

func TestMoveToEased(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(MoveTo(1, Vec2{10, 0}, QuadIn))
	actor.Act(0.5)
	actor.Act(0.5)
	// Second tick observes percent 0.5.
	assertNear(t, "X at half", actor.Node().X, 10*QuadIn(0.5))
	runActions(t, actor, 0.5, 10)
	assertNear(t, "X at end", actor.Node().X, 10)
}

func TestScaleTo(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(ScaleTo(1, Vec2{2, 3}, nil))
	runActions(t, actor, 0.25, 100)
	assertVec(t, "scale", actor.Scale(), Vec2{2, 3})
	assertVec(t, "origin unchanged", actor.Position(AlignOrigin), Vec2{})
}

func TestScaleAroundTo(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(ScaleAroundTo(1, Vec2{2, 2}, AlignBottomLeft, nil))
	for actor.HasActions() {
		actor.Act(0.25)
		assertVec(t, "bottomLeft pinned", actor.Position(AlignBottomLeft), Vec2{-50, -50})
	}
	assertVec(t, "scale", actor.Scale(), Vec2{2, 2})
}

func TestSizeTo(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(SizeTo(1, Vec2{20, 40}, nil))
	runActions(t, actor, 0.25, 100)
	assertVec(t, "size", actor.Size(), Vec2{20, 40})
	assertVec(t, "origin unchanged", actor.Position(AlignOrigin), Vec2{})
}

func TestSizeToAligned(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(SizeToAligned(1, AlignBottomLeft, Vec2{200, 50}, nil))
	runActions(t, actor, 0.25, 100)
	assertVec(t, "size", actor.Size(), Vec2{200, 50})
	assertVec(t, "bottomLeft kept", actor.Position(AlignBottomLeft), Vec2{-50, -50})
}

func TestFadeOutImage(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(FadeOut(0.5, nil))
	actor.Act(0.25)
	actor.Act(0.25)
	assertNear(t, "alpha halfway", actor.Alpha(), 0.5)
	runActions(t, actor, 0.25, 10)
	assertNear(t, "alpha", actor.Alpha(), 0)
	assertNear(t, "fill alpha", actor.Node().Fill.Color.A, 0)
	assertNear(t, "red untouched", actor.Node().Fill.Color.R, 1)
}

func TestAlphaWithoutComponents(t *testing.T) {
	actor := NewActor(NewContainer("bare"))
	actor.AddAction(Alpha(0.5, 0.2, nil))
	runActions(t, actor, 0.25, 10)
	assertNear(t, "alpha", actor.Alpha(), 1)
}

func TestAlphaGroupAndGraphics(t *testing.T) {
	n := NewGroup("panel")
	n.Fill = &Graphic{Color: ColorWhite}
	child := NewImage("child", 5, 5, ColorWhite)
	n.AddChild(child)
	actor := NewActor(n)

	actor.AddAction(Alpha(0.5, 0.25, nil))
	runActions(t, actor, 0.25, 10)
	assertNear(t, "group alpha", n.Group.Alpha, 0.25)
	assertNear(t, "own fill alpha", n.Fill.Color.A, 1)
	assertNear(t, "child alpha", child.Fill.Color.A, 1)
	assertNear(t, "actor alpha", actor.Alpha(), 0.25)
}

func TestFillAlphaAppliesGroupOnce(t *testing.T) {
	panel := NewGroup("panel")
	panel.Fill = &Graphic{Color: ColorWhite}
	child := NewImage("child", 5, 5, Color{1, 1, 1, 0.5})
	panel.AddChild(child)
	actor := NewActor(panel)

	// A linear fade to 0 should draw the panel at 1-p, not (1-p)^2.
	actor.AddAction(FadeOut(1, nil))
	for i, want := range []float64{1, 0.75, 0.5, 0.25, 0} {
		actor.Act(0.25)
		assertNear(t, "panel drawn alpha", fillAlpha(panel, 1), want)
		if i == 2 {
			assertNear(t, "child drawn alpha", fillAlpha(child, panel.Group.Alpha), 0.25)
		}
	}
}

func TestFadeIn(t *testing.T) {
	n := NewLabel("title", "hello", Color{1, 1, 1, 0})
	actor := NewActor(n)
	actor.AddAction(FadeIn(1, nil))
	runActions(t, actor, 0.25, 10)
	assertNear(t, "text alpha", n.Text.Color.A, 1)
}

func TestColorToTintsEveryComponent(t *testing.T) {
	n := newSquare()
	n.Text = &Text{Content: "x", Graphic: Graphic{Color: ColorWhite}}
	actor := NewActor(n)
	red := Color{1, 0, 0, 1}

	actor.AddAction(ColorTo(1, red, nil))
	actor.Act(0.5)
	actor.Act(0.5)
	assertNear(t, "green halfway", n.Fill.Color.G, 0.5)
	runActions(t, actor, 0.5, 10)
	if n.Fill.Color != red || n.Text.Color != red {
		t.Errorf("colors = %v / %v, want %v", n.Fill.Color, n.Text.Color, red)
	}
	if actor.Color() != red {
		t.Errorf("Color() = %v", actor.Color())
	}
}

func TestColorWithoutComponents(t *testing.T) {
	actor := NewActor(NewContainer("bare"))
	if actor.Color() != ColorWhite {
		t.Errorf("Color() = %v, want white", actor.Color())
	}
	actor.AddAction(ColorTo(0.25, Color{0, 0, 0, 1}, nil))
	runActions(t, actor, 0.25, 10)
}

func TestRotateTo(t *testing.T) {
	actor := NewActor(newSquare())
	actor.SetRotation(1)
	actor.AddAction(RotateTo(1, -1, nil))
	actor.Act(0.5)
	actor.Act(0.5)
	assertNear(t, "halfway", actor.Rotation(), 0)
	runActions(t, actor, 0.5, 10)
	assertNear(t, "rotation", actor.Rotation(), -1)
}

func TestShowHide(t *testing.T) {
	actor := NewActor(newSquare())
	actor.AddAction(Hide())
	actor.Act(0.1)
	if actor.Active() {
		t.Fatal("Hide did not deactivate")
	}
	actor.AddAction(Show())
	actor.Act(0.1)
	if !actor.Active() {
		t.Error("Show did not activate")
	}
	if actor.HasActions() {
		t.Error("Show/Hide still attached")
	}
}

func TestMotionRestartRecapturesStart(t *testing.T) {
	actor := NewActor(newSquare())
	move := MoveBy(0.5, Vec2{10, 0}, nil)
	actor.AddAction(Repeat(1, move))
	runActions(t, actor, 0.25, 100)
	assertNear(t, "X after two runs", actor.Node().X, 20)
}
