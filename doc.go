// Package canopy is a frame-driven action system for rectangle trees, with an
// [Ebitengine] host for drawing and input.
//
// Canopy provides the geometry model, alignment helpers, and composable
// timed actions that UI and 2D scenes need to animate rectangles: move a
// panel's top-right corner to a point, scale a button around its bottom-left
// corner, fade a group out after everything else has finished.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := canopy.NewScene()
//	box := canopy.NewImage("box", 80, 40, canopy.ColorWhite)
//	scene.Root().AddChild(box)
//
//	actor := canopy.NewActor(box)
//	actor.AddAction(canopy.Sequence(
//		canopy.MoveTo(0.5, canopy.Vec2{X: 100, Y: 0}, canopy.QuadOut),
//		canopy.FadeOut(0.25, nil),
//	))
//
//	canopy.Run(scene, canopy.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly, or skip ebiten entirely and call
// [Scene.Tick] or [Actor.Act] from your own loop.
//
// # Rectangles and alignment
//
// Every element is a [Node]: an anchored position, an unscaled size, a
// normalized pivot and anchor, a local scale, and a rotation. X and Y are the
// pivot's offset from the anchor point inside the parent. Local space has its
// origin at the pivot and is unscaled.
//
// An [Align] names one point of the rectangle's axis-aligned scaled bounds:
// the origin (pivot), a corner, an edge midpoint, or the center. Top is the
// +Y edge. [Coord] reads that point in anchored space and [SetCoord] moves
// the node so the point lands somewhere; the two are exact inverses:
//
//	canopy.SetCoord(canopy.AlignTopRight, box, canopy.Vec2{X: 320, Y: 240})
//
// [SetPositionTo] aligns a point of one node with a point of another across
// parents. Both must share a coordinate root (see [Canvas]); otherwise it
// returns an error wrapping [ErrCrossHierarchy].
//
// # Actions
//
// An [Action] is one unit of time-driven behavior. Each tick it runs its
// [Step] with the current [Action.Percent], then completes when the step says
// so or its elapsed time has reached MaxTime. Percent is sampled before time
// advances, so a one-second action observes 1.0 on the tick after a second
// of delta time has been fed in.
//
// Combinators compose actions: [Sequence], [Parallel], [Repeat],
// [RepeatForever], [Delay], [Target], and [After]. [StateHandler] drives a
// small state machine whose default state loops. Motion actions animate
// geometry and color: [MoveTo], [MoveBy], [ScaleTo], [ScaleAroundTo],
// [SizeTo], [Alpha], [FadeIn], [FadeOut], [ColorTo], and [RotateTo].
//
// Easing is an [Interpolation]. Presets wrap [gween] easing functions; use
// [FromEase] for any other, or [CubicBezier] for CSS-style curves.
//
// # Action scripts
//
// [LoadActionScript] parses a JSON description of an action tree, so designers
// can tune timings without recompiling:
//
//	script, err := canopy.LoadActionScript(data)
//	if err != nil {
//		return err
//	}
//	actor.AddAction(script.Build())
//
// # Cameras and hit testing
//
// A [Camera] projects world space to a screen viewport. Canvases may carry
// their own camera; otherwise the scene's main camera is used. Set
// [Camera.FlipY] so +Y renders upward. [Camera.Follow] tracks an actor, and
// [CameraTo] and [ZoomTo] animate the camera as ordinary actions:
//
//	intro.AddAction(canopy.Sequence(
//		canopy.CameraTo(cam, 1, canopy.Vec2{X: 400}, canopy.SineInOut),
//		canopy.FollowActor(cam, 0.1),
//	))
//
// [Scene.HitTest] returns the topmost actor under a screen point, honoring
// each actor's [Touchable] mode.
//
// # ECS integration
//
// The ecs sub-package forwards action completion events into a Donburi world
// and can tick actors from ECS systems.
//
// # Debug mode
//
// [Scene.SetDebugMode] turns on disposed-node panics, tree depth and child
// count warnings, and per-tick stats on stderr.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package canopy
