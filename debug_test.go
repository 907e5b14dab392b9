package canopy

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewImage("child", 10, 10, ColorWhite)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(NewImage("child", 10, 10, ColorWhite))
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewImage("child", 10, 10, ColorWhite)
	child.Dispose()
	s.Root().AddChild(child)
	if child.Parent != s.Root() {
		t.Error("release mode AddChild of a disposed node should still attach it")
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		current := s.Root()
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer(fmt.Sprintf("depth_%d", i))
			current.AddChild(child)
			current = child
		}
	})

	if !strings.Contains(output, "warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		parent := NewContainer("many_children")
		s.Root().AddChild(parent)
		for i := 0; i < debugMaxChildCount+1; i++ {
			parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
		}
	})

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_TickStats(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	a := newTestActor("a")
	s.Root().AddChild(a.Node())
	a.AddAction(Wait(0))
	a.AddAction(Wait(10))

	output := captureStderr(t, func() { s.Tick(0.1) })

	if s.stats.actors != 1 || s.stats.completed != 1 || s.stats.live != 1 {
		t.Errorf("stats = %+v, want 1 actor, 1 completed, 1 live", s.stats)
	}
	if !strings.Contains(output, "[canopy] tick:") || !strings.Contains(output, "completed: 1") {
		t.Errorf("expected tick stats in stderr, got: %q", output)
	}
}

func TestReleaseMode_NoTickLog(t *testing.T) {
	s := NewScene()
	output := captureStderr(t, func() { s.Tick(0.1) })
	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}

func TestDebugMode_MovedActionWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	a1 := newTestActor("one")
	a2 := newTestActor("two")
	act := Wait(1)
	act.Name = "shared"
	a1.AddAction(act)

	output := captureStderr(t, func() { a2.AddAction(act) })
	if !strings.Contains(output, `action "shared" moved from "one" to "two"`) {
		t.Errorf("expected move warning in stderr, got: %q", output)
	}
}
