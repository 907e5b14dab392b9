package canopy

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one node of a JSON action tree.
type scriptStep struct {
	Kind     string       `json:"kind"`
	Name     string       `json:"name,omitempty"`
	Time     float64      `json:"time,omitempty"`
	Align    string       `json:"align,omitempty"`
	X        float64      `json:"x,omitempty"`
	Y        float64      `json:"y,omitempty"`
	Value    float64      `json:"value,omitempty"`
	Count    int          `json:"count,omitempty"`
	Forever  bool         `json:"forever,omitempty"`
	Ease     string       `json:"ease,omitempty"`
	Children []scriptStep `json:"children,omitempty"`
}

// ActionScript is a parsed, validated JSON description of an action tree.
//
//	{"kind": "sequence", "children": [
//		{"kind": "moveTo", "time": 0.5, "x": 100, "y": 0, "ease": "quadOut"},
//		{"kind": "wait", "time": 1},
//		{"kind": "fadeOut", "time": 0.25}
//	]}
type ActionScript struct {
	root scriptStep
}

// LoadActionScript parses a JSON action tree. Unknown kinds, easing names,
// and alignments are reported here rather than at Build time.
func LoadActionScript(jsonData []byte) (*ActionScript, error) {
	var root scriptStep
	if err := json.Unmarshal(jsonData, &root); err != nil {
		return nil, fmt.Errorf("parse action script: %w", err)
	}
	if err := validateStep(&root, "root"); err != nil {
		return nil, fmt.Errorf("parse action script: %w", err)
	}
	return &ActionScript{root: root}, nil
}

// Build returns a fresh action tree. Each call allocates new actions, so one
// script can drive many actors.
func (s *ActionScript) Build() *Action {
	return buildStep(&s.root)
}

func validateStep(st *scriptStep, path string) error {
	switch st.Kind {
	case "sequence", "parallel":
	case "repeat":
		if len(st.Children) != 1 {
			return fmt.Errorf("%s: repeat needs exactly one child, got %d", path, len(st.Children))
		}
	case "wait", "moveTo", "moveBy", "scaleTo", "sizeTo", "alpha", "fadeIn", "fadeOut", "rotateTo":
		if len(st.Children) != 0 {
			return fmt.Errorf("%s: %s takes no children", path, st.Kind)
		}
	case "":
		return fmt.Errorf("%s: missing kind", path)
	default:
		return fmt.Errorf("%s: unknown kind %q", path, st.Kind)
	}
	if st.Time < 0 {
		return fmt.Errorf("%s: negative time %v", path, st.Time)
	}
	if _, ok := LookupInterpolation(st.Ease); !ok {
		return fmt.Errorf("%s: unknown ease %q", path, st.Ease)
	}
	if st.Align != "" {
		if _, ok := ParseAlign(st.Align); !ok {
			return fmt.Errorf("%s: unknown align %q", path, st.Align)
		}
	}
	for i := range st.Children {
		if err := validateStep(&st.Children[i], fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func buildStep(st *scriptStep) *Action {
	fn, _ := LookupInterpolation(st.Ease)
	align, _ := ParseAlign(st.Align)
	to := Vec2{st.X, st.Y}

	var a *Action
	switch st.Kind {
	case "sequence":
		a = Sequence(buildChildren(st.Children)...)
	case "parallel":
		a = Parallel(buildChildren(st.Children)...)
	case "repeat":
		child := buildStep(&st.Children[0])
		if st.Forever {
			a = RepeatForever(child)
		} else {
			a = Repeat(st.Count, child)
		}
	case "wait":
		a = Wait(st.Time)
	case "moveTo":
		a = MoveToAligned(st.Time, align, to, fn)
	case "moveBy":
		a = MoveBy(st.Time, to, fn)
	case "scaleTo":
		a = ScaleTo(st.Time, to, fn)
	case "sizeTo":
		a = SizeToAligned(st.Time, align, to, fn)
	case "alpha":
		a = Alpha(st.Time, st.Value, fn)
	case "fadeIn":
		a = FadeIn(st.Time, fn)
	case "fadeOut":
		a = FadeOut(st.Time, fn)
	case "rotateTo":
		a = RotateTo(st.Time, st.Value, fn)
	}
	a.Name = st.Name
	return a
}

func buildChildren(steps []scriptStep) []*Action {
	out := make([]*Action, len(steps))
	for i := range steps {
		out[i] = buildStep(&steps[i])
	}
	return out
}
