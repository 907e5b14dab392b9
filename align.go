package canopy

// Align addresses one anchor point of a rectangle. AlignOrigin is the point
// defined by the rectangle's pivot; the others name the corners, edge
// midpoints, and center of its axis-aligned bounds. Top is the +Y edge.
type Align uint8

const (
	AlignOrigin Align = iota // the pivot point (anchored position)
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
	AlignCenter
	AlignBottomLeft
	AlignTopLeft
	AlignBottomRight
	AlignTopRight
)

var alignNames = [...]string{
	AlignOrigin:      "origin",
	AlignLeft:        "left",
	AlignRight:       "right",
	AlignTop:         "top",
	AlignBottom:      "bottom",
	AlignCenter:      "center",
	AlignBottomLeft:  "bottomLeft",
	AlignTopLeft:     "topLeft",
	AlignBottomRight: "bottomRight",
	AlignTopRight:    "topRight",
}

// String returns the lower camel name of the alignment.
func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "unknown"
}

// ParseAlign returns the Align named s. The second result is false when s
// names no alignment.
func ParseAlign(s string) (Align, bool) {
	for i, name := range alignNames {
		if name == s {
			return Align(i), true
		}
	}
	return AlignOrigin, false
}

// Alignments lists every alignment in declaration order.
var Alignments = []Align{
	AlignOrigin, AlignLeft, AlignRight, AlignTop, AlignBottom, AlignCenter,
	AlignBottomLeft, AlignTopLeft, AlignBottomRight, AlignTopRight,
}

// xFraction reports where a sits along the X axis of the bounds: 0 for the
// minimum edge, 0.5 for the middle, 1 for the maximum edge. origin is true
// for AlignOrigin, which has no fixed fraction.
func (a Align) xFraction() (f float64, origin bool) {
	switch a {
	case AlignOrigin:
		return 0, true
	case AlignRight, AlignTopRight, AlignBottomRight:
		return 1, false
	case AlignCenter, AlignTop, AlignBottom:
		return 0.5, false
	default: // left, bottomLeft, topLeft
		return 0, false
	}
}

// yFraction is xFraction for the Y axis.
func (a Align) yFraction() (f float64, origin bool) {
	switch a {
	case AlignOrigin:
		return 0, true
	case AlignTop, AlignTopLeft, AlignTopRight:
		return 1, false
	case AlignCenter, AlignLeft, AlignRight:
		return 0.5, false
	default: // bottom, bottomLeft, bottomRight
		return 0, false
	}
}
