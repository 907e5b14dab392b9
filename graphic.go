package canopy

// Graphic is a color-bearing component, such as a solid image fill.
type Graphic struct {
	Color Color
}

// Text is a color-bearing text component. Content is carried for the host;
// canopy does not lay out or render glyphs.
type Text struct {
	Graphic
	Content string
}

// AlphaGroup multiplies the alpha of every graphic in its node's subtree.
type AlphaGroup struct {
	Alpha float64
}

// graphics returns the color components present on n, fill first.
func (n *Node) graphics(buf []*Graphic) []*Graphic {
	if n.Fill != nil {
		buf = append(buf, n.Fill)
	}
	if n.Text != nil {
		buf = append(buf, &n.Text.Graphic)
	}
	return buf
}

// fillAlpha is the alpha n's own fill is drawn with. parentAlpha is the
// product of every AlphaGroup above n; n's own group applies once on top.
func fillAlpha(n *Node, parentAlpha float64) float64 {
	if n.Fill == nil {
		return 0
	}
	a := n.Fill.Color.A * parentAlpha
	if n.Group != nil {
		a *= n.Group.Alpha
	}
	return a
}
