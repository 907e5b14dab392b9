package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once; canopy is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Fill graphics are drawn by stretching it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}

// Draw fills the screen with ClearColor and draws every visible Fill graphic
// in tree order. Text components are left to the host.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.drawNode(screen, s.root, 1)
}

// drawNode draws n and its subtree. parentAlpha is the product of every
// AlphaGroup above n.
func (s *Scene) drawNode(screen *ebiten.Image, n *Node, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha
	if n.Group != nil {
		alpha *= n.Group.Alpha
	}
	if n.Fill != nil && n.Width != 0 && n.Height != 0 {
		drawFill(screen, n, fillAlpha(n, parentAlpha))
	}
	for _, child := range n.children {
		s.drawNode(screen, child, alpha)
	}
}

// drawFill stretches the white pixel over n's rectangle with alpha a.
func drawFill(screen *ebiten.Image, n *Node, a float64) {
	c := n.Fill.Color
	if a <= 0 {
		return
	}

	// unit square -> local rectangle -> world -> screen
	rect := [6]float64{n.Width, 0, 0, n.Height, -n.PivotX * n.Width, -n.PivotY * n.Height}
	m := multiplyAffine(worldTransform(n), rect)
	m = multiplyAffine(viewOf(cameraFor(n)), m)

	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	screen.DrawImage(ensureWhitePixel(), &op)
}
