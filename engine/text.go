package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Label is a piece of text anchored to a projected point on screen.
type Label struct {
	Text  string
	X, Y  float64
	Color color.Color
	Font  font.Face
}

// DrawLabel draws the label centered horizontally on its anchor.
func DrawLabel(screen *ebiten.Image, label *Label) {
	if label == nil || label.Text == "" {
		return
	}

	face := label.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	var clr color.Color = color.RGBA{255, 255, 255, 255}
	if label.Color != nil {
		clr = label.Color
	}

	bounds, _ := font.BoundString(face, label.Text)
	width := (bounds.Max.X - bounds.Min.X).Ceil()

	text.Draw(screen, label.Text, face, int(label.X)-width/2, int(label.Y), clr)
}
