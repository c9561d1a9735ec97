//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const labelOffset = 10

// Overlay paints the selected-node label next to its node.
type Overlay struct {
	label *Label
}

// NewOverlay constructs an overlay for label.
func NewOverlay(label *Label) *Overlay {
	return &Overlay{label: label}
}

// Draw renders the label onto screen when it is visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.label.Visible() {
		return
	}
	face := basicfont.Face7x13
	x, y := o.label.Position()
	tx := int(math.Round(x)) + labelOffset
	ty := int(math.Round(y)) - labelOffset

	bounds := text.BoundString(face, o.label.Text())
	vector.DrawFilledRect(screen,
		float32(tx-4), float32(ty+bounds.Min.Y-3),
		float32(bounds.Dx()+8), float32(bounds.Dy()+6),
		color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)
	text.Draw(screen, o.label.Text(), face, tx, ty, color.RGBA{R: 0x00, G: 0xcc, B: 0xcc, A: 255})
}
