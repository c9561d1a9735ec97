//go:build ebiten

package ui

import (
	"image/color"

	"chipfire/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"type digits, Enter: draw plane",
	"click node: select",
	"drag: orbit   wheel: zoom",
	"A: axes   Q/Esc: quit",
}

// HUD renders the sigma prompt and the parameter panel in the top-left
// corner.
type HUD struct {
	prompt     *Prompt
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   view.ParameterSnapshot
}

// NewHUD constructs a HUD around prompt with the given panel width.
func NewHUD(prompt *Prompt, width int) *HUD {
	if width <= 0 {
		width = 260
	}
	return &HUD{prompt: prompt, width: width}
}

// Update refreshes the parameter snapshot and feeds keyboard input to the
// prompt. It returns the prompt value when the user presses Enter.
func (h *HUD) Update(snapshot view.ParameterSnapshot) (string, bool) {
	if h == nil {
		return "", false
	}
	h.snapshot = snapshot
	h.prompt.Type(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		h.prompt.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return h.prompt.Value(), true
	}
	return "", false
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	lines := 3 + len(helpLines)
	for _, g := range h.snapshot.Groups {
		lines += 1 + len(g.Params)
	}
	height := panelPadding*2 + lines*lineHeight
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Sigma: "+h.prompt.Value()+"_", face, panelPadding, y, titleColor)
	y += lineHeight

	if msg, isErr := h.prompt.Status(); msg != "" {
		col := infoColor
		if isErr {
			col = errorColor
		}
		text.Draw(h.panel, msg, face, panelPadding, y, col)
	}
	y += lineHeight

	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, titleColor)
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+8, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineHeight
		}
	}

	y += lineHeight
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, infoColor)
		y += lineHeight
	}

	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	infoColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	errorColor = color.RGBA{R: 235, G: 110, B: 100, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 6
)
