package render

import "image/color"

var (
	// Background is the clear color behind the scene.
	Background = color.RGBA{R: 12, G: 12, B: 16, A: 255}

	nodeDefault  = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 255}
	nodeSelected = color.RGBA{R: 0x00, G: 0xcc, B: 0xcc, A: 255}
	edgeColor    = color.RGBA{R: 0x00, G: 0x99, B: 0x99, A: 255}
	axisFallback = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 255}
)

// AxisColors maps axis labels to their line colors.
var AxisColors = map[string]color.RGBA{
	"alpha": {R: 0x00, G: 0xff, B: 0x00, A: 255},
	"beta":  {R: 0xff, G: 0x00, B: 0x00, A: 255},
	"gamma": {R: 0x00, G: 0x00, B: 0xff, A: 255},
}

// ColorOf returns the color a visual is drawn with.
func ColorOf(v Visual) color.RGBA {
	switch v.Kind {
	case KindNode:
		if v.Style == StyleSelected {
			return nodeSelected
		}
		return nodeDefault
	case KindEdge:
		return edgeColor
	case KindAxis:
		if c, ok := AxisColors[v.Geometry.Label]; ok {
			return c
		}
		return axisFallback
	default:
		return axisFallback
	}
}

// Shade darkens col by the given factor in [0, 1]. Used for depth cueing.
func Shade(col color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(col.R) * factor),
		G: uint8(float64(col.G) * factor),
		B: uint8(float64(col.B) * factor),
		A: col.A,
	}
}
