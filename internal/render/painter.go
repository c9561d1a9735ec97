//go:build ebiten

package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	lineWidth     = 1.5
	minNodeRadius = 2.0
)

// Painter draws a Scene with ebiten's vector primitives.
type Painter struct{}

// NewPainter returns a painter.
func NewPainter() *Painter { return &Painter{} }

// Draw paints every visual of s onto dst, back layers first.
func (p *Painter) Draw(dst *ebiten.Image, s *Scene) {
	cam := s.Camera()
	for _, v := range s.Visuals() {
		col := ColorOf(v)
		switch v.Kind {
		case KindAxis, KindEdge:
			if len(v.Geometry.Points) < 2 {
				continue
			}
			x0, y0, _, ok0 := cam.Project(v.Geometry.Points[0])
			x1, y1, _, ok1 := cam.Project(v.Geometry.Points[1])
			if !ok0 || !ok1 {
				continue
			}
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, col, true)
		case KindNode:
			if len(v.Geometry.Points) == 0 {
				continue
			}
			x, y, depth, ok := cam.Project(v.Geometry.Points[0])
			if !ok {
				continue
			}
			r := math.Max(minNodeRadius, cam.ScreenRadius(v.Geometry.Radius, depth))
			shaded := Shade(col, depthCue(depth, cam.Distance))
			vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), shaded, true)
		}
	}
}

// depthCue dims nodes behind the orbit target.
func depthCue(depth, distance float64) float64 {
	if distance <= 0 {
		return 1
	}
	return 1 - 0.45*math.Max(0, math.Min(1, (depth-distance)/distance))
}
