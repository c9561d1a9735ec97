package view

import (
	"chipfire/internal/render"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultAxisLength is how far each axis line extends from the origin.
const DefaultAxisLength = 50

var axisDirections = []struct {
	label string
	dir   r3.Vec
}{
	{label: "alpha", dir: r3.Vec{X: 1}},
	{label: "beta", dir: r3.Vec{Y: 1}},
	{label: "gamma", dir: r3.Vec{Z: 1}},
}

// Axes shows or hides the three coordinate axes.
type Axes struct {
	sink    Sink
	length  float64
	handles []render.Handle
}

// NewAxes returns hidden axes of the given length.
func NewAxes(sink Sink, length float64) *Axes {
	if length <= 0 {
		length = DefaultAxisLength
	}
	return &Axes{sink: sink, length: length}
}

// Visible reports whether the axes are in the scene.
func (a *Axes) Visible() bool { return len(a.handles) > 0 }

// SetVisible adds or removes the axis visuals. Repeating the current state
// does nothing.
func (a *Axes) SetVisible(visible bool) {
	if visible == a.Visible() {
		return
	}
	if !visible {
		for _, h := range a.handles {
			a.sink.RemoveVisual(h)
		}
		a.handles = nil
		return
	}
	for _, ax := range axisDirections {
		g := render.LineGeometry(r3.Vec{}, r3.Scale(a.length, ax.dir))
		g.Label = ax.label
		a.handles = append(a.handles, a.sink.AddVisual(render.KindAxis, g))
	}
}

// Toggle flips visibility.
func (a *Axes) Toggle() { a.SetVisible(!a.Visible()) }
