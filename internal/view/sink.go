// Package view drives what the explorer shows: which sigma-plane is on
// screen and which node, if any, is selected. It talks to the renderer only
// through Sink and LabelSink so it runs and tests without a window.
package view

import (
	"chipfire/internal/core"
	"chipfire/internal/render"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sink is the rendering collaborator. render.Scene implements it.
type Sink interface {
	AddVisual(kind render.Kind, g render.Geometry) render.Handle
	RemoveVisual(h render.Handle)
	SetNodeStyle(h render.Handle, style render.Style)
	ProjectToScreen(p r3.Vec) (x, y float64)
}

// LabelSink receives the overlay label for the selected node.
type LabelSink interface {
	SetLabelText(text string)
	SetLabelPosition(x, y float64)
	ClearLabel()
}

// Resolver maps a picked handle back to the configuration it shows.
type Resolver interface {
	Lookup(h render.Handle) (core.Config, bool)
}

// Node is a configuration together with the visual that shows it.
type Node struct {
	Handle render.Handle
	Config core.Config
}

// Point places a configuration in world space, one axis per vertex.
func Point(c core.Config) r3.Vec {
	return r3.Vec{X: float64(c[0]), Y: float64(c[1]), Z: float64(c[2])}
}
