package view

import (
	"log/slog"

	"chipfire/internal/core"
	"chipfire/internal/logging"
	"chipfire/internal/render"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultNodeRadius is the world-space radius of a node sphere.
const DefaultNodeRadius = 0.25

// Options tunes a Plane. The zero value is usable.
type Options struct {
	// MaxSigma bounds accepted planes; zero means unbounded.
	MaxSigma   int
	NodeRadius float64
	// Rule computes neighbor sets while pre-populating the cache. It should
	// be the same rule the cache was built with. Nil selects core.Fire.
	Rule   core.Rule
	Logger *slog.Logger
}

// Plane owns the visible node set of one sigma-plane and the selection on it.
type Plane struct {
	sink  Sink
	cache *core.NeighborCache
	sel   *Selection
	rule  core.Rule
	log   *slog.Logger

	maxSigma int
	radius   float64

	sigma    int
	drawn    bool
	nodes    []Node
	byHandle map[render.Handle]core.Config
}

// NewPlane returns a controller with nothing drawn.
func NewPlane(sink Sink, labels LabelSink, cache *core.NeighborCache, opts Options) *Plane {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Rule == nil {
		opts.Rule = core.Fire
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = DefaultNodeRadius
	}
	p := &Plane{
		sink:     sink,
		cache:    cache,
		rule:     opts.Rule,
		log:      opts.Logger,
		maxSigma: opts.MaxSigma,
		radius:   opts.NodeRadius,
		byHandle: make(map[render.Handle]core.Config),
	}
	p.sel = NewSelection(sink, labels, cache, p, opts.Logger)
	return p
}

// Selection returns the selection controller bound to this plane.
func (p *Plane) Selection() *Selection { return p.sel }

// Validate reports whether sigma may be drawn.
func (p *Plane) Validate(sigma int) error {
	return core.CheckSigma(sigma, p.maxSigma)
}

// DrawText parses user input and draws the resulting plane.
func (p *Plane) DrawText(s string) error {
	sigma, err := core.ParseSigma(s)
	if err != nil {
		return err
	}
	return p.Draw(sigma)
}

// Draw replaces the visible nodes with the sigma-plane. An invalid sigma
// leaves the current plane and selection untouched.
func (p *Plane) Draw(sigma int) error {
	if err := p.Validate(sigma); err != nil {
		return err
	}
	configs, err := core.Plane(sigma)
	if err != nil {
		return err
	}

	p.sel.Deselect()
	p.clear()

	computed := 0
	p.nodes = make([]Node, 0, len(configs))
	for _, c := range configs {
		if !p.cache.Has(c) {
			p.cache.Put(c, p.rule(c))
			computed++
		}
		h := p.sink.AddVisual(render.KindNode, render.NodeGeometry(Point(c), p.radius))
		p.nodes = append(p.nodes, Node{Handle: h, Config: c})
		p.byHandle[h] = c
	}
	p.sigma, p.drawn = sigma, true

	p.log.Debug("plane drawn", "sigma", sigma, "nodes", len(p.nodes), "computed", computed, "cached", p.cache.Len())
	return nil
}

func (p *Plane) clear() {
	for _, n := range p.nodes {
		p.sink.RemoveVisual(n.Handle)
	}
	p.nodes = nil
	clear(p.byHandle)
}

// Lookup resolves a node handle of the current plane.
func (p *Plane) Lookup(h render.Handle) (core.Config, bool) {
	c, ok := p.byHandle[h]
	return c, ok
}

// Nodes returns the visible nodes in enumeration order.
func (p *Plane) Nodes() []Node {
	return append([]Node(nil), p.nodes...)
}

// Sigma returns the drawn sigma; ok is false before the first draw.
func (p *Plane) Sigma() (sigma int, ok bool) { return p.sigma, p.drawn }

// Center returns the centroid of the drawn plane, the natural orbit target.
func (p *Plane) Center() r3.Vec {
	third := float64(p.sigma) / 3
	return r3.Vec{X: third, Y: third, Z: third}
}
