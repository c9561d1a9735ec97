package view

import (
	"chipfire/internal/core"
	"chipfire/internal/render"

	"gonum.org/v1/gonum/spatial/r3"
)

type fakeVisual struct {
	kind  render.Kind
	geom  render.Geometry
	style render.Style
}

type fakeSink struct {
	next    render.Handle
	visuals map[render.Handle]*fakeVisual
	removed int
}

func newFakeSink() *fakeSink {
	return &fakeSink{visuals: map[render.Handle]*fakeVisual{}}
}

func (f *fakeSink) AddVisual(kind render.Kind, g render.Geometry) render.Handle {
	f.next++
	f.visuals[f.next] = &fakeVisual{kind: kind, geom: g}
	return f.next
}

func (f *fakeSink) RemoveVisual(h render.Handle) {
	if _, ok := f.visuals[h]; ok {
		f.removed++
	}
	delete(f.visuals, h)
}

func (f *fakeSink) SetNodeStyle(h render.Handle, style render.Style) {
	if v, ok := f.visuals[h]; ok {
		v.style = style
	}
}

func (f *fakeSink) ProjectToScreen(p r3.Vec) (float64, float64) {
	return p.X*10 + p.Z, p.Y * 10
}

func (f *fakeSink) count(kind render.Kind) int {
	n := 0
	for _, v := range f.visuals {
		if v.kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeSink) selected() []render.Handle {
	var out []render.Handle
	for h, v := range f.visuals {
		if v.kind == render.KindNode && v.style == render.StyleSelected {
			out = append(out, h)
		}
	}
	return out
}

// edgeTargets returns the far endpoint of every edge visual.
func (f *fakeSink) edgeTargets() map[r3.Vec]bool {
	out := map[r3.Vec]bool{}
	for _, v := range f.visuals {
		if v.kind == render.KindEdge {
			out[v.geom.Points[1]] = true
		}
	}
	return out
}

type fakeLabels struct {
	text    string
	x, y    float64
	visible bool
	clears  int
}

func (l *fakeLabels) SetLabelText(text string) {
	l.text = text
	l.visible = true
}

func (l *fakeLabels) SetLabelPosition(x, y float64) { l.x, l.y = x, y }

func (l *fakeLabels) ClearLabel() {
	l.text = ""
	l.visible = false
	l.clears++
}

type countingRule struct{ calls map[core.Config]int }

func newCountingRule() *countingRule { return &countingRule{calls: map[core.Config]int{}} }

func (r *countingRule) fire(c core.Config) core.NeighborSet {
	r.calls[c]++
	return core.Fire(c)
}

func (r *countingRule) total() int {
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

type harness struct {
	sink   *fakeSink
	labels *fakeLabels
	rule   *countingRule
	cache  *core.NeighborCache
	plane  *Plane
}

func newHarness(opts Options) *harness {
	h := &harness{sink: newFakeSink(), labels: &fakeLabels{}, rule: newCountingRule()}
	h.cache = core.NewNeighborCache(h.rule.fire, nil)
	opts.Rule = h.rule.fire
	h.plane = NewPlane(h.sink, h.labels, h.cache, opts)
	return h
}

func (h *harness) node(c core.Config) Node {
	for _, n := range h.plane.Nodes() {
		if n.Config == c {
			return n
		}
	}
	panic("node not on plane: " + c.String())
}
