package view

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"chipfire/internal/core"
	"chipfire/internal/logging"
	"chipfire/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func configsOf(nodes []Node) []core.Config {
	out := make([]core.Config, len(nodes))
	for i, n := range nodes {
		out[i] = n.Config
	}
	return out
}

func TestDrawSigmaTwo(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.Draw(2))

	assert.Equal(t, []core.Config{
		{0, 0, 2}, {0, 1, 1}, {0, 2, 0},
		{1, 0, 1}, {1, 1, 0},
		{2, 0, 0},
	}, configsOf(h.plane.Nodes()))
	assert.Equal(t, 6, h.sink.count(render.KindNode))

	assert.Equal(t, core.NeighborSet{{0, 1, 1}}, h.cache.GetOrCompute(core.Config{2, 0, 0}))
	assert.Equal(t, core.NeighborSet{{1, 0, 1}}, h.cache.GetOrCompute(core.Config{0, 2, 0}))
	assert.Equal(t, core.NeighborSet{{1, 1, 0}}, h.cache.GetOrCompute(core.Config{0, 0, 2}))
	for _, c := range []core.Config{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}} {
		assert.Empty(t, h.cache.GetOrCompute(c), "config %v", c)
	}
	assert.Equal(t, 6, h.rule.total())

	sigma, ok := h.plane.Sigma()
	assert.True(t, ok)
	assert.Equal(t, 2, sigma)
}

func TestDrawNodeGeometry(t *testing.T) {
	h := newHarness(Options{NodeRadius: 0.5})
	require.NoError(t, h.plane.Draw(1))

	for _, n := range h.plane.Nodes() {
		v := h.sink.visuals[n.Handle]
		require.NotNil(t, v)
		assert.Equal(t, []r3.Vec{Point(n.Config)}, v.geom.Points)
		assert.Equal(t, 0.5, v.geom.Radius)
		c, ok := h.plane.Lookup(n.Handle)
		assert.True(t, ok)
		assert.Equal(t, n.Config, c)
	}
}

func TestRedrawReplacesNodes(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.Draw(3))
	old := h.plane.Nodes()

	require.NoError(t, h.plane.Draw(1))

	assert.Equal(t, core.PlaneSize(1), h.sink.count(render.KindNode))
	assert.Equal(t, len(old), h.sink.removed)
	for _, n := range old {
		_, ok := h.plane.Lookup(n.Handle)
		assert.False(t, ok)
	}
}

func TestRedrawResetsSelection(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.Draw(2))
	h.plane.Selection().SelectNode(h.node(core.Config{2, 0, 0}))

	require.NoError(t, h.plane.Draw(3))

	assert.Equal(t, NoSelection{}, h.plane.Selection().State())
	assert.Zero(t, h.sink.count(render.KindEdge))
	assert.Empty(t, h.sink.selected())
	assert.False(t, h.labels.visible)
}

func TestRedrawReusesCache(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.Draw(4))
	require.NoError(t, h.plane.Draw(6))
	require.NoError(t, h.plane.Draw(4))

	assert.Equal(t, core.PlaneSize(4)+core.PlaneSize(6), h.rule.total())
	assert.Equal(t, h.rule.total(), h.cache.Len())
}

func TestDrawRejectsInvalidSigma(t *testing.T) {
	h := newHarness(Options{MaxSigma: 10})
	require.NoError(t, h.plane.Draw(2))
	n := h.node(core.Config{2, 0, 0})
	h.plane.Selection().SelectNode(n)
	removed := h.sink.removed

	for _, sigma := range []int{-1, 11} {
		err := h.plane.Draw(sigma)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrInvalidSigma))
	}
	for _, text := range []string{"", "1.5", "two", "-3", "99"} {
		err := h.plane.DrawText(text)
		assert.ErrorIs(t, err, core.ErrInvalidSigma, "input %q", text)
	}

	sigma, _ := h.plane.Sigma()
	assert.Equal(t, 2, sigma)
	assert.Equal(t, 6, h.sink.count(render.KindNode))
	assert.Equal(t, removed, h.sink.removed)
	got, ok := h.plane.Selection().Selected()
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestUnboundedPlaneRejectsHugeSigma(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.Draw(3))

	assert.ErrorIs(t, h.plane.Draw(math.MaxInt), core.ErrInvalidSigma)
	assert.ErrorIs(t, h.plane.DrawText("9999999"), core.ErrInvalidSigma)

	sigma, _ := h.plane.Sigma()
	assert.Equal(t, 3, sigma)
	assert.Len(t, h.plane.Nodes(), core.PlaneSize(3))
}

func TestDrawText(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.DrawText(" 3 "))
	assert.Len(t, h.plane.Nodes(), core.PlaneSize(3))
}

func TestDrawZero(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.plane.Draw(0))
	assert.Equal(t, []core.Config{{0, 0, 0}}, configsOf(h.plane.Nodes()))
	assert.Equal(t, r3.Vec{}, h.plane.Center())
}

func TestEndToEndWithScene(t *testing.T) {
	scene := render.NewScene(render.NewCamera(800, 600, 50, 75))
	labels := &fakeLabels{}
	cache := core.NewNeighborCache(nil, nil)
	plane := NewPlane(scene, labels, cache, Options{})

	require.NoError(t, plane.Draw(2))
	scene.Camera().Focus(plane.Center())

	pick := func(c core.Config) {
		x, y := scene.ProjectToScreen(Point(c))
		h, ok := scene.Pick(x, y)
		plane.Selection().OnPick(h, ok)
	}

	pick(core.Config{2, 0, 0})
	pick(core.Config{0, 0, 2})

	assert.Equal(t, 1, scene.Count(render.KindEdge))
	var edge render.Visual
	for _, v := range scene.Visuals() {
		if v.Kind == render.KindEdge {
			edge = v
		}
	}
	assert.Equal(t, []r3.Vec{Point(core.Config{0, 0, 2}), Point(core.Config{1, 1, 0})}, edge.Geometry.Points)

	selected := 0
	for _, v := range scene.Visuals() {
		if v.Kind == render.KindNode && v.Style == render.StyleSelected {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
	assert.Equal(t, "(0, 0, 2)", labels.text)

	x, y := scene.ProjectToScreen(Point(core.Config{0, 0, 2}))
	assert.InDelta(t, x, labels.x, 1e-9)
	assert.InDelta(t, y, labels.y, 1e-9)

	// A click on empty space keeps the selection.
	h, ok := scene.Pick(-100, -100)
	plane.Selection().OnPick(h, ok)
	got, selectedOK := plane.Selection().Selected()
	require.True(t, selectedOK)
	assert.Equal(t, core.Config{0, 0, 2}, got.Config)
}

func TestDrawLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	h := newHarness(Options{Logger: logging.NewWithWriter(&buf, slog.LevelDebug)})
	require.NoError(t, h.plane.Draw(2))
	assert.Contains(t, buf.String(), "plane drawn")
	assert.Contains(t, buf.String(), "nodes=6")
}

func TestParameters(t *testing.T) {
	h := newHarness(Options{})
	snap := h.plane.Parameters()
	require.Len(t, snap.Groups, 2)
	assert.Equal(t, "--", snap.Groups[0].Params[0].Value)

	require.NoError(t, h.plane.Draw(2))
	h.plane.Selection().SelectNode(h.node(core.Config{2, 0, 0}))
	snap = h.plane.Parameters()
	require.Len(t, snap.Groups, 3)

	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "2", values["sigma"])
	assert.Equal(t, "6", values["nodes"])
	assert.Equal(t, "3", values["stable"])
	assert.Equal(t, "6", values["cached"])
	assert.Equal(t, "(2, 0, 0)", values["node"])
	assert.Equal(t, "1", values["out_degree"])
	assert.Equal(t, "A", values["vertices"])
}

func TestAxesToggle(t *testing.T) {
	sink := newFakeSink()
	axes := NewAxes(sink, 0)
	assert.False(t, axes.Visible())

	axes.SetVisible(true)
	axes.SetVisible(true)
	assert.Equal(t, 3, sink.count(render.KindAxis))

	labels := map[string]r3.Vec{}
	for _, v := range sink.visuals {
		labels[v.geom.Label] = v.geom.Points[1]
	}
	assert.Equal(t, r3.Vec{X: DefaultAxisLength}, labels["alpha"])
	assert.Equal(t, r3.Vec{Y: DefaultAxisLength}, labels["beta"])
	assert.Equal(t, r3.Vec{Z: DefaultAxisLength}, labels["gamma"])

	axes.Toggle()
	assert.False(t, axes.Visible())
	assert.Zero(t, sink.count(render.KindAxis))
}
