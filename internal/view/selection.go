package view

import (
	"log/slog"

	"chipfire/internal/core"
	"chipfire/internal/logging"
	"chipfire/internal/render"
)

// Selection tracks the single selected node and applies the effects of each
// transition to the sinks.
type Selection struct {
	sink   Sink
	labels LabelSink
	cache  *core.NeighborCache
	nodes  Resolver
	log    *slog.Logger

	state State
	edges []render.Handle
}

// NewSelection returns a controller in the NoSelection state.
func NewSelection(sink Sink, labels LabelSink, cache *core.NeighborCache, nodes Resolver, log *slog.Logger) *Selection {
	if log == nil {
		log = logging.NewNop()
	}
	return &Selection{
		sink:   sink,
		labels: labels,
		cache:  cache,
		nodes:  nodes,
		log:    log,
		state:  NoSelection{},
	}
}

// State returns the current selection state.
func (s *Selection) State() State { return s.state }

// Selected returns the selected node, if any.
func (s *Selection) Selected() (Node, bool) {
	cur, ok := s.state.(NodeSelected)
	return cur.Node, ok
}

// EdgeHandles returns the handles of the highlighted edge visuals.
func (s *Selection) EdgeHandles() []render.Handle {
	return append([]render.Handle(nil), s.edges...)
}

// SelectNode highlights n and the edges to its neighbors, replacing any
// previous selection.
func (s *Selection) SelectNode(n Node) {
	neighbors := s.cache.GetOrCompute(n.Config)
	s.dispatch(SelectEvent{Node: n, Neighbors: neighbors})
	s.log.Debug("node selected", "node", n.Config.String(), "edges", len(neighbors))
}

// Deselect clears the selection. It is a no-op when nothing is selected.
func (s *Selection) Deselect() {
	s.dispatch(DeselectEvent{})
}

// OnPick selects the picked node. Picks that hit nothing, or hit something
// other than a node of the current plane, leave the selection unchanged.
func (s *Selection) OnPick(h render.Handle, ok bool) {
	if !ok {
		return
	}
	c, known := s.nodes.Lookup(h)
	if !known {
		return
	}
	s.SelectNode(Node{Handle: h, Config: c})
}

// OnViewportChange keeps the label attached to the selected node after the
// camera or window moved.
func (s *Selection) OnViewportChange() {
	s.dispatch(ViewportEvent{})
}

func (s *Selection) dispatch(e Event) {
	next, effects := Transition(s.state, e)
	for _, fx := range effects {
		s.apply(fx)
	}
	s.state = next
}

func (s *Selection) apply(fx Effect) {
	switch fx := fx.(type) {
	case RemoveEdgesEffect:
		for _, h := range s.edges {
			s.sink.RemoveVisual(h)
		}
		s.edges = nil
	case StyleEffect:
		s.sink.SetNodeStyle(fx.Node, fx.Style)
	case AddEdgeEffect:
		h := s.sink.AddVisual(render.KindEdge, render.LineGeometry(Point(fx.From), Point(fx.To)))
		s.edges = append(s.edges, h)
	case LabelTextEffect:
		s.labels.SetLabelText(fx.Text)
	case LabelMoveEffect:
		x, y := s.sink.ProjectToScreen(Point(fx.At))
		s.labels.SetLabelPosition(x, y)
	case LabelClearEffect:
		s.labels.ClearLabel()
	}
}
