package view

import (
	"chipfire/internal/core"
	"chipfire/internal/render"
)

// State is the selection state: NoSelection or NodeSelected.
type State interface{ isState() }

// NoSelection is the initial state.
type NoSelection struct{}

// NodeSelected holds the highlighted node and the neighbors its edges lead to.
type NodeSelected struct {
	Node  Node
	Edges core.NeighborSet
}

func (NoSelection) isState()  {}
func (NodeSelected) isState() {}

// Event drives a selection transition.
type Event interface{ isEvent() }

// SelectEvent selects Node. Neighbors are its cached neighbor set.
type SelectEvent struct {
	Node      Node
	Neighbors core.NeighborSet
}

// DeselectEvent clears the selection.
type DeselectEvent struct{}

// ViewportEvent reports that the camera or viewport moved.
type ViewportEvent struct{}

func (SelectEvent) isEvent()   {}
func (DeselectEvent) isEvent() {}
func (ViewportEvent) isEvent() {}

// Effect is a side effect a transition asks the controller to perform.
type Effect interface{ isEffect() }

// RemoveEdgesEffect removes every highlighted edge visual.
type RemoveEdgesEffect struct{}

// StyleEffect restyles a node visual.
type StyleEffect struct {
	Node  render.Handle
	Style render.Style
}

// AddEdgeEffect adds a highlighted edge visual.
type AddEdgeEffect struct {
	From, To core.Config
}

// LabelTextEffect sets the overlay label text.
type LabelTextEffect struct{ Text string }

// LabelMoveEffect moves the overlay label onto the projection of At.
type LabelMoveEffect struct{ At core.Config }

// LabelClearEffect hides the overlay label.
type LabelClearEffect struct{}

func (RemoveEdgesEffect) isEffect() {}
func (StyleEffect) isEffect()       {}
func (AddEdgeEffect) isEffect()     {}
func (LabelTextEffect) isEffect()   {}
func (LabelMoveEffect) isEffect()   {}
func (LabelClearEffect) isEffect()  {}

// Transition computes the next selection state and the effects that take the
// screen there. It has no side effects of its own.
//
// Selecting while a node is selected always deselects first, so at most one
// node is ever highlighted.
func Transition(s State, e Event) (State, []Effect) {
	if s == nil {
		s = NoSelection{}
	}
	switch e := e.(type) {
	case DeselectEvent:
		cur, ok := s.(NodeSelected)
		if !ok {
			return s, nil
		}
		return NoSelection{}, []Effect{
			RemoveEdgesEffect{},
			StyleEffect{Node: cur.Node.Handle, Style: render.StyleDefault},
			LabelClearEffect{},
		}
	case SelectEvent:
		_, effects := Transition(s, DeselectEvent{})
		from := e.Node.Config
		for _, to := range e.Neighbors {
			effects = append(effects, AddEdgeEffect{From: from, To: to})
		}
		effects = append(effects,
			StyleEffect{Node: e.Node.Handle, Style: render.StyleSelected},
			LabelTextEffect{Text: from.String()},
			LabelMoveEffect{At: from},
		)
		return NodeSelected{Node: e.Node, Edges: e.Neighbors}, effects
	case ViewportEvent:
		cur, ok := s.(NodeSelected)
		if !ok {
			return s, nil
		}
		return s, []Effect{LabelMoveEffect{At: cur.Node.Config}}
	default:
		return s, nil
	}
}
