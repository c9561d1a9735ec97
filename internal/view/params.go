package view

import (
	"strconv"

	"chipfire/internal/core"
)

// Parameter is one read-only value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures what the HUD displays for the current frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Parameters summarizes the drawn plane, the cache and the selection.
func (p *Plane) Parameters() ParameterSnapshot {
	plane := ParameterGroup{Name: "Plane"}
	if sigma, ok := p.Sigma(); ok {
		stable := 0
		for _, n := range p.nodes {
			if n.Config.Stable() {
				stable++
			}
		}
		plane.Params = []Parameter{
			intParam("sigma", "Sigma", sigma),
			intParam("nodes", "Nodes", len(p.nodes)),
			intParam("stable", "Stable nodes", stable),
		}
	} else {
		plane.Params = []Parameter{{Key: "sigma", Label: "Sigma", Value: "--"}}
	}

	groups := []ParameterGroup{
		plane,
		{
			Name:   "Cache",
			Params: []Parameter{intParam("cached", "Cached configurations", p.cache.Len())},
		},
	}

	if n, ok := p.sel.Selected(); ok {
		groups = append(groups, ParameterGroup{
			Name: "Selection",
			Params: []Parameter{
				{Key: "node", Label: "Node", Value: n.Config.String()},
				intParam("out_degree", "Firing moves", len(p.sel.EdgeHandles())),
				{Key: "vertices", Label: "Unstable", Value: unstableLabels(n.Config)},
			},
		})
	}
	return ParameterSnapshot{Groups: groups}
}

func unstableLabels(c core.Config) string {
	out := ""
	for _, m := range core.Moves(c) {
		out += m.Vertex.String()
	}
	if out == "" {
		return "none"
	}
	return out
}

func intParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}
