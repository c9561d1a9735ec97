package core

// Edge is a directed firing move between two configurations of one plane.
type Edge struct {
	From   Config
	To     Config
	Vertex Vertex
}

// FiringGraph is the complete firing graph of a single sigma-plane.
type FiringGraph struct {
	Sigma int
	Nodes []Config
	Edges []Edge
}

// Graph builds the firing graph of the sigma-plane. Nodes follow Plane order
// and edges are grouped by source node in that same order.
func Graph(sigma int) (*FiringGraph, error) {
	nodes, err := Plane(sigma)
	if err != nil {
		return nil, err
	}
	g := &FiringGraph{Sigma: sigma, Nodes: nodes}
	for _, n := range nodes {
		for _, m := range Moves(n) {
			g.Edges = append(g.Edges, Edge{From: n, To: m.To, Vertex: m.Vertex})
		}
	}
	return g, nil
}

// OutDegree returns how many moves leave each node.
func (g *FiringGraph) OutDegree() map[Config]int {
	deg := make(map[Config]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n] = 0
	}
	for _, e := range g.Edges {
		deg[e.From]++
	}
	return deg
}

// StableNodes returns the nodes with no outgoing move, in plane order.
func (g *FiringGraph) StableNodes() []Config {
	var out []Config
	for _, n := range g.Nodes {
		if n.Stable() {
			out = append(out, n)
		}
	}
	return out
}

// Summary holds the headline counts of one firing graph.
type Summary struct {
	Sigma        int `csv:"sigma"`
	Nodes        int `csv:"nodes"`
	Edges        int `csv:"edges"`
	Stable       int `csv:"stable"`
	MaxOutDegree int `csv:"max_out_degree"`
}

// Summarize counts the nodes, edges and stable nodes of g.
func (g *FiringGraph) Summarize() Summary {
	s := Summary{
		Sigma:  g.Sigma,
		Nodes:  len(g.Nodes),
		Edges:  len(g.Edges),
		Stable: len(g.StableNodes()),
	}
	for _, d := range g.OutDegree() {
		s.MaxOutDegree = max(s.MaxOutDegree, d)
	}
	return s
}
