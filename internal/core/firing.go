package core

// Rule maps a configuration to its one-step neighbors.
type Rule func(Config) NeighborSet

// Unstable reports whether vertex v holds enough chips to fire.
func (c Config) Unstable(v Vertex) bool { return c[v] >= 2 }

// Stable reports whether no vertex can fire.
func (c Config) Stable() bool {
	for _, v := range Vertices {
		if c.Unstable(v) {
			return false
		}
	}
	return true
}

// FireVertex returns the configuration after v sends one chip to each of the
// other two vertices. The caller must check Unstable first.
func (c Config) FireVertex(v Vertex) Config {
	next := c
	for i := range next {
		if Vertex(i) == v {
			next[i] -= 2
			continue
		}
		next[i]++
	}
	return next
}

// Moves returns every single firing move available from c, in vertex order.
// Each move is computed from c itself, never from a previous move.
func Moves(c Config) []Move {
	var moves []Move
	for _, v := range Vertices {
		if !c.Unstable(v) {
			continue
		}
		moves = append(moves, Move{Vertex: v, To: c.FireVertex(v)})
	}
	return moves
}

// Fire is the chip-firing rule on K3. A stable configuration yields an empty
// set.
func Fire(c Config) NeighborSet {
	out := NeighborSet{}
	for _, v := range Vertices {
		if c.Unstable(v) {
			out = append(out, c.FireVertex(v))
		}
	}
	return out
}
