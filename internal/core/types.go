package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSigma reports a plane parameter that is negative, out of range
	// or not an integer.
	ErrInvalidSigma = errors.New("invalid sigma")
	// ErrInvariant marks an internal consistency fault. It is only ever
	// raised through panic.
	ErrInvariant = errors.New("internal invariant violated")
)

// Config is a chip configuration on the complete graph K3: the number of
// chips on vertices A, B and C. It is a comparable value and is used
// directly as a map key.
type Config [3]int

// Vertex identifies one of the three coordinates of a Config.
type Vertex int

const (
	VertexA Vertex = iota
	VertexB
	VertexC
)

// Vertices lists every vertex in firing order.
var Vertices = [3]Vertex{VertexA, VertexB, VertexC}

// String returns the vertex label.
func (v Vertex) String() string {
	switch v {
	case VertexA:
		return "A"
	case VertexB:
		return "B"
	case VertexC:
		return "C"
	default:
		return fmt.Sprintf("Vertex(%d)", int(v))
	}
}

// NeighborSet lists the configurations reachable by exactly one firing move,
// ordered by the vertex that fired.
type NeighborSet []Config

// Move pairs a neighbor with the vertex whose firing produced it.
type Move struct {
	Vertex Vertex
	To     Config
}

// NewConfig builds a configuration from its three chip counts.
func NewConfig(a, b, c int) Config { return Config{a, b, c} }

// Sum returns the total number of chips, i.e. the sigma of the plane the
// configuration lies on.
func (c Config) Sum() int { return c[0] + c[1] + c[2] }

// Valid reports whether every coordinate is non-negative.
func (c Config) Valid() bool { return c[0] >= 0 && c[1] >= 0 && c[2] >= 0 }

// String formats the configuration as a coordinate triple.
func (c Config) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c[0], c[1], c[2])
}

// Equal reports whether two neighbor sets hold the same configurations in the
// same order.
func (n NeighborSet) Equal(o NeighborSet) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if n[i] != o[i] {
			return false
		}
	}
	return true
}
