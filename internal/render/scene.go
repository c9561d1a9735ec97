package render

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind classifies a visual primitive.
type Kind int

const (
	KindNode Kind = iota
	KindEdge
	KindAxis
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	case KindAxis:
		return "axis"
	default:
		return "unknown"
	}
}

// Style selects how a node visual is painted.
type Style int

const (
	StyleDefault Style = iota
	StyleSelected
)

// Handle identifies a visual added to a Scene. The zero Handle is never
// issued.
type Handle uint64

// Geometry describes where a visual sits in world space. Nodes use one point
// and a radius; edges and axes use two points.
type Geometry struct {
	Points []r3.Vec
	Radius float64
	Label  string
}

// NodeGeometry returns a sphere at center.
func NodeGeometry(center r3.Vec, radius float64) Geometry {
	return Geometry{Points: []r3.Vec{center}, Radius: radius}
}

// LineGeometry returns a segment between two points.
func LineGeometry(from, to r3.Vec) Geometry {
	return Geometry{Points: []r3.Vec{from, to}}
}

// Visual is one primitive held by a Scene.
type Visual struct {
	Handle   Handle
	Kind     Kind
	Geometry Geometry
	Style    Style
}

// Scene is the registry of everything on screen. It owns the camera used to
// project world points and resolves pointer picks to node visuals.
type Scene struct {
	cam     *Camera
	next    Handle
	visuals map[Handle]*Visual
	order   []Handle

	// PickRadius is the minimum pick distance in pixels around a node.
	PickRadius float64
}

// NewScene returns an empty scene viewed through cam.
func NewScene(cam *Camera) *Scene {
	return &Scene{
		cam:        cam,
		visuals:    make(map[Handle]*Visual),
		PickRadius: 6,
	}
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.cam }

// AddVisual registers a primitive and returns its handle.
func (s *Scene) AddVisual(kind Kind, g Geometry) Handle {
	s.next++
	h := s.next
	s.visuals[h] = &Visual{Handle: h, Kind: kind, Geometry: g}
	s.order = append(s.order, h)
	return h
}

// RemoveVisual drops a primitive. Unknown handles are ignored.
func (s *Scene) RemoveVisual(h Handle) {
	if _, ok := s.visuals[h]; !ok {
		return
	}
	delete(s.visuals, h)
	if len(s.order) > 32 && len(s.order) > 2*len(s.visuals) {
		s.compact()
	}
}

// SetNodeStyle changes how a node is painted. Non-node handles are ignored.
func (s *Scene) SetNodeStyle(h Handle, style Style) {
	v, ok := s.visuals[h]
	if !ok || v.Kind != KindNode {
		return
	}
	v.Style = style
}

// ProjectToScreen returns the pixel position of a world point. Points the
// camera cannot see project to (-1, -1).
func (s *Scene) ProjectToScreen(p r3.Vec) (x, y float64) {
	x, y, _, ok := s.cam.Project(p)
	if !ok {
		return -1, -1
	}
	return x, y
}

// Visual returns a copy of the visual registered under h.
func (s *Scene) Visual(h Handle) (Visual, bool) {
	v, ok := s.visuals[h]
	if !ok {
		return Visual{}, false
	}
	return *v, true
}

// Len returns the number of live visuals.
func (s *Scene) Len() int { return len(s.visuals) }

// Count returns the number of live visuals of one kind.
func (s *Scene) Count(kind Kind) int {
	n := 0
	for _, v := range s.visuals {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Visuals returns the live visuals in paint order: axes, then edges, each in
// insertion order, then nodes from farthest to nearest so closer nodes are
// painted over the ones behind them.
func (s *Scene) Visuals() []Visual {
	out := make([]Visual, 0, len(s.visuals))
	for _, kind := range []Kind{KindAxis, KindEdge} {
		for _, h := range s.order {
			v, ok := s.visuals[h]
			if ok && v.Kind == kind {
				out = append(out, *v)
			}
		}
	}

	type nodeDepth struct {
		v     Visual
		depth float64
	}
	var nodes []nodeDepth
	for _, h := range s.order {
		v, ok := s.visuals[h]
		if !ok || v.Kind != KindNode {
			continue
		}
		depth := math.Inf(1)
		if len(v.Geometry.Points) > 0 {
			_, _, depth, _ = s.cam.Project(v.Geometry.Points[0])
		}
		nodes = append(nodes, nodeDepth{v: *v, depth: depth})
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].depth > nodes[j].depth })
	for _, n := range nodes {
		out = append(out, n.v)
	}
	return out
}

// Pick returns the node visual under the pointer, preferring the closest to
// the pointer and then the closest to the camera.
func (s *Scene) Pick(x, y float64) (Handle, bool) {
	var (
		best      Handle
		bestDist  = math.Inf(1)
		bestDepth = math.Inf(1)
	)
	for _, h := range s.order {
		v, ok := s.visuals[h]
		if !ok || v.Kind != KindNode || len(v.Geometry.Points) == 0 {
			continue
		}
		sx, sy, depth, visible := s.cam.Project(v.Geometry.Points[0])
		if !visible {
			continue
		}
		radius := math.Max(s.PickRadius, s.cam.ScreenRadius(v.Geometry.Radius, depth))
		dist := math.Hypot(sx-x, sy-y)
		if dist > radius {
			continue
		}
		if dist < bestDist || (dist == bestDist && depth < bestDepth) {
			best, bestDist, bestDepth = h, dist, depth
		}
	}
	return best, best != 0
}

func (s *Scene) compact() {
	live := s.order[:0]
	for _, h := range s.order {
		if _, ok := s.visuals[h]; ok {
			live = append(live, h)
		}
	}
	s.order = live
}
