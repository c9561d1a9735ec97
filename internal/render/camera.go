package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultFOV      = 75.0
	defaultNear     = 0.1
	defaultFar      = 1000.0
	pitchLimit      = math.Pi/2 - 0.01
	minDistance     = 1.0
	maxDistanceMult = 10.0
)

var worldUp = r3.Vec{Z: 1}

// Camera is a perspective orbit camera around a target point. It starts on
// the (1,1,1) diagonal, looking straight down onto the sigma-planes.
type Camera struct {
	Target   r3.Vec
	Distance float64
	Yaw      float64
	Pitch    float64
	FOV      float64
	Near     float64
	Far      float64

	Width  float64
	Height float64

	MinDistance float64
	MaxDistance float64
}

// NewCamera returns a camera for a viewport of the given size. Non-positive
// distance or fov fall back to the defaults.
func NewCamera(width, height int, distance, fov float64) *Camera {
	if distance <= 0 {
		distance = 50
	}
	if fov <= 0 || fov >= 180 {
		fov = defaultFOV
	}
	c := &Camera{
		Distance:    distance,
		Yaw:         math.Pi / 4,
		Pitch:       math.Asin(1 / math.Sqrt(3)),
		FOV:         fov,
		Near:        defaultNear,
		Far:         defaultFar,
		MinDistance: minDistance,
		MaxDistance: distance * maxDistanceMult,
	}
	c.Resize(width, height)
	return c
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() r3.Vec {
	cp := math.Cos(c.Pitch)
	dir := r3.Vec{
		X: cp * math.Cos(c.Yaw),
		Y: cp * math.Sin(c.Yaw),
		Z: math.Sin(c.Pitch),
	}
	return r3.Add(c.Target, r3.Scale(c.Distance, dir))
}

func (c *Camera) basis() (forward, right, up r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Eye()))
	right = r3.Unit(r3.Cross(forward, worldUp))
	up = r3.Cross(right, forward)
	return forward, right, up
}

// Project maps a world point to screen pixels. ok is false when the point is
// outside the near/far range.
func (c *Camera) Project(p r3.Vec) (x, y, depth float64, ok bool) {
	forward, right, up := c.basis()
	d := r3.Sub(p, c.Eye())
	depth = r3.Dot(d, forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	f := c.focal()
	aspect := c.Width / c.Height
	ndcX := f * r3.Dot(d, right) / (depth * aspect)
	ndcY := f * r3.Dot(d, up) / depth
	x = (ndcX + 1) * c.Width / 2
	y = (1 - ndcY) * c.Height / 2
	return x, y, depth, true
}

// ScreenRadius returns the approximate on-screen radius, in pixels, of a
// sphere of radius r seen at the given depth.
func (c *Camera) ScreenRadius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r * c.focal() * c.Height / 2 / depth
}

func (c *Camera) focal() float64 {
	return 1 / math.Tan(c.FOV*math.Pi/360)
}

// Orbit rotates the camera around its target. Pitch is clamped short of the
// poles.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = math.Max(-pitchLimit, math.Min(pitchLimit, c.Pitch+dPitch))
}

// Zoom scales the orbit distance by factor, within the configured bounds.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = math.Max(c.MinDistance, math.Min(c.MaxDistance, c.Distance*factor))
}

// Focus moves the orbit target without changing the viewing direction.
func (c *Camera) Focus(target r3.Vec) { c.Target = target }

// Resize updates the viewport and reports whether it changed.
func (c *Camera) Resize(width, height int) bool {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	w, h := float64(width), float64(height)
	if w == c.Width && h == c.Height {
		return false
	}
	c.Width, c.Height = w, h
	return true
}
