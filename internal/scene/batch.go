// Package scene turns simulation snapshots into flat vertex buffers for the
// renderer. Nothing here touches OpenGL, so it runs headless.
package scene

import (
	"math"

	"github.com/bossfear701/HighLife/internal/sim"
)

// Triangle vertex layout: x, y, r, g, b, a.
const (
	VertexFloats = 6
	quadVerts    = 6
)

// Sprite layout shared with the glow program: x, y, size, r, g, b, a, rotation.
const SpriteFloats = 8

type Color struct {
	R, G, B, A float32
}

func FromRGB(c sim.RGB, a float32) Color {
	return Color{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: a}
}

// Batch accumulates solid triangles.
type Batch struct {
	Verts []float32
}

func (b *Batch) Reset() {
	b.Verts = b.Verts[:0]
}

// Quads reports how many quads worth of vertices the batch holds.
func (b *Batch) Quads() int {
	return len(b.Verts) / (VertexFloats * quadVerts)
}

func (b *Batch) vertex(x, y float64, c Color) {
	b.Verts = append(b.Verts, float32(x), float32(y), c.R, c.G, c.B, c.A)
}

// Poly4 adds a convex quad given in winding order.
func (b *Batch) Poly4(p0, p1, p2, p3 sim.Point, c Color) {
	b.vertex(p0.X, p0.Y, c)
	b.vertex(p1.X, p1.Y, c)
	b.vertex(p2.X, p2.Y, c)
	b.vertex(p0.X, p0.Y, c)
	b.vertex(p2.X, p2.Y, c)
	b.vertex(p3.X, p3.Y, c)
}

func (b *Batch) Rect(r sim.Rect, c Color) {
	b.Poly4(
		sim.Point{X: r.X, Y: r.Y},
		sim.Point{X: r.X + r.W, Y: r.Y},
		sim.Point{X: r.X + r.W, Y: r.Y + r.H},
		sim.Point{X: r.X, Y: r.Y + r.H},
		c,
	)
}

// Outline draws the border of r as four strips of the given thickness.
func (b *Batch) Outline(r sim.Rect, thickness float64, c Color) {
	t := thickness
	b.Rect(sim.Rect{X: r.X, Y: r.Y, W: r.W, H: t}, c)
	b.Rect(sim.Rect{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t}, c)
	b.Rect(sim.Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, c)
	b.Rect(sim.Rect{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t}, c)
}

// Oriented adds a rectangle of size w×h in a local frame centred on (cx,cy)
// and rotated by angle. ox,oy offset the rectangle centre in that frame.
func (b *Batch) Oriented(cx, cy, angle, ox, oy, w, h float64, c Color) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	at := func(lx, ly float64) sim.Point {
		return sim.Point{X: cx + lx*cos - ly*sin, Y: cy + lx*sin + ly*cos}
	}
	hw, hh := w/2, h/2
	b.Poly4(
		at(ox-hw, oy-hh),
		at(ox+hw, oy-hh),
		at(ox+hw, oy+hh),
		at(ox-hw, oy+hh),
		c,
	)
}

// Sprites accumulates point sprites for the glow program.
type Sprites struct {
	Data []float32
}

func (s *Sprites) Reset() {
	s.Data = s.Data[:0]
}

func (s *Sprites) Len() int {
	return len(s.Data) / SpriteFloats
}

func (s *Sprites) Add(x, y, size float64, c Color) {
	s.Data = append(s.Data, float32(x), float32(y), float32(size), c.R, c.G, c.B, c.A, 0)
}
