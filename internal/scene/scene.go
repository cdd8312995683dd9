package scene

import (
	"math"
	"sort"

	"github.com/bossfear701/HighLife/internal/sim"
)

// Drawing sizes, in world units unless noted.
const (
	CarLength       = 40.0
	CarWidth        = 20.0
	LightbarLength  = 12.0
	LightbarWidth   = 6.0
	HeadlightReach  = 30.0
	MissionRingSize = 80.0
	OutlineWidth    = 2.0

	windowPitch  = 24.0
	windowCell   = 30.0
	windowSize   = 10.0
	windowMargin = 8.0

	rainStreaks = 120
	fogBlobs    = 6

	MinimapSize   = 200 // pixels
	MinimapMargin = 12  // pixels
	minimapDot    = 4.0
	minimapMark   = 12.0
)

var (
	headlightColor = Color{R: 1, G: 1, B: 180.0 / 255, A: 0.2}
	rainColor      = Color{R: 180.0 / 255, G: 200.0 / 255, B: 1, A: 0.35}
	fogColor       = Color{R: 140.0 / 255 * 0.08, G: 160.0 / 255 * 0.08, B: 180.0 / 255 * 0.08, A: 1}
	nightShade     = Color{A: 0.25}
	sirenRed       = Color{R: 0.9, G: 0.1, B: 0.1, A: 1}
	sirenBlue      = Color{R: 0.1, G: 0.2, B: 0.9, A: 1}
	white          = Color{R: 1, G: 1, B: 1, A: 1}
)

// Frame is everything the renderer needs for one picture.
type Frame struct {
	Clear Color

	// World-space geometry, drawn through the camera.
	World Batch
	// Additive world-space glows: siren flashes, mission marker, fog.
	Glow Sprites
	// Screen-space overlay in pixels: night shade, rain, minimap.
	Screen Batch

	Camera  sim.Camera
	Ambient float32
	Tint    [3]float32
}

// Builder reuses its buffers across frames. The overlay RNG only drives
// rain and fog placement, never the simulation.
type Builder struct {
	frame Frame
	rng   *sim.Rand
	ids   []int
}

func NewBuilder(seed uint64) *Builder {
	return &Builder{rng: sim.NewRand(seed)}
}

// Build lays out snap for a framebuffer of fbW×fbH pixels. The returned
// frame is owned by the builder and valid until the next call.
func (b *Builder) Build(snap sim.Snapshot, fbW, fbH int) *Frame {
	f := &b.frame
	f.World.Reset()
	f.Glow.Reset()
	f.Screen.Reset()
	f.Camera = snap.Camera

	night := snap.Clock.IsNight()
	ground := sim.Palette.Ground
	if night {
		ground = sim.Palette.GroundNight
	}
	f.Clear = FromRGB(ground, 1)

	amb, tr, tg, tb := SunLight(snap.Clock.TimeOfDay)
	f.Ambient = amb * WeatherDim(snap.Clock.Weather)
	f.Tint = [3]float32{tr, tg, tb}

	view := snap.Camera.Visible(fbW, fbH)
	if g := snap.Geometry; g != nil {
		b.city(g, view)
	}
	if snap.HasTarget {
		f.Glow.Add(snap.Target.X, snap.Target.Y, MissionRingSize, FromRGB(sim.Palette.MissionRing, 0.6))
	}
	var beam float32
	if night {
		beam = headlightAlpha(f.Ambient)
	}
	b.vehicles(snap, view, beam)
	if snap.Player.OnFoot {
		r := snap.Player.Radius
		f.World.Oriented(snap.Player.X, snap.Player.Y, math.Pi/4, 0, 0, r*1.6, r*1.6, FromRGB(sim.Palette.Player, 1))
	}

	b.weather(snap, fbW, fbH, night)
	if snap.ShowMinimap {
		b.minimap(snap, fbW)
	}
	return f
}

func (b *Builder) city(g *sim.Geometry, view sim.Rect) {
	f := &b.frame
	for _, d := range g.Districts {
		if !d.Rect.Intersects(view) {
			continue
		}
		f.World.Rect(d.Rect, FromRGB(d.Color, 1))
		if d.Outline {
			f.World.Outline(d.Rect, OutlineWidth, FromRGB(sim.Palette.Outline, 1))
		}
	}

	road := FromRGB(sim.Palette.Road, 1)
	for _, r := range g.Roads {
		if r.Rect.Intersects(view) {
			f.World.Rect(r.Rect, road)
		}
	}

	b.ids = append(b.ids[:0], g.BuildingsIn(view)...)
	sort.Ints(b.ids)
	win := FromRGB(sim.Palette.Window, 1)
	for _, i := range b.ids {
		bl := g.Buildings[i]
		f.World.Rect(bl.Rect, FromRGB(bl.Color, 1))
		cols := int(bl.Rect.W / windowCell)
		rows := int(bl.Rect.H / windowCell)
		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				if (x+y)%3 != 0 {
					continue
				}
				f.World.Rect(sim.Rect{
					X: bl.Rect.X + windowMargin + float64(x)*windowPitch,
					Y: bl.Rect.Y + windowMargin + float64(y)*windowPitch,
					W: windowSize,
					H: windowSize,
				}, win)
			}
		}
	}
}

// headlightAlpha fades the beams in as the scene darkens.
func headlightAlpha(ambient float32) float32 {
	return headlightColor.A * (0.4 + 0.6*NightIntensity(ambient))
}

// vehicles draws every car near view. beam is the headlight alpha; zero
// leaves the lights off.
func (b *Builder) vehicles(snap sim.Snapshot, view sim.Rect, beam float32) {
	f := &b.frame
	margin := CarLength + HeadlightReach
	cull := sim.Rect{X: view.X - margin, Y: view.Y - margin, W: view.W + 2*margin, H: view.H + 2*margin}
	flash := (snap.Tick/15)%2 == 0

	for _, v := range snap.Vehicles {
		if !cull.Contains(v.X, v.Y) {
			continue
		}
		body := FromRGB(v.Color, 1)
		if v.Police {
			body = FromRGB(sim.Palette.PoliceBody, 1)
		}
		f.World.Oriented(v.X, v.Y, v.Angle, 0, 0, CarLength, CarWidth, body)
		f.World.Oriented(v.X, v.Y, v.Angle, 0, 0, CarLength/2, CarWidth/2, FromRGB(sim.Palette.Window, 1))

		if beam > 0 {
			cos, sin := math.Cos(v.Angle), math.Sin(v.Angle)
			at := func(lx, ly float64) sim.Point {
				return sim.Point{X: v.X + lx*cos - ly*sin, Y: v.Y + lx*sin + ly*cos}
			}
			nose := CarLength / 2
			lit := headlightColor
			lit.A = beam
			f.World.Poly4(at(nose, -6), at(nose+HeadlightReach, -2), at(nose+HeadlightReach, 2), at(nose, 6), lit)
		}

		if v.Police {
			f.World.Oriented(v.X, v.Y, v.Angle, 0, -CarWidth/2-1, LightbarLength, LightbarWidth, FromRGB(sim.Palette.PoliceBar, 1))
			c := sirenRed
			if flash {
				c = sirenBlue
			}
			if snap.Player.Wanted > 0 {
				f.Glow.Add(v.X, v.Y, CarLength*1.5, c)
			}
		}
		if v.Occupied {
			f.World.Oriented(v.X, v.Y, v.Angle, 0, 0, CarLength/6, CarWidth/6, FromRGB(sim.Palette.Player, 1))
		}
	}
}

func (b *Builder) weather(snap sim.Snapshot, fbW, fbH int, night bool) {
	f := &b.frame
	w, h := float64(fbW), float64(fbH)
	cam := snap.Camera
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	if snap.Clock.Weather == sim.WeatherFog {
		for i := 0; i < fogBlobs; i++ {
			sx, sy := b.rng.Float64()*w, b.rng.Float64()*h
			r := 200 + b.rng.Float64()*200
			wx := cam.X + (sx-w/2)/zoom
			wy := cam.Y + (sy-h/2)/zoom
			f.Glow.Add(wx, wy, 2*r/zoom, fogColor)
		}
	}
	if night {
		f.Screen.Rect(sim.Rect{W: w, H: h}, nightShade)
	}
	if snap.Clock.Weather == sim.WeatherRain {
		for i := 0; i < rainStreaks; i++ {
			x, y := b.rng.Float64()*w, b.rng.Float64()*h
			f.Screen.Poly4(
				sim.Point{X: x, Y: y},
				sim.Point{X: x + 1, Y: y},
				sim.Point{X: x + 3, Y: y + 12},
				sim.Point{X: x + 2, Y: y + 12},
				rainColor,
			)
		}
	}
}

// minimap draws in the top-right corner of the screen.
func (b *Builder) minimap(snap sim.Snapshot, fbW int) {
	f := &b.frame
	size := float64(MinimapSize)
	ox := float64(fbW) - size - MinimapMargin
	oy := float64(MinimapMargin)
	f.Screen.Rect(sim.Rect{X: ox, Y: oy, W: size, H: size}, FromRGB(sim.Palette.MinimapBG, 1))

	world := sim.DefaultWorldSize
	if snap.Geometry != nil {
		world = snap.Geometry.Size
	}
	scale := size / world
	if snap.Geometry != nil {
		land := FromRGB(sim.Palette.MinimapLand, 1)
		for _, d := range snap.Geometry.Districts {
			f.Screen.Rect(sim.Rect{X: ox + d.Rect.X*scale, Y: oy + d.Rect.Y*scale, W: d.Rect.W * scale, H: d.Rect.H * scale}, land)
		}
	}

	focus := snap.Focus
	f.Screen.Rect(sim.Rect{
		X: ox + focus.X*scale - minimapDot/2,
		Y: oy + focus.Y*scale - minimapDot/2,
		W: minimapDot,
		H: minimapDot,
	}, FromRGB(sim.Palette.MinimapDot, 1))

	if snap.HasTarget {
		f.Screen.Outline(sim.Rect{
			X: ox + snap.Target.X*scale - minimapMark/2,
			Y: oy + snap.Target.Y*scale - minimapMark/2,
			W: minimapMark,
			H: minimapMark,
		}, 1, white)
	}
}
