package sound

import (
	"math"

	"github.com/bossfear701/HighLife/internal/sim"
)

const (
	// DefaultHearingRange is how far, in world units, positional effects carry.
	DefaultHearingRange = 900.0
	// BumpQuietTicks is how many ticks a vehicle must go without contact
	// before another bump with it sounds.
	BumpQuietTicks = 30
)

// Play is one effect to start.
type Play struct {
	Cue     Cue
	Variant uint64
	Gain    float64 // 0..1
	Pan     float64 // -1 left .. 1 right
}

// Director decides which effect each simulation event triggers. It keeps
// the last wanted level it saw so rises and drops sound different, and the
// last contact tick per vehicle so a held contact sounds once.
type Director struct {
	HearingRange float64

	wanted   int
	variant  uint64
	lastBump map[sim.VehicleID]uint64
}

func NewDirector() *Director {
	return &Director{
		HearingRange: DefaultHearingRange,
		lastBump:     make(map[sim.VehicleID]uint64),
	}
}

// Handle maps e to an effect as heard from listener. It reports false for
// events that stay silent or happen out of earshot.
func (d *Director) Handle(e sim.Event, listener sim.Point) (Play, bool) {
	switch e.Type {
	case sim.EventBump:
		if !d.contactStart(e.Vehicle, e.Tick) {
			return Play{}, false
		}
		gain, pan, ok := d.spatial(e.X, e.Y, listener)
		if !ok {
			return Play{}, false
		}
		if e.Value == 0 {
			gain *= 0.7
		}
		return d.play(CueBump, gain, pan), true

	case sim.EventMounted, sim.EventDismounted:
		gain, pan, ok := d.spatial(e.X, e.Y, listener)
		if !ok {
			return Play{}, false
		}
		return d.play(CueDoor, gain*0.8, pan), true

	case sim.EventWantedChanged:
		prev := d.wanted
		d.wanted = e.Value
		switch {
		case e.Value == 0:
			return d.play(CueAllClear, 0.8, 0), true
		case e.Value > prev:
			return d.play(CueSiren, 0.35+0.13*float64(e.Value), 0), true
		}
		return Play{}, false

	case sim.EventMissionOffered:
		return d.play(CueMissionOffered, 0.7, 0), true
	case sim.EventMissionComplete:
		return d.play(CueMissionComplete, 1, 0), true
	case sim.EventMissionsExhausted:
		return d.play(CueAllMissions, 1, 0), true

	case sim.EventWeatherChanged:
		if e.Weather == sim.WeatherRain {
			return d.play(CueRain, 0.5, 0), true
		}
	}
	return Play{}, false
}

// contactStart records a bump with v at tick and reports whether it begins
// a new contact rather than continuing one.
func (d *Director) contactStart(v sim.VehicleID, tick uint64) bool {
	if d.lastBump == nil {
		d.lastBump = make(map[sim.VehicleID]uint64)
	}
	last, seen := d.lastBump[v]
	d.lastBump[v] = tick
	return !seen || tick < last || tick-last > BumpQuietTicks
}

func (d *Director) play(c Cue, gain, pan float64) Play {
	d.variant++
	return Play{Cue: c, Variant: d.variant, Gain: clamp(gain, 0, 1), Pan: pan}
}

// spatial attenuates linearly to silence at the hearing range and pans by
// horizontal offset from the listener.
func (d *Director) spatial(x, y float64, listener sim.Point) (gain, pan float64, ok bool) {
	r := d.HearingRange
	if r <= 0 {
		r = DefaultHearingRange
	}
	dx, dy := x-listener.X, y-listener.Y
	dist := math.Hypot(dx, dy)
	if dist >= r {
		return 0, 0, false
	}
	return 1 - dist/r, clamp(dx/(r/2), -1, 1), true
}
