package sim

import (
	"fmt"
	"math"
)

type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherFog
)

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "Rain"
	case WeatherFog:
		return "Fog"
	default:
		return "Clear"
	}
}

// Weather roll thresholds on a uniform [0,1) draw.
const (
	clearBelow = 0.70
	rainBelow  = 0.85

	weatherHoldMin    = 45.0
	weatherHoldSpread = 45.0

	hoursPerDay = 24.0
	// One real second is one in-world minute.
	hoursPerSecond = 60.0 / 3600.0
)

// WorldClock is the in-world time of day plus the current weather.
type WorldClock struct {
	TimeOfDay    float64 // hours, [0,24)
	Weather      Weather
	WeatherTimer float64 // seconds until the next roll
}

// NewWorldClock starts at a random hour. The weather timer starts expired
// so the first Advance rolls the weather.
func NewWorldClock(r Random) WorldClock {
	return WorldClock{TimeOfDay: wrap(rangeF(r, 0, hoursPerDay), hoursPerDay)}
}

// Advance moves the clock forward by dt seconds and reports whether the
// weather was rolled this call.
func (c *WorldClock) Advance(dt float64, r Random) bool {
	c.TimeOfDay = wrap(c.TimeOfDay+dt*hoursPerSecond, hoursPerDay)
	c.WeatherTimer -= dt
	if c.WeatherTimer > 0 {
		return false
	}
	c.Weather = rollWeather(r.Float64())
	c.WeatherTimer = weatherHoldMin + weatherHoldSpread*r.Float64()
	return true
}

func rollWeather(u float64) Weather {
	switch {
	case u < clearBelow:
		return WeatherClear
	case u < rainBelow:
		return WeatherRain
	default:
		return WeatherFog
	}
}

func (c WorldClock) IsNight() bool {
	return c.TimeOfDay < 6 || c.TimeOfDay > 19
}

// HHMM formats the time of day as a zero-padded 24-hour clock.
func (c WorldClock) HHMM() string {
	h := math.Floor(c.TimeOfDay)
	m := math.Floor((c.TimeOfDay - h) * 60)
	return fmt.Sprintf("%02d:%02d", int(h), int(m))
}
