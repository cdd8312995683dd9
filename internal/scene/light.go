package scene

import (
	"math"

	"github.com/bossfear701/HighLife/internal/sim"
)

const (
	SunAmbientMin = 0.38
	SunAmbientMax = 1.00
	SunNightStart = 0.65
)

// SunLight maps the in-world hour to an ambient level and colour tint:
// full light at noon, SunAmbientMin at midnight, warm near the horizon.
func SunLight(timeOfDay float64) (ambient, tintR, tintG, tintB float32) {
	sunHeight := math.Sin((timeOfDay - 6) / 24 * 2 * math.Pi)

	mid := float64(SunAmbientMin+SunAmbientMax) * 0.5
	amp := float64(SunAmbientMax-SunAmbientMin) * 0.5
	ambient = float32(mid + amp*sunHeight)

	horizon := 1.0 - math.Abs(sunHeight)
	warmth := horizon * horizon * 0.35
	tintR = float32(1.0 + warmth*0.4)
	tintG = float32(1.0 - warmth*0.15)
	tintB = float32(1.0 - warmth*0.5)

	if sunHeight < -0.3 {
		night := float32((-sunHeight - 0.3) / 0.7)
		tintR -= night * 0.07
		tintG -= night * 0.035
		tintB += night * 0.10
	}
	return
}

// NightIntensity is 0 at or above SunNightStart and 1 at SunAmbientMin.
func NightIntensity(ambient float32) float32 {
	f := (SunNightStart - ambient) / (SunNightStart - SunAmbientMin)
	return float32(math.Max(0, math.Min(1, float64(f))))
}

// WeatherDim scales ambient light for the current weather.
func WeatherDim(w sim.Weather) float32 {
	switch w {
	case sim.WeatherRain:
		return 0.85
	case sim.WeatherFog:
		return 0.9
	default:
		return 1
	}
}
