package scene

import (
	"strconv"
	"strings"

	"github.com/bossfear701/HighLife/internal/sim"
)

const (
	AppName   = "HighLife"
	starOn    = "★"
	starOff   = "☆"
	separator = " | "
)

// WantedStars renders the wanted level as filled and empty stars.
func WantedStars(level int) string {
	if level < 0 {
		level = 0
	}
	if level > sim.WantedMax {
		level = sim.WantedMax
	}
	return strings.Repeat(starOn, level) + strings.Repeat(starOff, sim.WantedMax-level)
}

// Title is the one-line HUD shown in the window title bar.
func Title(h sim.HUD) string {
	parts := []string{
		AppName,
		h.Clock + " " + h.Weather,
		strconv.Itoa(h.Speed) + " km/h",
		"Wanted " + WantedStars(h.Wanted),
		h.CashText,
		h.Mission,
	}
	if h.District != "" {
		parts = append(parts, h.District)
	}
	return strings.Join(parts, separator)
}
