package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/bossfear701/HighLife/internal/sim"
)

// keyBindings maps each control to the physical keys that hold it.
var keyBindings = [...]struct {
	key  sim.Key
	keys []glfw.Key
}{
	{sim.KeyForward, []glfw.Key{glfw.KeyW, glfw.KeyUp}},
	{sim.KeyBack, []glfw.Key{glfw.KeyS, glfw.KeyDown}},
	{sim.KeyLeft, []glfw.Key{glfw.KeyA, glfw.KeyLeft}},
	{sim.KeyRight, []glfw.Key{glfw.KeyD, glfw.KeyRight}},
	{sim.KeyHandbrake, []glfw.Key{glfw.KeySpace}},
	{sim.KeyMountToggle, []glfw.Key{glfw.KeyE, glfw.KeyF}},
	{sim.KeyMinimapToggle, []glfw.Key{glfw.KeyM}},
	{sim.KeyNextMission, []glfw.Key{glfw.KeyN}},
}

// ReadInput samples the keyboard. Edge detection for one-shot keys happens
// inside the simulation, so this only reports what is held.
func ReadInput(window *glfw.Window) sim.Input {
	var in sim.Input
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if window.GetKey(k) == glfw.Press {
				in.Set(b.key, true)
				break
			}
		}
	}
	return in
}
