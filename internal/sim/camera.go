package sim

import "math"

// Camera follows the player with exponential smoothing. It is advanced
// every tick whether or not anything renders.
type Camera struct {
	X, Y float64 // world units, camera centre
	Zoom float64 // 1 = native, grows with vehicle speed
}

func NewCamera(worldSize float64) Camera {
	return Camera{X: worldSize / 2, Y: worldSize / 2, Zoom: 1}
}

// Follow eases the camera toward focus and the zoom toward the value
// implied by speed.
func (c *Camera) Follow(focus Point, speed float64) {
	c.X += (focus.X - c.X) * CameraFollow
	c.Y += (focus.Y - c.Y) * CameraFollow

	target := TargetZoom(speed)
	c.Zoom += (target - c.Zoom) * CameraZoomRate
}

// TargetZoom is 1 at rest and approaches 1+ZoomMaxExtra at speed.
func TargetZoom(speed float64) float64 {
	return 1 + math.Min(ZoomMaxExtra, math.Abs(speed)/ZoomSpeedScale)
}

// Visible returns the world rectangle covered by a viewport of the given
// pixel size.
func (c Camera) Visible(viewW, viewH int) Rect {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w := float64(viewW) / zoom
	h := float64(viewH) / zoom
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}
