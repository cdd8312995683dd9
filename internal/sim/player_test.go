package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_WalkDiagonalNotNormalized(t *testing.T) {
	p := NewPlayer(1000, 1000)
	in := Input{}.With(KeyForward, KeyRight)

	speed := p.Walk(in, 0.5, DefaultWorldSize)
	assert.InDelta(t, 1060.0, p.X, 1e-9)
	assert.InDelta(t, 940.0, p.Y, 1e-9)
	assert.Equal(t, 31.0, speed)
}

func TestPlayer_WalkIdle(t *testing.T) {
	p := NewPlayer(1000, 1000)
	assert.Equal(t, 0.0, p.Walk(Input{}, 0.5, DefaultWorldSize))
	assert.Equal(t, 1000.0, p.X)

	// Opposing keys cancel.
	assert.Equal(t, 0.0, p.Walk(Input{}.With(KeyLeft, KeyRight), 0.5, DefaultWorldSize))
	assert.Equal(t, 1000.0, p.X)
}

func TestPlayer_WalkClamped(t *testing.T) {
	p := NewPlayer(5, DefaultWorldSize-5)
	p.Walk(Input{}.With(KeyLeft, KeyBack), 1, DefaultWorldSize)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, DefaultWorldSize, p.Y)
}

func TestPlayer_EffectivePosition(t *testing.T) {
	vehicles := []Vehicle{NewVehicle(0, KindCivilian, 300, 400, RGB{})}
	p := NewPlayer(10, 20)
	assert.Equal(t, Point{X: 10, Y: 20}, p.EffectivePosition(vehicles))

	p.OnFoot = false
	p.Vehicle = 0
	assert.True(t, p.Mounted())
	assert.Equal(t, Point{X: 300, Y: 400}, p.EffectivePosition(vehicles))
}

func TestDriveInputFor(t *testing.T) {
	v := NewVehicle(0, KindCivilian, 0, 0, RGB{})

	d := DriveInputFor(Input{}.With(KeyForward, KeyRight), &v)
	assert.Equal(t, CivilianAccel, d.Throttle)
	assert.Equal(t, 1.0, d.Steer)
	assert.False(t, d.Handbrake)

	d = DriveInputFor(Input{}.With(KeyBack, KeyHandbrake, KeyLeft), &v)
	assert.InDelta(t, -CarBrake*BrakeFactor, d.Throttle, 1e-12)
	assert.Equal(t, -1.0, d.Steer)
	assert.True(t, d.Handbrake)

	d = DriveInputFor(Input{}.With(KeyForward, KeyBack), &v)
	assert.InDelta(t, CivilianAccel-CarBrake*BrakeFactor, d.Throttle, 1e-12)
}

func TestVehicleDisplaySpeed(t *testing.T) {
	assert.Equal(t, 43.0, VehicleDisplaySpeed(240))
	assert.Equal(t, 18.0, VehicleDisplaySpeed(-100))
	assert.Equal(t, 0.0, VehicleDisplaySpeed(0))
}
