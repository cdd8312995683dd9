package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepController_WanderRetarget(t *testing.T) {
	v := NewVehicle(0, KindCivilian, 100, 100, RGB{})
	c := NewController(ModeWander, DefaultWorldSize)
	r := &seqRand{vals: []float64{0.25, 0.5, 0.2}}

	StepController(c, &v, Pursuit{}, r, FixedStep, DefaultWorldSize)
	assert.Equal(t, Point{X: 1000, Y: 2000}, c.Target)
	assert.InDelta(t, 4.0, c.Timer, 1e-12)
	assert.Equal(t, 3, r.i)

	StepController(c, &v, Pursuit{}, noRand{t}, FixedStep, DefaultWorldSize)
	assert.Equal(t, Point{X: 1000, Y: 2000}, c.Target)
	assert.InDelta(t, 4.0-FixedStep, c.Timer, 1e-12)
}

func TestStepController_CopPatrol(t *testing.T) {
	v := NewVehicle(0, KindPolice, 2000, 2000, RGB{})
	c := NewController(ModeCop, DefaultWorldSize)
	r := &seqRand{vals: []float64{0.75, 0.25, 0.5}}

	StepController(c, &v, Pursuit{}, r, FixedStep, DefaultWorldSize)
	assert.InDelta(t, 2200.0, c.Target.X, 1e-9)
	assert.InDelta(t, 1800.0, c.Target.Y, 1e-9)
	assert.InDelta(t, 7.0, c.Timer, 1e-12)
}

func TestStepController_CopPursuitEveryTick(t *testing.T) {
	v := NewVehicle(0, KindPolice, 2000, 2000, RGB{})
	c := NewController(ModeCop, DefaultWorldSize)
	c.Timer = 5

	for i := 0; i < 3; i++ {
		target := Point{X: 2500 + float64(i)*10, Y: 1900}
		StepController(c, &v, Pursuit{Wanted: 2, Target: target}, noRand{t}, FixedStep, DefaultWorldSize)
		assert.Equal(t, target, c.Target)
	}
	assert.InDelta(t, 5-3*FixedStep, c.Timer, 1e-12)
}

func TestStepController_TurnRateBounded(t *testing.T) {
	v := NewVehicle(0, KindPolice, 2000, 2000, RGB{})
	c := &Controller{Mode: ModeCop, Timer: 100}

	StepController(c, &v, Pursuit{Wanted: 1, Target: Point{X: 1900, Y: 2000}}, noRand{t}, 0.1, DefaultWorldSize)
	assert.InDelta(t, AIMaxTurn*0.1, v.Angle, 1e-9)
}

func TestStepController_SpeedCapped(t *testing.T) {
	r := NewRand(3)
	v := NewVehicle(0, KindCivilian, 2000, 2000, RGB{})
	c := NewController(ModeWander, DefaultWorldSize)
	for i := 0; i < 600; i++ {
		StepController(c, &v, Pursuit{}, r, FixedStep, DefaultWorldSize)
		require.LessOrEqual(t, v.Speed, v.MaxSpeed*AISpeedFraction)
		require.GreaterOrEqual(t, v.X, 0.0)
		require.LessOrEqual(t, v.X, DefaultWorldSize)
	}
	assert.InDelta(t, v.MaxSpeed*AISpeedFraction, v.Speed, 1e-9)
}

func TestStepController_Deterministic(t *testing.T) {
	run := func() []Point {
		r := NewRand(99)
		cars := []Vehicle{
			NewVehicle(0, KindCivilian, 500, 500, RGB{}),
			NewVehicle(1, KindPolice, 2000, 2000, RGB{}),
		}
		ctrls := []*Controller{
			NewController(ModeWander, DefaultWorldSize),
			NewController(ModeCop, DefaultWorldSize),
		}
		var targets []Point
		for i := 0; i < 1200; i++ {
			for j := range cars {
				StepController(ctrls[j], &cars[j], Pursuit{}, r, FixedStep, DefaultWorldSize)
			}
			targets = append(targets, ctrls[0].Target, ctrls[1].Target)
		}
		return targets
	}
	assert.Equal(t, run(), run())
}

func TestSteerToward_ReachesHeading(t *testing.T) {
	v := NewVehicle(0, KindCivilian, 2000, 2000, RGB{})
	target := Point{X: 2000, Y: 4000}
	for i := 0; i < 300; i++ {
		steerToward(&v, target, FixedStep, DefaultWorldSize)
	}
	bearing := math.Atan2(target.Y-v.Y, target.X-v.X)
	assert.InDelta(t, 0, angDiff(v.Angle, bearing), 0.05)
}
