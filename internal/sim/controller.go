package sim

import "math"

type ControllerMode uint8

const (
	ModeWander ControllerMode = iota
	ModeCop
)

func (m ControllerMode) String() string {
	if m == ModeCop {
		return "cop"
	}
	return "wander"
}

// Retarget timers, in seconds: base + uniform spread.
const (
	wanderHoldMin    = 3.0
	wanderHoldSpread = 5.0
	patrolHoldMin    = 4.0
	patrolHoldSpread = 6.0
)

// Controller is the autonomous driving policy of one vehicle.
type Controller struct {
	Mode   ControllerMode
	Target Point
	Timer  float64
}

// NewController starts with an expired timer aimed at the world centre, so
// the first step picks a fresh target.
func NewController(mode ControllerMode, worldSize float64) *Controller {
	return &Controller{Mode: mode, Target: Point{X: worldSize / 2, Y: worldSize / 2}}
}

// Pursuit is what a controller may observe about the player.
type Pursuit struct {
	Wanted int
	Target Point // player's effective position
}

// StepController advances c by dt and drives v toward its target.
func StepController(c *Controller, v *Vehicle, p Pursuit, r Random, dt, worldSize float64) {
	c.Timer -= dt
	switch c.Mode {
	case ModeWander:
		if c.Timer <= 0 {
			c.Target = Point{X: rangeF(r, 0, worldSize), Y: rangeF(r, 0, worldSize)}
			c.Timer = wanderHoldMin + wanderHoldSpread*r.Float64()
		}
	case ModeCop:
		if p.Wanted > 0 {
			c.Target = p.Target
		} else if c.Timer <= 0 {
			half := worldSize / 2
			c.Target = Point{
				X: half + (r.Float64()-0.5)*2*PatrolSpread,
				Y: half + (r.Float64()-0.5)*2*PatrolSpread,
			}
			c.Timer = patrolHoldMin + patrolHoldSpread*r.Float64()
		}
	}
	steerToward(v, c.Target, dt, worldSize)
}

// steerToward turns v toward target at a bounded angular rate and drives
// it with the fixed autonomous throttle.
func steerToward(v *Vehicle, target Point, dt, worldSize float64) {
	bearing := math.Atan2(target.Y-v.Y, target.X-v.X)
	diff := angDiff(v.Angle, bearing)
	v.Angle += clampF(diff, -AIMaxTurn, AIMaxTurn) * dt

	v.Speed += v.Acc * AIThrottleFraction * dt
	v.Speed = math.Min(v.Speed, v.MaxSpeed*AISpeedFraction)

	v.advance(dt, worldSize)
}
