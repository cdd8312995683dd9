package sim

import "math"

// Player is the single avatar of a session.
type Player struct {
	X, Y    float64 // on-foot position
	Radius  float64
	OnFoot  bool
	Vehicle VehicleID // NoVehicle while on foot
	Cash    int
	Wanted  int
	Alive   bool
}

func NewPlayer(x, y float64) Player {
	return Player{
		X:       x,
		Y:       y,
		Radius:  PlayerRadius,
		OnFoot:  true,
		Vehicle: NoVehicle,
		Alive:   true,
	}
}

// Mounted reports whether the player currently occupies a vehicle.
func (p *Player) Mounted() bool {
	return !p.OnFoot && p.Vehicle != NoVehicle
}

// EffectivePosition is the occupied vehicle's position, or the on-foot one.
func (p *Player) EffectivePosition(vehicles []Vehicle) Point {
	if p.Mounted() && int(p.Vehicle) < len(vehicles) {
		return vehicles[p.Vehicle].Pos()
	}
	return Point{X: p.X, Y: p.Y}
}

// Walk moves the on-foot player one tick and returns the display speed.
// Diagonals are not normalized.
func (p *Player) Walk(in Input, dt, worldSize float64) float64 {
	vx := axis(in, KeyLeft, KeyRight)
	vy := axis(in, KeyForward, KeyBack)
	p.X = clampF(p.X+vx*WalkSpeed*dt, 0, worldSize)
	p.Y = clampF(p.Y+vy*WalkSpeed*dt, 0, worldSize)
	return math.Abs(math.Round(math.Hypot(vx, vy) * WalkSpeed * DisplaySpeedMul))
}

// DriveInputFor maps held keys onto pedal and wheel input for v.
func DriveInputFor(in Input, v *Vehicle) DriveInput {
	var d DriveInput
	if in.Held(KeyForward) {
		d.Throttle += v.Acc
	}
	if in.Held(KeyBack) {
		d.Throttle -= v.Brake * BrakeFactor
	}
	d.Steer = axis(in, KeyLeft, KeyRight)
	d.Handbrake = in.Held(KeyHandbrake)
	return d
}

// VehicleDisplaySpeed converts an integration speed to the HUD readout.
func VehicleDisplaySpeed(speed float64) float64 {
	return math.Abs(math.Round(speed * DisplaySpeedMul))
}
