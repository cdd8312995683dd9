package sim

import "math"

// VehicleID indexes the fixed vehicle registry of a session.
type VehicleID int

// NoVehicle marks the absence of a vehicle reference.
const NoVehicle VehicleID = -1

type VehicleKind uint8

const (
	KindCivilian VehicleKind = iota
	KindPolice
)

func (k VehicleKind) String() string {
	if k == KindPolice {
		return "police"
	}
	return "civilian"
}

type Vehicle struct {
	ID     VehicleID
	Kind   VehicleKind
	Color  RGB
	Police bool

	X, Y  float64
	Angle float64 // radians, 0 = +X
	Speed float64 // signed, forward positive

	MaxSpeed float64
	Acc      float64
	Brake    float64
	TurnRate float64

	// Controller is owned by the vehicle; nil means it only moves when driven.
	Controller *Controller
}

// NewVehicle builds a vehicle with the stock performance for its kind.
func NewVehicle(id VehicleID, kind VehicleKind, x, y float64, col RGB) Vehicle {
	v := Vehicle{
		ID:       id,
		Kind:     kind,
		Color:    col,
		X:        x,
		Y:        y,
		MaxSpeed: CivilianMaxSpeed,
		Acc:      CivilianAccel,
		Brake:    CarBrake,
		TurnRate: CarTurnRate,
	}
	if kind == KindPolice {
		v.Police = true
		v.MaxSpeed = PoliceMaxSpeed
		v.Acc = PoliceAccel
	}
	return v
}

func (v *Vehicle) Pos() Point {
	return Point{X: v.X, Y: v.Y}
}

// DriveInput is one tick of driver intent. Throttle is an acceleration in
// world units/s², already resolved from the pedals.
type DriveInput struct {
	Throttle  float64
	Steer     float64 // -1 left .. +1 right
	Handbrake bool
}

// Drive integrates one tick of player-style driving.
func (v *Vehicle) Drive(in DriveInput, dt, worldSize float64) {
	v.Speed += in.Throttle * dt
	v.ClampSpeed()

	// Drag is per tick, tuned at 60 Hz.
	if in.Handbrake {
		v.Speed *= DragHandbrake
	} else {
		v.Speed *= DragRolling
	}

	// Turn authority scales with speed; a parked car cannot turn.
	steer := clampF(in.Steer, -1, 1)
	v.Angle += steer * v.TurnRate * (v.Speed / v.MaxSpeed) * dt

	v.advance(dt, worldSize)
}

// ClampSpeed limits speed to [-ReverseFraction*MaxSpeed, MaxSpeed].
func (v *Vehicle) ClampSpeed() {
	v.Speed = clampF(v.Speed, -v.MaxSpeed*ReverseFraction, v.MaxSpeed)
}

// ClampPosition pins the vehicle inside the world square. No bounce.
func (v *Vehicle) ClampPosition(worldSize float64) {
	v.X = clampF(v.X, 0, worldSize)
	v.Y = clampF(v.Y, 0, worldSize)
}

func (v *Vehicle) advance(dt, worldSize float64) {
	v.X += math.Cos(v.Angle) * v.Speed * dt
	v.Y += math.Sin(v.Angle) * v.Speed * dt
	v.ClampPosition(worldSize)
}
