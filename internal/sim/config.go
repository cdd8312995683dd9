package sim

// World dimensions (in world units).
const (
	DefaultWorldSize = 4000.0
	DefaultTile      = 80.0
	RoadWidth        = 8.0

	// MinWorldSize fits every district and built-in mission target, all of
	// which sit at fixed offsets from the centre.
	MinWorldSize = 3000.0
)

// Step bounds. Drag and turn constants below are tuned for a 60 Hz step.
const (
	TickRate       = 60.0
	FixedStep      = 1.0 / TickRate
	DefaultMaxStep = 1.0 / 30.0
)

// Car physics.
const (
	CivilianMaxSpeed = 240.0
	CivilianAccel    = 160.0
	PoliceMaxSpeed   = 280.0
	PoliceAccel      = 200.0
	CarBrake         = 300.0
	CarTurnRate      = 2.4 // rad/s at full speed

	ReverseFraction = 0.4
	BrakeFactor     = 0.65
	DragRolling     = 0.98
	DragHandbrake   = 0.94
)

// Autonomous driving.
const (
	AIThrottleFraction = 0.6
	AISpeedFraction    = 0.6
	AIMaxTurn          = 2.0 // rad/s
	PatrolSpread       = 400.0
)

// Player.
const (
	PlayerRadius    = 12.0
	WalkSpeed       = 120.0
	DisplaySpeedMul = 0.18
	PlayerStartDX   = 100.0
	PlayerStartDY   = 100.0
)

// Interaction and wanted level.
const (
	MountRadius      = 45.0
	BumpRadius       = 28.0
	CivilianBumpOdds = 0.2
	WantedMax        = 5
	BumpDecayReset   = 10.0
	WantedDecayStep  = 8.0
)

// Camera.
const (
	CameraFollow   = 0.08
	CameraZoomRate = 0.05
	ZoomSpeedScale = 400.0
	ZoomMaxExtra   = 0.4
)

// Missions.
const (
	MissionRadius         = 60.0
	DefaultAutoOfferDelay = 1.0
)

// Tuning holds the knobs a session can be started with. The zero value is
// not usable; start from DefaultTuning.
type Tuning struct {
	WorldSize      float64
	Tile           float64
	Civilians      int
	Police         int
	PoliceSpawn    float64 // half-extent of the square around the centre police spawn in
	MaxStep        float64
	AutoOfferDelay float64
	Missions       []Mission
}

// DefaultTuning is the stock city: 25 civilians, 6 police cars and
// the built-in mission pool.
func DefaultTuning() Tuning {
	return Tuning{
		WorldSize:      DefaultWorldSize,
		Tile:           DefaultTile,
		Civilians:      25,
		Police:         6,
		PoliceSpawn:    300,
		MaxStep:        DefaultMaxStep,
		AutoOfferDelay: DefaultAutoOfferDelay,
		Missions:       DefaultMissions(DefaultWorldSize),
	}
}

func (t Tuning) center() Point {
	return Point{X: t.WorldSize / 2, Y: t.WorldSize / 2}
}
