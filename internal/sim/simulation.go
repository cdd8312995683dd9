package sim

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is one play session. Step is its only writer; everything else
// reads it between ticks.
type State struct {
	Tuning   Tuning
	Clock    WorldClock
	Geometry *Geometry
	Vehicles []Vehicle
	Player   Player
	Missions *MissionBoard
	Camera   Camera

	// Seconds until the next wanted star drops.
	WantedDecay float64

	ShowMinimap  bool
	DisplaySpeed float64
	Tick         uint64
	Elapsed      float64
	Session      string

	rng     Random
	edges   edgeTracker
	events  *EventBus
	log     zerolog.Logger
	metrics *simMetrics
}

type Option func(*State)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *State) { s.log = l }
}

// WithEventBus shares a bus with the caller so it can subscribe before the
// first tick.
func WithEventBus(eb *EventBus) Option {
	return func(s *State) { s.events = eb }
}

// WithSession overrides the generated session id.
func WithSession(id string) Option {
	return func(s *State) { s.Session = id }
}

// New builds a session from t. All randomness, including the lot layout,
// comes from rng so equal seeds give equal sessions. A world smaller than
// MinWorldSize is grown to it.
func New(t Tuning, rng Random, opts ...Option) *State {
	if t.WorldSize <= 0 {
		t.WorldSize = DefaultWorldSize
	} else if t.WorldSize < MinWorldSize {
		t.WorldSize = MinWorldSize
	}
	if t.Tile <= 0 {
		t.Tile = DefaultTile
	}
	if t.MaxStep <= 0 {
		t.MaxStep = DefaultMaxStep
	}
	if t.Missions == nil {
		t.Missions = DefaultMissions(t.WorldSize)
	}

	s := &State{
		Tuning:  t,
		rng:     rng,
		log:     zerolog.Nop(),
		Session: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.events == nil {
		s.events = NewEventBus()
	}
	s.log = s.log.With().Str("session", s.Session).Logger()
	s.metrics = newSimMetrics(s.log)

	lotSeed := int64(rng.Float64() * (1 << 53))
	s.Geometry = NewGeometry(t.WorldSize, t.Tile, lotSeed)
	s.Clock = NewWorldClock(rng)

	s.Vehicles = make([]Vehicle, 0, t.Civilians+t.Police)
	for i := 0; i < t.Civilians; i++ {
		id := VehicleID(len(s.Vehicles))
		x := rangeF(rng, 0, t.WorldSize)
		y := rangeF(rng, 0, t.WorldSize)
		v := NewVehicle(id, KindCivilian, x, y, Palette.CivilianCars[i%len(Palette.CivilianCars)])
		v.Controller = NewController(ModeWander, t.WorldSize)
		s.Vehicles = append(s.Vehicles, v)
	}
	c := t.center()
	for i := 0; i < t.Police; i++ {
		id := VehicleID(len(s.Vehicles))
		x := c.X + rangeF(rng, -t.PoliceSpawn, t.PoliceSpawn)
		y := c.Y + rangeF(rng, -t.PoliceSpawn, t.PoliceSpawn)
		v := NewVehicle(id, KindPolice, x, y, Palette.PoliceBody)
		v.Controller = NewController(ModeCop, t.WorldSize)
		s.Vehicles = append(s.Vehicles, v)
	}

	s.Player = NewPlayer(c.X+PlayerStartDX, c.Y+PlayerStartDY)
	s.Missions = NewMissionBoard(t.Missions, t.AutoOfferDelay)
	s.Camera = NewCamera(t.WorldSize)

	s.log.Debug().
		Int("civilians", t.Civilians).
		Int("police", t.Police).
		Int("buildings", len(s.Geometry.Buildings)).
		Int("missions", len(t.Missions)).
		Msg("Session created")
	return s
}

// Events returns the bus the session publishes on.
func (s *State) Events() *EventBus {
	return s.events
}

func (s *State) emit(e Event) {
	e.Tick = s.Tick
	s.events.Emit(e)
}

// Step advances the session by dt seconds, sampling in once. dt is clamped
// to [0, Tuning.MaxStep].
func (s *State) Step(in Input, dt float64) {
	dt = clampF(dt, 0, s.Tuning.MaxStep)
	if math.IsNaN(dt) {
		dt = 0
	}
	ws := s.Tuning.WorldSize

	// Edge-triggered actions.
	if s.edges.JustPressed(in, KeyMountToggle) {
		s.ToggleMount()
	}
	if s.edges.JustPressed(in, KeyNextMission) {
		s.offerMission()
	}
	if s.edges.JustPressed(in, KeyMinimapToggle) {
		s.ShowMinimap = !s.ShowMinimap
	}

	if s.Clock.Advance(dt, s.rng) {
		s.emit(Event{Type: EventWeatherChanged, Weather: s.Clock.Weather})
	}

	walkSpeed := 0.0
	var car *Vehicle
	if s.Player.Mounted() {
		car = &s.Vehicles[s.Player.Vehicle]
		car.Drive(DriveInputFor(in, car), dt, ws)
	} else {
		walkSpeed = s.Player.Walk(in, dt, ws)
	}

	pursuit := Pursuit{Wanted: s.Player.Wanted, Target: s.Player.EffectivePosition(s.Vehicles)}
	for i := range s.Vehicles {
		v := &s.Vehicles[i]
		if v.Controller == nil || v == car {
			continue
		}
		StepController(v.Controller, v, pursuit, s.rng, dt, ws)
	}

	s.decayWanted(dt)

	camSpeed := 0.0
	if car != nil {
		camSpeed = car.Speed
	}
	s.Camera.Follow(s.Player.EffectivePosition(s.Vehicles), camSpeed)

	s.scanBumps()
	s.updateMissions(dt)

	if car != nil {
		s.DisplaySpeed = VehicleDisplaySpeed(car.Speed)
	} else {
		s.DisplaySpeed = walkSpeed
	}

	s.Tick++
	s.Elapsed += dt
	s.metrics.tick()
}

// offerMission advances the board to the next open mission.
func (s *State) offerMission() {
	m, ok := s.Missions.Next()
	if !ok {
		s.emit(Event{Type: EventMissionsExhausted})
		s.log.Debug().Msg("No missions left")
		return
	}
	s.emit(Event{Type: EventMissionOffered, Value: m.ID})
	s.log.Debug().Int("mission", m.ID).Str("description", m.Description).Msg("Mission offered")
}

func (s *State) updateMissions(dt float64) {
	if s.Missions.tickOffer(dt) {
		if _, active := s.Missions.Active(); !active {
			s.offerMission()
		}
	}
	m, done := s.Missions.Update(&s.Player, s.Player.EffectivePosition(s.Vehicles), dt)
	if !done {
		return
	}
	s.metrics.missionDone(m.ID)
	s.emit(Event{Type: EventMissionComplete, Value: m.ID})
	s.log.Info().
		Int("mission", m.ID).
		Int("reward", m.Reward).
		Int("cash", s.Player.Cash).
		Msg("Mission complete")
}

// MissionTarget is the active point target, if any.
func (s *State) MissionTarget() (Point, float64, bool) {
	m, ok := s.Missions.Active()
	if !ok || !m.IsPointTarget() {
		return Point{}, 0, false
	}
	return *m.Target, m.Radius, true
}

// VehicleView is the presentation copy of a vehicle.
type VehicleView struct {
	ID       VehicleID
	Kind     VehicleKind
	Color    RGB
	Police   bool
	X, Y     float64
	Angle    float64
	Speed    float64
	Occupied bool
}

// Snapshot is a read-only copy of everything a frame needs to draw.
type Snapshot struct {
	Tick        uint64
	Camera      Camera
	Clock       WorldClock
	Geometry    *Geometry // static; shared, not copied
	Vehicles    []VehicleView
	Player      Player
	Focus       Point
	ShowMinimap bool

	HasTarget    bool
	Target       Point
	TargetRadius float64
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.Tick,
		Camera:      s.Camera,
		Clock:       s.Clock,
		Geometry:    s.Geometry,
		Vehicles:    make([]VehicleView, len(s.Vehicles)),
		Player:      s.Player,
		Focus:       s.Player.EffectivePosition(s.Vehicles),
		ShowMinimap: s.ShowMinimap,
	}
	for i := range s.Vehicles {
		v := &s.Vehicles[i]
		snap.Vehicles[i] = VehicleView{
			ID:       v.ID,
			Kind:     v.Kind,
			Color:    v.Color,
			Police:   v.Police,
			X:        v.X,
			Y:        v.Y,
			Angle:    v.Angle,
			Speed:    v.Speed,
			Occupied: s.Player.Mounted() && s.Player.Vehicle == v.ID,
		}
	}
	snap.Target, snap.TargetRadius, snap.HasTarget = s.MissionTarget()
	return snap
}

// HUD holds the text-facing outputs of a tick.
type HUD struct {
	Speed    int
	Wanted   int
	Cash     int
	CashText string
	Clock    string
	Weather  string
	Mission  string
	District string
}

func (s *State) HUD() HUD {
	pos := s.Player.EffectivePosition(s.Vehicles)
	district := ""
	if d, ok := s.Geometry.DistrictAt(pos.X, pos.Y); ok {
		district = d.Name
	}
	return HUD{
		Speed:    int(s.DisplaySpeed),
		Wanted:   s.Player.Wanted,
		Cash:     s.Player.Cash,
		CashText: "$" + humanize.Comma(int64(s.Player.Cash)),
		Clock:    s.Clock.HHMM(),
		Weather:  s.Clock.Weather.String(),
		Mission:  s.Missions.Description(),
		District: district,
	}
}
