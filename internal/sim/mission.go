package sim

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed missions.yaml
var defaultMissionsYAML []byte

var (
	ErrNoMissions       = errors.New("mission pool is empty")
	ErrDuplicateMission = errors.New("duplicate mission id")
	ErrMissionPredicate = errors.New("mission needs exactly one of target or lose_cops_for")
	ErrNegativeReward   = errors.New("mission reward is negative")
	ErrTargetOutside    = errors.New("mission target lies outside the world")
)

// Mission is one objective from the static pool. Exactly one of Target and
// LoseCopsFor is set.
type Mission struct {
	ID          int
	Description string
	Target      *Point
	Radius      float64
	LoseCopsFor float64 // seconds of continuous zero wanted level
	Reward      int
}

// IsPointTarget reports whether the mission completes by reaching Target.
func (m Mission) IsPointTarget() bool {
	return m.Target != nil
}

type missionFile struct {
	Missions []missionEntry `yaml:"missions"`
}

type missionEntry struct {
	ID          int          `yaml:"id"`
	Description string       `yaml:"description"`
	Target      *offsetEntry `yaml:"target"`
	Radius      float64      `yaml:"radius"`
	LoseCopsFor float64      `yaml:"lose_cops_for"`
	Reward      int          `yaml:"reward"`
}

type offsetEntry struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// ParseMissions decodes a YAML mission pool. Target offsets are resolved
// against the centre of a world of the given size.
func ParseMissions(data []byte, worldSize float64) ([]Mission, error) {
	var f missionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("missions: %w", err)
	}
	if len(f.Missions) == 0 {
		return nil, ErrNoMissions
	}
	half := worldSize / 2
	seen := make(map[int]struct{}, len(f.Missions))
	out := make([]Mission, 0, len(f.Missions))
	for _, e := range f.Missions {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("mission %d: %w", e.ID, ErrDuplicateMission)
		}
		seen[e.ID] = struct{}{}
		if (e.Target == nil) == (e.LoseCopsFor <= 0) {
			return nil, fmt.Errorf("mission %d: %w", e.ID, ErrMissionPredicate)
		}
		if e.Reward < 0 {
			return nil, fmt.Errorf("mission %d: %w", e.ID, ErrNegativeReward)
		}
		m := Mission{
			ID:          e.ID,
			Description: e.Description,
			LoseCopsFor: e.LoseCopsFor,
			Reward:      e.Reward,
		}
		if e.Target != nil {
			m.Target = &Point{X: half + e.Target.DX, Y: half + e.Target.DY}
			if !insideWorld(*m.Target, worldSize) {
				return nil, fmt.Errorf("mission %d at (%v,%v): %w", e.ID, m.Target.X, m.Target.Y, ErrTargetOutside)
			}
			m.Radius = e.Radius
			if m.Radius <= 0 {
				m.Radius = MissionRadius
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func insideWorld(p Point, size float64) bool {
	return p.X >= 0 && p.X <= size && p.Y >= 0 && p.Y <= size
}

// DefaultMissions returns the built-in pool for a world of the given size,
// which must be at least MinWorldSize.
func DefaultMissions(worldSize float64) []Mission {
	ms, err := ParseMissions(defaultMissionsYAML, worldSize)
	if err != nil {
		panic(fmt.Sprintf("built-in missions: %v", err))
	}
	return ms
}

type MissionStatus uint8

const (
	StatusNone MissionStatus = iota
	StatusActive
	StatusAllComplete
)

const (
	noMissionText  = "None"
	allMissionText = "All missions done!"
)

// MissionBoard tracks the active mission and which ones are done.
type MissionBoard struct {
	pool      []Mission
	active    int // index into pool, -1 when inactive
	Timer     float64
	completed map[int]struct{}
	exhausted bool

	// Counts down in simulated time to the one automatic offer; negative
	// once it has fired or when disabled.
	offerDelay float64
}

func NewMissionBoard(pool []Mission, autoOfferDelay float64) *MissionBoard {
	if autoOfferDelay <= 0 {
		autoOfferDelay = -1
	}
	return &MissionBoard{
		pool:       pool,
		active:     -1,
		completed:  make(map[int]struct{}, len(pool)),
		offerDelay: autoOfferDelay,
	}
}

// Next activates the first mission not yet completed, in pool order. When
// none remain the board goes inactive and reports all complete.
func (b *MissionBoard) Next() (Mission, bool) {
	b.Timer = 0
	for i, m := range b.pool {
		if _, done := b.completed[m.ID]; done {
			continue
		}
		b.active = i
		b.exhausted = false
		return m, true
	}
	b.active = -1
	b.exhausted = true
	return Mission{}, false
}

// tickOffer runs the start-of-session countdown and reports whether the
// automatic offer fires this tick.
func (b *MissionBoard) tickOffer(dt float64) bool {
	if b.offerDelay < 0 {
		return false
	}
	b.offerDelay -= dt
	if b.offerDelay > 0 {
		return false
	}
	b.offerDelay = -1
	return true
}

// Update evaluates the active mission for one tick. On completion the
// reward is paid to p and the completed mission is returned.
func (b *MissionBoard) Update(p *Player, pos Point, dt float64) (Mission, bool) {
	m, ok := b.Active()
	if !ok {
		return Mission{}, false
	}
	if m.IsPointTarget() {
		if pos.Dist(*m.Target) >= m.Radius {
			return Mission{}, false
		}
	} else {
		if p.Wanted != 0 {
			b.Timer = 0
			return Mission{}, false
		}
		b.Timer += dt
		if b.Timer < m.LoseCopsFor {
			return Mission{}, false
		}
	}
	p.Cash += m.Reward
	b.completed[m.ID] = struct{}{}
	b.active = -1
	b.Timer = 0
	return m, true
}

func (b *MissionBoard) Active() (Mission, bool) {
	if b.active < 0 {
		return Mission{}, false
	}
	return b.pool[b.active], true
}

func (b *MissionBoard) Status() MissionStatus {
	switch {
	case b.active >= 0:
		return StatusActive
	case b.exhausted:
		return StatusAllComplete
	default:
		return StatusNone
	}
}

// Description is the HUD text for the board.
func (b *MissionBoard) Description() string {
	switch b.Status() {
	case StatusActive:
		return b.pool[b.active].Description
	case StatusAllComplete:
		return allMissionText
	default:
		return noMissionText
	}
}

func (b *MissionBoard) Completed(id int) bool {
	_, ok := b.completed[id]
	return ok
}

func (b *MissionBoard) CompletedCount() int {
	return len(b.completed)
}

func (b *MissionBoard) Pool() []Mission {
	return b.pool
}
