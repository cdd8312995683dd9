package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyState builds a session with no traffic and the given vehicles.
func emptyState(t *testing.T, vehicles ...Vehicle) *State {
	t.Helper()
	tn := DefaultTuning()
	tn.Civilians = 0
	tn.Police = 0
	tn.AutoOfferDelay = 0
	s := New(tn, NewRand(1))
	for i := range vehicles {
		vehicles[i].ID = VehicleID(i)
	}
	s.Vehicles = vehicles
	return s
}

func car(kind VehicleKind, x, y float64) Vehicle {
	return NewVehicle(0, kind, x, y, RGB{})
}

func TestToggleMount_PicksNearest(t *testing.T) {
	s := emptyState(t,
		car(KindCivilian, 1044, 1000),
		car(KindPolice, 1000, 1030),
	)
	s.Player.X, s.Player.Y = 1000, 1000

	require.True(t, s.ToggleMount())
	assert.False(t, s.Player.OnFoot)
	assert.Equal(t, VehicleID(1), s.Player.Vehicle)
}

func TestToggleMount_TieKeepsFirst(t *testing.T) {
	s := emptyState(t,
		car(KindCivilian, 1030, 1000),
		car(KindCivilian, 970, 1000),
	)
	s.Player.X, s.Player.Y = 1000, 1000

	require.True(t, s.ToggleMount())
	assert.Equal(t, VehicleID(0), s.Player.Vehicle)
}

func TestToggleMount_OutOfRange(t *testing.T) {
	s := emptyState(t, car(KindCivilian, 1045, 1000))
	s.Player.X, s.Player.Y = 1000, 1000

	assert.False(t, s.ToggleMount())
	assert.True(t, s.Player.OnFoot)
	assert.Equal(t, NoVehicle, s.Player.Vehicle)
}

func TestToggleMount_DismountAtVehicle(t *testing.T) {
	s := emptyState(t, car(KindCivilian, 1010, 1000))
	s.Player.X, s.Player.Y = 1000, 1000
	require.True(t, s.ToggleMount())

	s.Vehicles[0].X, s.Vehicles[0].Y = 2500, 600
	require.True(t, s.ToggleMount())
	assert.True(t, s.Player.OnFoot)
	assert.Equal(t, NoVehicle, s.Player.Vehicle)
	assert.Equal(t, 2500.0, s.Player.X)
	assert.Equal(t, 600.0, s.Player.Y)
}

func TestToggleMount_Events(t *testing.T) {
	s := emptyState(t, car(KindPolice, 1010, 1000))
	s.Player.X, s.Player.Y = 1000, 1000

	var got []Event
	s.Events().SubscribeAll(func(e Event) { got = append(got, e) })
	s.ToggleMount()
	s.ToggleMount()

	require.Len(t, got, 2)
	assert.Equal(t, EventMounted, got[0].Type)
	assert.True(t, got[0].Police)
	assert.Equal(t, EventDismounted, got[1].Type)
}

func mountedState(t *testing.T, others ...Vehicle) *State {
	t.Helper()
	vs := append([]Vehicle{car(KindCivilian, 1000, 1000)}, others...)
	s := emptyState(t, vs...)
	s.Player.X, s.Player.Y = 1000, 1000
	require.True(t, s.ToggleMount())
	require.Equal(t, VehicleID(0), s.Player.Vehicle)
	return s
}

func TestScanBumps_PoliceAlwaysCounts(t *testing.T) {
	s := mountedState(t, car(KindPolice, 1020, 1000))
	s.rng = noRand{t}

	s.scanBumps()
	assert.Equal(t, 1, s.Player.Wanted)
	assert.Equal(t, BumpDecayReset, s.WantedDecay)
}

func TestScanBumps_CivilianOdds(t *testing.T) {
	s := mountedState(t, car(KindCivilian, 1020, 1000))

	s.rng = &seqRand{vals: []float64{0.5}}
	s.scanBumps()
	assert.Equal(t, 0, s.Player.Wanted)
	assert.Equal(t, BumpDecayReset, s.WantedDecay, "contact restarts decay even without a gain")

	s.rng = &seqRand{vals: []float64{0.1}}
	s.scanBumps()
	assert.Equal(t, 1, s.Player.Wanted)
}

func TestScanBumps_Radius(t *testing.T) {
	s := mountedState(t, car(KindPolice, 1028, 1000))
	s.rng = noRand{t}
	s.scanBumps()
	assert.Equal(t, 0, s.Player.Wanted)
	assert.Equal(t, 0.0, s.WantedDecay)
}

func TestScanBumps_OnFootIgnored(t *testing.T) {
	s := emptyState(t, car(KindPolice, 1000, 1000))
	s.Player.X, s.Player.Y = 1000, 1000
	s.rng = noRand{t}
	s.scanBumps()
	assert.Equal(t, 0, s.Player.Wanted)
}

func TestScanBumps_CappedAtMax(t *testing.T) {
	s := mountedState(t,
		car(KindPolice, 1010, 1000),
		car(KindPolice, 990, 1000),
		car(KindPolice, 1000, 1010),
	)
	s.rng = noRand{t}
	s.Player.Wanted = 4

	var changes []int
	s.Events().Subscribe(EventWantedChanged, func(e Event) { changes = append(changes, e.Value) })
	s.scanBumps()
	assert.Equal(t, WantedMax, s.Player.Wanted)
	assert.Equal(t, []int{5}, changes)
}

func TestDecayWanted_DrainsToZero(t *testing.T) {
	s := emptyState(t)
	s.Player.Wanted = 3
	s.WantedDecay = WantedDecayStep

	for i := 0; i < 48; i++ {
		s.decayWanted(0.5)
		require.Greater(t, s.WantedDecay, 0.0)
		require.GreaterOrEqual(t, s.Player.Wanted, 0)
	}
	assert.Equal(t, 0, s.Player.Wanted)

	for i := 0; i < 100; i++ {
		s.decayWanted(0.5)
	}
	assert.Equal(t, 0, s.Player.Wanted)
	assert.Equal(t, WantedDecayStep, s.WantedDecay)
}

func TestDecayWanted_StepsOneAtATime(t *testing.T) {
	s := emptyState(t)
	s.Player.Wanted = 3
	s.WantedDecay = WantedDecayStep

	for i := 0; i < 15; i++ {
		s.decayWanted(0.5)
	}
	assert.Equal(t, 3, s.Player.Wanted)
	s.decayWanted(0.5)
	assert.Equal(t, 2, s.Player.Wanted)
	assert.Equal(t, WantedDecayStep, s.WantedDecay)
}
