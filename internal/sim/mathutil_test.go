package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// seqRand replays a fixed sequence, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// noRand fails the test on any draw.
type noRand struct{ t *testing.T }

func (r noRand) Float64() float64 {
	r.t.Helper()
	r.t.Fatal("unexpected random draw")
	return 0
}

func TestRand_Deterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
}

func TestRand_ZeroSeedUsable(t *testing.T) {
	r := NewRand(0)
	assert.NotZero(t, r.NextU64())
}

func TestRand_Float64Range(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestAngDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same", 1, 1, 0},
		{"quarter left", 0, math.Pi / 2, math.Pi / 2},
		{"quarter right", 0, -math.Pi / 2, -math.Pi / 2},
		{"half turn is positive", 0, math.Pi, math.Pi},
		{"minus half turn folds to plus", 0, -math.Pi, math.Pi},
		{"wraps across zero", 0.1, 2*math.Pi - 0.1, -0.2},
		{"many turns", 0, 7 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angDiff(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Greater(t, got, -math.Pi)
			assert.LessOrEqual(t, got, math.Pi)
		})
	}
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 1.0, wrap(25, 24), 1e-12)
	assert.InDelta(t, 23.0, wrap(-1, 24), 1e-12)
	assert.Equal(t, 0.0, wrap(24, 24))
	assert.Equal(t, 0.0, wrap(-1e-18, 24))
}

func TestRangeF(t *testing.T) {
	r := &seqRand{vals: []float64{0, 0.5}}
	assert.Equal(t, -10.0, rangeF(r, -10, 10))
	assert.Equal(t, 0.0, rangeF(r, -10, 10))
	assert.Equal(t, 3.0, rangeF(noRand{t}, 3, 3))
}
