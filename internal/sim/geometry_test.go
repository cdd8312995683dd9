package sim

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometry_Layout(t *testing.T) {
	g := NewGeometry(DefaultWorldSize, DefaultTile, 1)

	require.Len(t, g.Districts, 5)
	names := make([]string, 0, len(g.Districts))
	for _, d := range g.Districts {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Downtown", "Suburbs", "Industrial", "Docks", "Outskirts"}, names)

	// 15 downtown blocks plus the park come first.
	require.GreaterOrEqual(t, len(g.Buildings), 16)
	assert.Equal(t, g.Park, g.Buildings[15].Rect)
	assert.Equal(t, Rect{X: 1900, Y: 1900, W: 200, H: 200}, g.Park)

	// One horizontal and one vertical strip every two tiles.
	assert.Len(t, g.Roads, 2*25)
}

func TestNewGeometry_SameSeedSameMap(t *testing.T) {
	a := NewGeometry(DefaultWorldSize, DefaultTile, 77)
	b := NewGeometry(DefaultWorldSize, DefaultTile, 77)
	assert.Equal(t, a.Buildings, b.Buildings)
}

func TestNewGeometry_LotsStayInDistrictAndApart(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		g := NewGeometry(DefaultWorldSize, DefaultTile, seed)
		sub, _ := g.District("Suburbs")
		ind, _ := g.District("Industrial")

		for i := 16; i < len(g.Buildings); i++ {
			r := g.Buildings[i].Rect
			assert.True(t, sub.Rect.containsRect(r) || ind.Rect.containsRect(r), "seed %d lot %d outside districts", seed, i)
			for j := 0; j < i; j++ {
				assert.False(t, g.Buildings[j].Rect.overlapsInterior(r), "seed %d lot %d overlaps %d", seed, i, j)
			}
		}
	}
}

func TestGeometry_DistrictAt(t *testing.T) {
	g := NewGeometry(DefaultWorldSize, DefaultTile, 1)

	d, ok := g.DistrictAt(1900, 1820)
	require.True(t, ok)
	assert.Equal(t, "Downtown", d.Name)

	d, ok = g.DistrictAt(300, 300)
	require.True(t, ok)
	assert.Equal(t, "Outskirts", d.Name)
	assert.True(t, d.Outline)

	_, ok = g.DistrictAt(50, 50)
	assert.False(t, ok)
}

func TestQuadNode_QueryMatchesScan(t *testing.T) {
	r := NewRand(5)
	root := NewQuadNode(Rect{W: 1000, H: 1000}, 0)
	var rects []Rect
	for i := 0; i < 500; i++ {
		rc := Rect{X: r.Float64() * 950, Y: r.Float64() * 950, W: 1 + r.Float64()*50, H: 1 + r.Float64()*50}
		rects = append(rects, rc)
		root.Insert(i, rc)
	}

	for k := 0; k < 50; k++ {
		q := Rect{X: r.Float64() * 900, Y: r.Float64() * 900, W: r.Float64() * 200, H: r.Float64() * 200}
		var got []int
		root.Query(q, &got)
		sort.Ints(got)

		var want []int
		for i, rc := range rects {
			if rc.Intersects(q) {
				want = append(want, i)
			}
		}
		assert.Equal(t, want, got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, r.Contains(10, 10))
	assert.False(t, r.Contains(10.01, 5))
	assert.True(t, r.Intersects(Rect{X: 10, Y: 10, W: 5, H: 5}))
	assert.False(t, r.overlapsInterior(Rect{X: 10, Y: 0, W: 5, H: 5}))
	assert.Equal(t, Point{X: 5, Y: 5}, r.Center())
}
