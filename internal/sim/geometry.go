package sim

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

type District struct {
	Name    string
	Rect    Rect
	Color   RGB
	Outline bool
}

type Road struct {
	Rect     Rect
	Vertical bool
}

type Building struct {
	Rect  Rect
	Color RGB
}

// Geometry is the static city layout. It is built once and never mutated.
type Geometry struct {
	Size      float64
	Districts []District
	Roads     []Road
	Buildings []Building
	Park      Rect

	spatial *QuadNode
}

// Downtown block grid.
const (
	downtownCols   = 5
	downtownRows   = 3
	downtownPitchX = 240.0
	downtownPitchY = 250.0
	downtownInset  = 20.0
	downtownBuildW = 200.0
	downtownBuildH = 210.0
	downtownOrigin = -650.0
	parkHalf       = 100.0
)

// Procedural lots.
const (
	lotMargin    = 14.0
	lotThreshold = 0.45
	lotNoiseFreq = 1.0 / 700.0
	lotMinFrac   = 0.45
)

// NewGeometry lays out the city for a square world of the given size.
// Suburb and industrial lots are generated from seeded noise, so the same
// seed always yields the same map.
func NewGeometry(size, tile float64, seed int64) *Geometry {
	half := size / 2
	g := &Geometry{
		Size: size,
		Districts: []District{
			{Name: "Downtown", Rect: Rect{X: half - 700, Y: half - 700, W: 1200, H: 900}, Color: hex(0x1f2933)},
			{Name: "Suburbs", Rect: Rect{X: half - 1400, Y: half + 100, W: 1400, H: 900}, Color: hex(0x253241)},
			{Name: "Industrial", Rect: Rect{X: half + 200, Y: half + 200, W: 1100, H: 900}, Color: hex(0x1a2530)},
			{Name: "Docks", Rect: Rect{X: half - 1400, Y: half - 1400, W: 900, H: 600}, Color: hex(0x1a2230)},
			{Name: "Outskirts", Rect: Rect{X: 200, Y: 200, W: size - 400, H: size - 400}, Color: hex(0x141b22), Outline: true},
		},
		Park:    Rect{X: half - parkHalf, Y: half - parkHalf, W: 2 * parkHalf, H: 2 * parkHalf},
		spatial: NewQuadNode(Rect{X: 0, Y: 0, W: size, H: size}, 0),
	}

	pitch := tile * 2
	for i := 0.0; i < size; i += pitch {
		g.Roads = append(g.Roads,
			Road{Rect: Rect{X: i, Y: 0, W: RoadWidth, H: size}, Vertical: true},
			Road{Rect: Rect{X: 0, Y: i, W: size, H: RoadWidth}},
		)
	}

	for i := 0; i < downtownCols*downtownRows; i++ {
		x := half + downtownOrigin + float64(i%downtownCols)*downtownPitchX
		y := half + downtownOrigin + float64(i/downtownCols)*downtownPitchY
		g.addBuilding(Rect{X: x + downtownInset, Y: y + downtownInset, W: downtownBuildW, H: downtownBuildH}, Palette.Downtown[i%3])
	}
	g.addBuilding(g.Park, Palette.Park)

	noise := opensimplex.NewNormalized(seed)
	g.fillLots(noise, "Suburbs", pitch, Palette.Suburb)
	g.fillLots(noise, "Industrial", pitch, Palette.Industrial)
	return g
}

func (g *Geometry) addBuilding(r Rect, col RGB) {
	g.spatial.Insert(len(g.Buildings), r)
	g.Buildings = append(g.Buildings, Building{Rect: r, Color: col})
}

// fillLots places at most one building in every road cell lying fully inside
// the named district, skipping cells the noise field leaves empty.
func (g *Geometry) fillLots(noise opensimplex.Noise, district string, pitch float64, colors [3]RGB) {
	d, ok := g.District(district)
	if !ok {
		return
	}
	n := 0
	for cy := math.Floor(d.Rect.Y/pitch) * pitch; cy < d.Rect.Y+d.Rect.H; cy += pitch {
		for cx := math.Floor(d.Rect.X/pitch) * pitch; cx < d.Rect.X+d.Rect.W; cx += pitch {
			cell := Rect{X: cx + RoadWidth, Y: cy + RoadWidth, W: pitch - RoadWidth, H: pitch - RoadWidth}
			if !d.Rect.containsRect(cell) {
				continue
			}
			v := noise.Eval2(cell.X*lotNoiseFreq, cell.Y*lotNoiseFreq)
			if v < lotThreshold {
				continue
			}
			frac := lotMinFrac + (1-lotMinFrac)*(v-lotThreshold)/(1-lotThreshold)
			w := (cell.W - 2*lotMargin) * frac
			h := (cell.H - 2*lotMargin) * frac
			lot := Rect{X: cell.X + lotMargin, Y: cell.Y + lotMargin, W: w, H: h}
			if g.overlapsBuilding(lot) {
				continue
			}
			g.addBuilding(lot, colors[n%len(colors)])
			n++
		}
	}
}

func (g *Geometry) overlapsBuilding(r Rect) bool {
	for _, i := range g.BuildingsIn(r) {
		if g.Buildings[i].Rect.overlapsInterior(r) {
			return true
		}
	}
	return false
}

// BuildingsIn returns the indices of buildings whose bounds touch r.
func (g *Geometry) BuildingsIn(r Rect) []int {
	var out []int
	g.spatial.Query(r, &out)
	return out
}

func (g *Geometry) District(name string) (District, bool) {
	for _, d := range g.Districts {
		if d.Name == name {
			return d, true
		}
	}
	return District{}, false
}

// DistrictAt returns the named district containing (x,y). Outlined
// districts only match when no other district does.
func (g *Geometry) DistrictAt(x, y float64) (District, bool) {
	var fallback *District
	for i := range g.Districts {
		d := &g.Districts[i]
		if !d.Rect.Contains(x, y) {
			continue
		}
		if !d.Outline {
			return *d, true
		}
		if fallback == nil {
			fallback = d
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return District{}, false
}
