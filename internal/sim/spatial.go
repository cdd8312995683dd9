package sim

// Spatial index.
const (
	QuadCapacity = 16
	QuadMaxDepth = 8
)

// Rect is an axis-aligned rectangle in world units. Edges are inclusive.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Intersects reports overlap; rectangles that only touch count as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return !(r.X+r.W < o.X || r.X > o.X+o.W || r.Y+r.H < o.Y || r.Y > o.Y+o.H)
}

func (r Rect) overlapsInterior(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

func (r Rect) containsRect(o Rect) bool {
	return o.X >= r.X && o.X+o.W <= r.X+r.W && o.Y >= r.Y && o.Y+o.H <= r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

type quadItem struct {
	id     int
	bounds Rect
}

// QuadNode is a simple quadtree over static rectangles.
type QuadNode struct {
	bounds Rect
	depth  int
	items  []quadItem
	child  [4]*QuadNode
}

func NewQuadNode(bounds Rect, depth int) *QuadNode {
	return &QuadNode{
		bounds: bounds,
		depth:  depth,
		items:  make([]quadItem, 0, QuadCapacity),
	}
}

func (n *QuadNode) Insert(id int, bounds Rect) {
	if n.child[0] != nil {
		if c := n.childThatContains(bounds); c != nil {
			c.Insert(id, bounds)
			return
		}
	}

	n.items = append(n.items, quadItem{id: id, bounds: bounds})

	if len(n.items) > QuadCapacity && n.depth < QuadMaxDepth {
		n.subdivide()
		kept := n.items[:0]
		for _, it := range n.items {
			if c := n.childThatContains(it.bounds); c != nil {
				c.Insert(it.id, it.bounds)
			} else {
				kept = append(kept, it)
			}
		}
		n.items = kept
	}
}

// Query appends the ids of every item whose bounds intersect r.
func (n *QuadNode) Query(r Rect, out *[]int) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, it := range n.items {
		if it.bounds.Intersects(r) {
			*out = append(*out, it.id)
		}
	}
	if n.child[0] == nil {
		return
	}
	for i := 0; i < 4; i++ {
		n.child[i].Query(r, out)
	}
}

func (n *QuadNode) subdivide() {
	if n.child[0] != nil {
		return
	}
	hw := n.bounds.W * 0.5
	hh := n.bounds.H * 0.5
	x, y := n.bounds.X, n.bounds.Y
	n.child[0] = NewQuadNode(Rect{X: x, Y: y, W: hw, H: hh}, n.depth+1)
	n.child[1] = NewQuadNode(Rect{X: x + hw, Y: y, W: hw, H: hh}, n.depth+1)
	n.child[2] = NewQuadNode(Rect{X: x, Y: y + hh, W: hw, H: hh}, n.depth+1)
	n.child[3] = NewQuadNode(Rect{X: x + hw, Y: y + hh, W: hw, H: hh}, n.depth+1)
}

func (n *QuadNode) childThatContains(b Rect) *QuadNode {
	for i := 0; i < 4; i++ {
		c := n.child[i]
		if c != nil && c.bounds.containsRect(b) {
			return c
		}
	}
	return nil
}
