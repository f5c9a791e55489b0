package geom

import (
	"github.com/zyedidia/generic/mapset"
)

// ghost is the vertex at infinity. Every convex hull edge carries a ghost
// triangle so points outside the current hull are handled like any other.
const ghost = -1

// Triangulation is the Delaunay triangulation of a point set.
type Triangulation[T any] struct {
	// Vertices holds the distinct input vertices in input order.
	Vertices []*Vertex[T]
	// Edges holds every triangle edge exactly once, in discovery order.
	Edges []Edge[T]

	triangles []triangle
}

// triangle holds three vertex indices in counterclockwise order. A ghost
// triangle has c == ghost; a, b is then a hull edge with the outside of the
// hull on its left.
type triangle struct {
	a, b, c int
}

// makeTriangle keeps the cyclic order of a, b, c and rotates a ghost vertex last
func makeTriangle(a, b, c int) triangle {
	switch ghost {
	case a:
		return triangle{a: b, b: c, c: a}
	case b:
		return triangle{a: c, b: a, c: b}
	}
	return triangle{a: a, b: b, c: c}
}

func (t triangle) isGhost() bool {
	return t.c == ghost
}

// circumcircleContains reports whether p lies strictly inside the circumcircle.
// The circumcircle of a ghost triangle is the open half-plane beyond its hull
// edge plus the open edge itself.
func (t triangle) circumcircleContains(points []Vector2, p Vector2) bool {
	if !t.isGhost() {
		return inCircle(points[t.a], points[t.b], points[t.c], p) > 0
	}

	u, v := points[t.a], points[t.b]
	switch orient(u, v, p) {
	case 1:
		return true
	case -1:
		return false
	}
	return strictlyBetween(u, v, p)
}

// strictlyBetween reports whether p, collinear with u and v, lies inside the segment
func strictlyBetween(u, v, p Vector2) bool {
	if u.X != v.X {
		return (u.X < p.X && p.X < v.X) || (v.X < p.X && p.X < u.X)
	}
	return (u.Y < p.Y && p.Y < v.Y) || (v.Y < p.Y && p.Y < u.Y)
}

type indexEdge struct {
	a, b int
}

func (e indexEdge) canonical() indexEdge {
	if e.b < e.a {
		return indexEdge{a: e.b, b: e.a}
	}
	return e
}

func (t triangle) edges() [3]indexEdge {
	return [3]indexEdge{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

// Triangulate computes the Delaunay triangulation of the vertices using the
// Bowyer-Watson algorithm. Vertices sharing a position are collapsed to the first.
// Fewer than three distinct points, or all points collinear, yield no edges.
// The hull is closed with ghost triangles sharing one vertex at infinity and
// all orientation and circumcircle tests are exact, so every hull edge is kept
// and cocircular points (common on a half-cell lattice) are handled.
func Triangulate[T any](vertices []*Vertex[T]) *Triangulation[T] {
	t := &Triangulation[T]{}

	seen := mapset.New[Vector2]()
	for _, v := range vertices {
		if v == nil || seen.Has(v.Position) {
			continue
		}
		seen.Put(v.Position)
		t.Vertices = append(t.Vertices, v)
	}

	n := len(t.Vertices)
	if n < 3 {
		return t
	}

	points := make([]Vector2, n)
	for i, v := range t.Vertices {
		points[i] = v.Position
	}

	// Start from the first three points that are not collinear.
	a, b, c := 0, 1, -1
	for i := 2; i < n; i++ {
		if orient(points[a], points[b], points[i]) != 0 {
			c = i
			break
		}
	}
	if c < 0 {
		return t
	}
	if orient(points[a], points[b], points[c]) < 0 {
		a, b = b, a
	}
	triangles := []triangle{
		makeTriangle(a, b, c),
		makeTriangle(b, a, ghost),
		makeTriangle(c, b, ghost),
		makeTriangle(a, c, ghost),
	}

	for i := 0; i < n; i++ {
		if i == a || i == b || i == c {
			continue
		}
		p := points[i]

		// Edges of the cavity left by removing every triangle whose
		// circumcircle holds p; shared edges are interior and dropped.
		counts := make(map[indexEdge]int)
		var order []indexEdge
		kept := triangles[:0:0]
		for _, tri := range triangles {
			if !tri.circumcircleContains(points, p) {
				kept = append(kept, tri)
				continue
			}
			for _, e := range tri.edges() {
				key := e.canonical()
				if counts[key] == 0 {
					order = append(order, e)
				}
				counts[key]++
			}
		}

		for _, e := range order {
			if counts[e.canonical()] != 1 {
				continue
			}
			kept = append(kept, makeTriangle(e.a, e.b, i))
		}
		triangles = kept
	}

	edgeSeen := mapset.New[indexEdge]()
	for _, tri := range triangles {
		if tri.isGhost() || orient(points[tri.a], points[tri.b], points[tri.c]) <= 0 {
			continue
		}
		t.triangles = append(t.triangles, tri)
		for _, e := range tri.edges() {
			key := e.canonical()
			if edgeSeen.Has(key) {
				continue
			}
			edgeSeen.Put(key)
			t.Edges = append(t.Edges, NewEdge(t.Vertices[e.a], t.Vertices[e.b]))
		}
	}

	return t
}
