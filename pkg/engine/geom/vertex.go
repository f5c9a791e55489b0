package geom

// Vertex is an immutable point tagged with an opaque payload. Triangulation and
// spanning-tree code never look at Item.
type Vertex[T any] struct {
	Position Vector2
	Item     T
}

// NewVertex creates a vertex at position carrying item
func NewVertex[T any](position Vector2, item T) *Vertex[T] {
	return &Vertex[T]{Position: position, Item: item}
}

// EdgeKey identifies an undirected edge by its endpoint positions, smaller point first.
// It is comparable and so can key maps and sets.
type EdgeKey struct {
	A Vector2
	B Vector2
}

// Edge is an unordered pair of vertices. Edge{U, V} and Edge{V, U} are the same edge.
type Edge[T any] struct {
	U *Vertex[T]
	V *Vertex[T]
}

// NewEdge creates the edge between u and v
func NewEdge[T any](u, v *Vertex[T]) Edge[T] {
	return Edge[T]{U: u, V: v}
}

// Key returns the orientation-independent identity of the edge
func (e Edge[T]) Key() EdgeKey {
	a, b := e.U.Position, e.V.Position
	if less(b, a) {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Equal reports whether e and o join the same two points
func (e Edge[T]) Equal(o Edge[T]) bool {
	return e.Key() == o.Key()
}

// Distance returns the Euclidean length of the edge
func (e Edge[T]) Distance() float64 {
	return Distance(e.U.Position, e.V.Position)
}

// Other returns the endpoint opposite v, or nil if v is not an endpoint
func (e Edge[T]) Other(v *Vertex[T]) *Vertex[T] {
	switch v.Position {
	case e.U.Position:
		return e.V
	case e.V.Position:
		return e.U
	}
	return nil
}
