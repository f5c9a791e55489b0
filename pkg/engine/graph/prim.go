// Package graph selects spanning trees over geometric edge lists.
package graph

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/geom"
)

// candidate is a frontier edge waiting in the priority queue
type candidate struct {
	index  int
	weight float64
}

// MinimumSpanningTree returns a minimum spanning tree of the component containing
// start, using Prim's algorithm with edges weighted by Euclidean length.
// Vertices are identified by position. Equal weights are broken by the edge's index
// in edges, so the result is reproducible. Vertices not reachable from start are
// left out; a nil start or empty edge list yields nil.
func MinimumSpanningTree[T any](edges []geom.Edge[T], start *geom.Vertex[T]) []geom.Edge[T] {
	if start == nil || len(edges) == 0 {
		return nil
	}

	incident := make(map[geom.Vector2][]int)
	for i, e := range edges {
		incident[e.U.Position] = append(incident[e.U.Position], i)
		if e.V.Position != e.U.Position {
			incident[e.V.Position] = append(incident[e.V.Position], i)
		}
	}

	frontier := heap.New[candidate](func(a, b candidate) bool {
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		return a.index < b.index
	})
	visited := mapset.New[geom.Vector2]()

	visit := func(p geom.Vector2) {
		visited.Put(p)
		for _, i := range incident[p] {
			frontier.Push(candidate{index: i, weight: edges[i].Distance()})
		}
	}
	visit(start.Position)

	var tree []geom.Edge[T]
	for frontier.Size() > 0 {
		c, _ := frontier.Pop()
		e := edges[c.index]

		uIn, vIn := visited.Has(e.U.Position), visited.Has(e.V.Position)
		if uIn && vIn {
			continue
		}

		tree = append(tree, e)
		if uIn {
			visit(e.V.Position)
		} else {
			visit(e.U.Position)
		}
	}

	return tree
}

// TotalWeight returns the summed Euclidean length of edges
func TotalWeight[T any](edges []geom.Edge[T]) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Distance()
	}
	return total
}
