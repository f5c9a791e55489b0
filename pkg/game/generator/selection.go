package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/graph"
)

// SelectEdges reduces a triangulation to the edges worth carving: a minimum
// spanning tree rooted at the first edge's U vertex, plus each remaining edge
// with independent probability chance. Remaining edges are visited in input
// order and each consumes exactly one draw from rng.
func SelectEdges[T any](rng *rand.Rand, edges []geom.Edge[T], chance float64) (tree, extra []geom.Edge[T]) {
	if len(edges) == 0 {
		return nil, nil
	}

	tree = graph.MinimumSpanningTree(edges, edges[0].U)

	inTree := mapset.New[geom.EdgeKey]()
	for _, e := range tree {
		inTree.Put(e.Key())
	}

	for _, e := range edges {
		if inTree.Has(e.Key()) {
			continue
		}
		if rng.Float64() < chance {
			extra = append(extra, e)
		}
	}
	return tree, extra
}
