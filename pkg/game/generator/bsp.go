package generator

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
)

// BSPPlacement places rooms using Binary Space Partitioning. The grid is split
// recursively; each leaf yields one room kept a cell away from the leaf edge,
// so rooms from different leaves never touch.
type BSPPlacement struct {
	// MinNodeSize is the smallest leaf side. Zero derives it from RoomMaxSize.
	MinNodeSize int
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	bounds      world.RectInt
	left, right *bspNode
}

// Name returns the name of this placement strategy
func (BSPPlacement) Name() string {
	return "bsp"
}

func (p BSPPlacement) minNodeSize(cfg Config) int {
	if p.MinNodeSize > 0 {
		return p.MinNodeSize
	}
	// Room plus a one-cell margin on both sides.
	return max(cfg.RoomMaxSize.X, cfg.RoomMaxSize.Y, 1) + 2
}

// PlaceRooms splits the grid and takes one candidate room per leaf, in tree order,
// until cfg.RoomCount candidates have been tried.
func (p BSPPlacement) PlaceRooms(rng *rand.Rand, grid *world.Grid[world.CellType], cfg Config, stats *Stats) ([]*Room, error) {
	root := &bspNode{bounds: world.NewRect(world.Vec(0, 0), cfg.Size)}
	splitBSP(rng, root, p.minNodeSize(cfg))

	var rooms []*Room
	for _, leaf := range collectLeaves(root) {
		if stats.Attempts >= cfg.RoomCount {
			break
		}
		candidate := leafRoom(rng, leaf.bounds, cfg.RoomMaxSize)
		if candidate == nil {
			continue
		}

		var err error
		rooms, err = acceptCandidate(grid, rooms, candidate, stats)
		if err != nil {
			return nil, err
		}
	}
	return rooms, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	width, height := node.bounds.Size.X, node.bounds.Size.Y
	canSplitX := width >= minSize*2
	canSplitY := height >= minSize*2

	var splitHorizontal bool
	switch {
	case !canSplitX && !canSplitY:
		return // Too small to split
	case width > height && canSplitX:
		splitHorizontal = false
	case height > width && canSplitY:
		splitHorizontal = true
	case canSplitX && canSplitY:
		splitHorizontal = rng.Intn(2) == 0
	default:
		splitHorizontal = canSplitY
	}

	pos := node.bounds.Position
	if splitHorizontal {
		// Top and bottom
		splitPoint := minSize + rng.Intn(height-minSize*2+1)
		node.left = &bspNode{bounds: world.NewRect(pos, world.Vec(width, splitPoint))}
		node.right = &bspNode{bounds: world.NewRect(world.Vec(pos.X, pos.Y+splitPoint), world.Vec(width, height-splitPoint))}
	} else {
		// Left and right
		splitPoint := minSize + rng.Intn(width-minSize*2+1)
		node.left = &bspNode{bounds: world.NewRect(pos, world.Vec(splitPoint, height))}
		node.right = &bspNode{bounds: world.NewRect(world.Vec(pos.X+splitPoint, pos.Y), world.Vec(width-splitPoint, height))}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// collectLeaves returns the leaves left to right
func collectLeaves(node *bspNode) []*bspNode {
	if node.left == nil && node.right == nil {
		return []*bspNode{node}
	}
	var leaves []*bspNode
	if node.left != nil {
		leaves = append(leaves, collectLeaves(node.left)...)
	}
	if node.right != nil {
		leaves = append(leaves, collectLeaves(node.right)...)
	}
	return leaves
}

// leafRoom sizes and positions a room inside leaf with a one-cell margin.
// Draw order is size x, size y, offset x, offset y. Returns nil when the leaf is
// too thin to hold a room.
func leafRoom(rng *rand.Rand, leaf world.RectInt, maxSize world.Vector2Int) *Room {
	inner := world.NewRect(leaf.Position.Add(world.Vec(1, 1)), leaf.Size.Sub(world.Vec(2, 2)))
	if inner.Size.X < 1 || inner.Size.Y < 1 {
		return nil
	}

	size := world.Vec(
		1+rng.Intn(min(maxSize.X, inner.Size.X)),
		1+rng.Intn(min(maxSize.Y, inner.Size.Y)),
	)
	location := world.Vec(
		inner.Position.X+rng.Intn(inner.Size.X-size.X+1),
		inner.Position.Y+rng.Intn(inner.Size.Y-size.Y+1),
	)
	return NewRoom(location, size)
}
