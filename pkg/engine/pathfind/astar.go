// Package pathfind implements A* search over a 4-connected grid with a pluggable
// per-step cost function.
package pathfind

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/world"
)

// PathCost describes one step onto a neighbouring cell.
type PathCost struct {
	// Traversable is false for cells the path may not enter.
	Traversable bool
	// Cost is added to the accumulated path cost when the step is taken.
	Cost float64
	// Heuristic estimates the remaining cost from the neighbour to the goal.
	Heuristic float64
}

// CostFunc prices a step from a cell to one of its neighbours. It must not
// mutate whatever it reads; the grid is treated as a snapshot for one search.
type CostFunc func(from, to world.Vector2Int) PathCost

// Path is a found route, start and end inclusive.
type Path struct {
	Cells []world.Vector2Int
	Cost  float64
}

// Len returns the number of cells on the path
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Cells)
}

// node is the per-cell search record. stamp marks which search last touched it
// so the buffer can be reused without clearing.
type node struct {
	previous int
	cost     float64
	stamp    uint64
}

// openEntry is a queued visit; seq breaks priority ties in push order.
type openEntry struct {
	index    int
	priority float64
	seq      uint64
}

// Pathfinder searches one fixed-size grid. Its buffers are reused between
// searches, so a Pathfinder must not be used from several goroutines at once.
type Pathfinder struct {
	size  world.Vector2Int
	nodes []node
	stamp uint64
}

// New creates a pathfinder for grids of the given size
func New(size world.Vector2Int) *Pathfinder {
	if size.X <= 0 || size.Y <= 0 {
		panic("Pathfinder dimensions must be positive")
	}
	return &Pathfinder{
		size:  size,
		nodes: make([]node, size.X*size.Y),
	}
}

// Size returns the grid size the pathfinder was built for
func (p *Pathfinder) Size() world.Vector2Int {
	return p.size
}

func (p *Pathfinder) inBounds(pos world.Vector2Int) bool {
	return pos.X >= 0 && pos.X < p.size.X && pos.Y >= 0 && pos.Y < p.size.Y
}

func (p *Pathfinder) index(pos world.Vector2Int) int {
	return pos.Y*p.size.X + pos.X
}

func (p *Pathfinder) position(i int) world.Vector2Int {
	return world.Vector2Int{X: i % p.size.X, Y: i / p.size.X}
}

// node returns the record for index i, resetting it if a previous search owns it
func (p *Pathfinder) node(i int) *node {
	n := &p.nodes[i]
	if n.stamp != p.stamp {
		*n = node{previous: -1, cost: math.Inf(1), stamp: p.stamp}
	}
	return n
}

// FindPath returns the lowest-cost path from start to end. A nil path with a
// nil error means the goal cannot be reached. Start or end outside the grid
// is reported as world.ErrOutOfRange.
func (p *Pathfinder) FindPath(start, end world.Vector2Int, costFn CostFunc) (*Path, error) {
	if !p.inBounds(start) {
		return nil, fmt.Errorf("path start %v: %w", start, world.ErrOutOfRange)
	}
	if !p.inBounds(end) {
		return nil, fmt.Errorf("path end %v: %w", end, world.ErrOutOfRange)
	}

	p.stamp++

	open := heap.New[openEntry](func(a, b openEntry) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
	closed := mapset.New[int]()
	var seq uint64

	startIndex, endIndex := p.index(start), p.index(end)
	p.node(startIndex).cost = 0
	open.Push(openEntry{index: startIndex})

	for open.Size() > 0 {
		entry, _ := open.Pop()
		if closed.Has(entry.index) {
			continue
		}
		closed.Put(entry.index)

		if entry.index == endIndex {
			return p.reconstruct(endIndex), nil
		}

		current := p.node(entry.index)
		pos := p.position(entry.index)

		for _, dir := range world.AllDirections() {
			next := pos.Neighbor(dir)
			if !p.inBounds(next) {
				continue
			}
			nextIndex := p.index(next)
			if closed.Has(nextIndex) {
				continue
			}

			step := costFn(pos, next)
			if !step.Traversable {
				continue
			}

			newCost := current.cost + step.Cost
			neighbor := p.node(nextIndex)
			if newCost >= neighbor.cost {
				continue
			}
			neighbor.cost = newCost
			neighbor.previous = entry.index

			seq++
			open.Push(openEntry{index: nextIndex, priority: newCost + step.Heuristic, seq: seq})
		}
	}

	return nil, nil
}

func (p *Pathfinder) reconstruct(endIndex int) *Path {
	var cells []world.Vector2Int
	for i := endIndex; i >= 0; i = p.nodes[i].previous {
		cells = append(cells, p.position(i))
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return &Path{Cells: cells, Cost: p.nodes[endIndex].cost}
}

// Cost re-prices an existing path with costFn, summing every step after the first cell
func Cost(cells []world.Vector2Int, costFn CostFunc) float64 {
	total := 0.0
	for i := 1; i < len(cells); i++ {
		total += costFn(cells[i-1], cells[i]).Cost
	}
	return total
}

// Validate reports whether cells form a contiguous in-bounds path from start to end
func Validate(cells []world.Vector2Int, start, end world.Vector2Int, size world.Vector2Int) error {
	if len(cells) == 0 {
		return fmt.Errorf("empty path")
	}
	if cells[0] != start || cells[len(cells)-1] != end {
		return fmt.Errorf("path runs %v→%v, want %v→%v", cells[0], cells[len(cells)-1], start, end)
	}
	bounds := world.NewRect(world.Vector2Int{}, size)
	for i, c := range cells {
		if !bounds.Contains(c) {
			return fmt.Errorf("path cell %d %v: %w", i, c, world.ErrOutOfRange)
		}
		if i > 0 && !world.IsAdjacent(cells[i-1], c) {
			return fmt.Errorf("path cells %v and %v are not adjacent", cells[i-1], c)
		}
	}
	return nil
}
