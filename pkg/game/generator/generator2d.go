package generator

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

// Generator2D runs the full pipeline: place rooms, triangulate their centers,
// select spanning tree and extra edges, then carve a hallway per edge.
// A Generator2D holds no per-run state and may be shared; each run owns its
// own random source, grid and room list.
type Generator2D struct {
	placement Placement
	logger    *log.Logger
}

// Option configures a Generator2D
type Option func(*Generator2D)

// WithPlacement sets the room placement strategy
func WithPlacement(p Placement) Option {
	return func(g *Generator2D) {
		if p != nil {
			g.placement = p
		}
	}
}

// WithLogger sets the logger used for per-stage summaries
func WithLogger(l *log.Logger) Option {
	return func(g *Generator2D) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator2D creates a generator using random placement and no logging
func NewGenerator2D(opts ...Option) *Generator2D {
	g := &Generator2D{
		placement: RandomPlacement{},
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// With returns a copy of g with opts applied; g itself is unchanged
func (g *Generator2D) With(opts ...Option) *Generator2D {
	c := *g
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Placement returns the room placement strategy
func (g *Generator2D) Placement() Placement {
	return g.placement
}

// Name returns the name of this generator
func (g *Generator2D) Name() string {
	return "Delaunay2D/" + g.placement.Name()
}

// Generate builds a dungeon from cfg. The same cfg always yields the same dungeon.
func (g *Generator2D) Generate(cfg Config) (*Dungeon, error) {
	return g.GenerateContext(context.Background(), cfg)
}

// GenerateContext is Generate with cancellation, checked between stages and
// between hallways. A cancelled run returns the context's error and no dungeon.
func (g *Generator2D) GenerateContext(ctx context.Context, cfg Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	d := &Dungeon{
		Config: cfg,
		Grid:   world.NewGrid(cfg.Size, world.Empty),
	}

	rooms, err := g.placement.PlaceRooms(rng, d.Grid, cfg, &d.Stats)
	if err != nil {
		return nil, fmt.Errorf("place rooms: %w", err)
	}
	d.Rooms = rooms
	g.logger.Printf("placed %d rooms from %d attempts (%d overlapping, %d out of bounds)",
		d.Stats.Accepted, d.Stats.Attempts, d.Stats.RejectedOverlap, d.Stats.RejectedBounds)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.Triangulation = triangulate(d.Rooms)
	d.Stats.TriangulationEdges = len(d.Triangulation)
	g.logger.Printf("triangulated %d room centers into %d edges", len(d.Rooms), len(d.Triangulation))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree, extra := SelectEdges(rng, d.Triangulation, cfg.ExtraEdgeChance)
	d.Edges = append(append(d.Edges, tree...), extra...)
	d.Stats.TreeEdges = len(tree)
	d.Stats.ExtraEdges = len(extra)
	g.logger.Printf("selected %d spanning tree edges and %d extra edges", len(tree), len(extra))

	if err := g.carveHallways(ctx, d); err != nil {
		return nil, err
	}
	g.logger.Printf("carved %d hallways (%d cells), skipped %d",
		d.Stats.HallwaysCarved, d.Stats.HallwayCells, d.Stats.HallwaysSkipped)

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("generated dungeon is inconsistent: %w", err)
	}
	return d, nil
}

// triangulate connects room centers with Delaunay edges
func triangulate(rooms []*Room) []Edge {
	vertices := make([]*Vertex, len(rooms))
	for i, r := range rooms {
		vertices[i] = geom.NewVertex(r.Center(), r)
	}
	return geom.Triangulate(vertices).Edges
}

// carveHallways searches a path for each selected edge, in order, and carves it
// before the next search so later hallways see earlier ones.
func (g *Generator2D) carveHallways(ctx context.Context, d *Dungeon) error {
	pf := pathfind.New(d.Grid.Size())

	for _, edge := range d.Edges {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := edge.U.Item.CenterCell()
		end := edge.V.Item.CenterCell()

		path, err := pf.FindPath(start, end, HallwayCost(d.Grid, end))
		if err != nil {
			return fmt.Errorf("hallway %v→%v: %w", start, end, err)
		}
		if path == nil {
			d.Stats.HallwaysSkipped++
			continue
		}

		changed, err := CarveHallway(d.Grid, path.Cells)
		if err != nil {
			return err
		}
		d.Hallways = append(d.Hallways, path.Cells)
		d.Stats.HallwaysCarved++
		d.Stats.HallwayCells += changed
	}
	return nil
}
