// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// DefaultDumpFilename is where DumpToFile writes when no path is given
const DefaultDumpFilename = "map.txt"

// WriteDump writes a full debug dump of d: metadata, legend, map, rooms,
// selected edges with their hallways, and the full triangulation.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, d *generator.Dungeon) error {
	if d == nil || d.Grid == nil {
		return fmt.Errorf("no grid")
	}

	f := bufio.NewWriter(w)
	size := d.Grid.Size()
	cfg := d.Config
	s := d.Stats

	// --- Metadata (config and stats) ---
	fmt.Fprintln(f, "=== MAP DUMP DEBUG (rooms, triangulation, hallways) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(f, "grid_width: %d\n", size.X)
	fmt.Fprintf(f, "grid_height: %d\n", size.Y)
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "room_attempts: %d\n", cfg.RoomCount)
	fmt.Fprintf(f, "room_max_size: %dx%d\n", cfg.RoomMaxSize.X, cfg.RoomMaxSize.Y)
	fmt.Fprintf(f, "extra_edge_chance: %g\n", cfg.ExtraEdgeChance)
	fmt.Fprintf(f, "rooms_accepted: %d\n", s.Accepted)
	fmt.Fprintf(f, "rejected_overlap: %d\n", s.RejectedOverlap)
	fmt.Fprintf(f, "rejected_bounds: %d\n", s.RejectedBounds)
	fmt.Fprintf(f, "triangulation_edges: %d\n", s.TriangulationEdges)
	fmt.Fprintf(f, "tree_edges: %d\n", s.TreeEdges)
	fmt.Fprintf(f, "extra_edges: %d\n", s.ExtraEdges)
	fmt.Fprintf(f, "hallways_carved: %d\n", s.HallwaysCarved)
	fmt.Fprintf(f, "hallways_skipped: %d\n", s.HallwaysSkipped)
	fmt.Fprintf(f, "hallway_cells: %d\n", s.HallwayCells)
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintf(f, "%c = room  %c = room center  %c = hallway  space = empty\n",
		renderer.GlyphRoom, renderer.GlyphCenter, renderer.GlyphHallway)
	fmt.Fprintln(f, "")

	// --- Map ---
	fmt.Fprintln(f, "--- Map ---")
	for _, row := range renderer.Glyphs(d) {
		fmt.Fprintf(f, "|%s|\n", string(row))
	}
	fmt.Fprintln(f, "")

	// --- Rooms ---
	fmt.Fprintln(f, "--- Rooms (placement order) ---")
	for i, r := range d.Rooms {
		center := r.CenterCell()
		fmt.Fprintf(f, "  index: %d x: %d y: %d width: %d height: %d center: %d,%d\n",
			i, r.Bounds.Position.X, r.Bounds.Position.Y, r.Bounds.Size.X, r.Bounds.Size.Y, center.X, center.Y)
	}
	fmt.Fprintln(f, "")

	// --- Selected edges ---
	fmt.Fprintln(f, "--- Selected edges (tree first, then extra) ---")
	for i, e := range d.Edges {
		kind := "tree"
		if i >= s.TreeEdges {
			kind = "extra"
		}
		from, to := e.U.Item.CenterCell(), e.V.Item.CenterCell()
		fmt.Fprintf(f, "  kind: %s from: %d,%d to: %d,%d length: %.2f", kind, from.X, from.Y, to.X, to.Y, e.Distance())
		if i < len(d.Hallways) {
			fmt.Fprintf(f, " path_cells: %d", len(d.Hallways[i]))
		}
		fmt.Fprintln(f)
	}
	fmt.Fprintln(f, "")

	// --- Triangulation ---
	fmt.Fprintln(f, "--- Triangulation (all edges) ---")
	for _, e := range d.Triangulation {
		fmt.Fprintf(f, "  %.1f,%.1f - %.1f,%.1f\n", e.U.Position.X, e.U.Position.Y, e.V.Position.X, e.V.Position.Y)
	}

	return f.Flush()
}

// DumpToFile writes WriteDump output to path, or to map.txt in the working
// directory when path is empty. Returns the absolute path written.
func DumpToFile(d *generator.Dungeon, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, d); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
