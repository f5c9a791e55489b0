package renderer

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// Map glyphs shared by every text backend
const (
	GlyphEmpty   = ' '
	GlyphRoom    = '.'
	GlyphHallway = '#'
	GlyphCenter  = 'o'
	GlyphUnknown = '?'
)

// Glyph returns the map character for a cell type
func Glyph(c world.CellType) rune {
	switch c {
	case world.Empty:
		return GlyphEmpty
	case world.Room:
		return GlyphRoom
	case world.Hallway:
		return GlyphHallway
	default:
		return GlyphUnknown
	}
}

// Glyphs returns the dungeon as rows of glyphs, row 0 first. Room center cells,
// where hallways start and end, are drawn as GlyphCenter.
func Glyphs(d *generator.Dungeon) [][]rune {
	rows := make([][]rune, d.Grid.Height())
	for y := range rows {
		rows[y] = make([]rune, d.Grid.Width())
	}
	d.Grid.ForEachCell(func(pos world.Vector2Int, c world.CellType) {
		rows[pos.Y][pos.X] = Glyph(c)
	})
	for _, r := range d.Rooms {
		c := r.CenterCell()
		rows[c.Y][c.X] = GlyphCenter
	}
	return rows
}
