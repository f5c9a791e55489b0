package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorRoom    color.Style
	colorHallway color.Style
	colorCenter  color.Style
	colorHeading color.Style
	colorSubtle  color.Style
	colorDenied  color.Style

	// maxColumns clips map rows when columnsSet; 0 means unlimited.
	// Otherwise the limit comes from the writer passed to RenderDungeon.
	maxColumns int
	columnsSet bool

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgGray}
	t.colorHallway = color.Style{color.FgYellow}
	t.colorCenter = color.Style{color.FgGreen, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// SetMaxColumns fixes the map width for every writer, overriding the width
// detected from a terminal destination. 0 disables clipping.
func (t *TUIRenderer) SetMaxColumns(n int) {
	t.maxColumns = max(n, 0)
	t.columnsSet = true
}

// columnsFor returns the clip width for w: the fixed width if one was set,
// the terminal width when w is a terminal, and 0 (unlimited) otherwise.
func (t *TUIRenderer) columnsFor(w io.Writer) int {
	if t.columnsSet {
		return t.maxColumns
	}
	if f, ok := w.(*os.File); ok {
		return terminal.MaxColumns(f)
	}
	return 0
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleHallway:
		return t.colorHallway.Sprint(text)
	case renderer.StyleCenter:
		return t.colorCenter.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "HEADING":
			val = t.colorHeading.Sprint(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "HALL":
			val = t.colorHallway.Sprint(operand)
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		default:
			val = t.colorDenied.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// glyphStyle maps a map glyph to its style
func glyphStyle(g rune) renderer.TextStyle {
	switch g {
	case renderer.GlyphRoom:
		return renderer.StyleRoom
	case renderer.GlyphHallway:
		return renderer.StyleHallway
	case renderer.GlyphCenter:
		return renderer.StyleCenter
	case renderer.GlyphUnknown:
		return renderer.StyleDenied
	default:
		return renderer.StyleNormal
	}
}

// RenderDungeon writes a heading, the map, a summary and a legend to w
func (t *TUIRenderer) RenderDungeon(w io.Writer, d *generator.Dungeon) error {
	if d == nil || d.Grid == nil {
		return fmt.Errorf("render: no dungeon")
	}

	var b strings.Builder
	size := d.Grid.Size()

	b.WriteString(t.StyleText(gotext.Get("Dungeon %dx%d, seed %d", size.X, size.Y, d.Config.Seed), renderer.StyleHeading))
	b.WriteString("\n\n")

	columns := t.columnsFor(w)
	if t.writeMap(&b, d, columns) {
		b.WriteString(t.StyleText(gotext.Get("(map clipped to %d of %d columns)", columns, size.X), renderer.StyleSubtle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	t.writeSummary(&b, d)
	t.writeLegend(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeMap draws the grid one row per line, styling runs of equal glyphs.
// Returns true when rows were clipped to columns.
func (t *TUIRenderer) writeMap(b *strings.Builder, d *generator.Dungeon, columns int) bool {
	clipped := false
	for _, row := range renderer.Glyphs(d) {
		if columns > 0 && len(row) > columns {
			row = row[:columns]
			clipped = true
		}

		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end] == row[start] {
				end++
			}
			b.WriteString(t.StyleText(string(row[start:end]), glyphStyle(row[start])))
			start = end
		}
		b.WriteString("\n")
	}
	return clipped
}

func (t *TUIRenderer) writeSummary(b *strings.Builder, d *generator.Dungeon) {
	s := d.Stats
	fmt.Fprintln(b, gotext.Get("Rooms: %d from %d attempts", len(d.Rooms), s.Attempts))
	fmt.Fprintln(b, gotext.Get("Hallways: %d (%d tree, %d extra), %d cells", s.HallwaysCarved, s.TreeEdges, s.ExtraEdges, s.HallwayCells))
	if s.HallwaysSkipped > 0 {
		fmt.Fprintln(b, t.StyleText(gotext.Get("Unreachable connections: %d", s.HallwaysSkipped), renderer.StyleDenied))
	}
	b.WriteString("\n")
}

func (t *TUIRenderer) writeLegend(b *strings.Builder) {
	entries := []struct {
		glyph rune
		label string
	}{
		{renderer.GlyphRoom, gotext.Get("room")},
		{renderer.GlyphCenter, gotext.Get("room center")},
		{renderer.GlyphHallway, gotext.Get("hallway")},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, t.StyleText(string(e.glyph), glyphStyle(e.glyph))+" "+e.label)
	}
	fmt.Fprintln(b, t.StyleText(gotext.Get("Legend:"), renderer.StyleSubtle), strings.Join(parts, "  "))
}
