package devtools

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"time"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// cellClass returns the CSS class for a map glyph
func cellClass(g rune) string {
	switch g {
	case renderer.GlyphRoom:
		return "room"
	case renderer.GlyphCenter:
		return "center"
	case renderer.GlyphHallway:
		return "hallway"
	default:
		return "void"
	}
}

// WriteHTML renders the full dungeon map as a standalone HTML page
func WriteHTML(w io.Writer, d *generator.Dungeon) error {
	if d == nil || d.Grid == nil {
		return fmt.Errorf("no grid")
	}
	size := d.Grid.Size()
	b := bufio.NewWriter(w)

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .stats {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .room { color: #888; }
        .center { color: #00ff00; font-weight: bold; }
        .hallway { color: #ffff00; }
        .void { color: #1a1a2e; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(b, `    <div class="header">Dungeon %dx%d, seed %d</div>`+"\n", size.X, size.Y, d.Config.Seed)
	fmt.Fprintf(b, `    <div class="stats">%s</div>`+"\n", html.EscapeString(fmt.Sprintf(
		"%d rooms, %d hallways (%d tree, %d extra)",
		len(d.Rooms), d.Stats.HallwaysCarved, d.Stats.TreeEdges, d.Stats.ExtraEdges)))

	b.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range renderer.Glyphs(d) {
		b.WriteString(`        <div class="map-row">`)
		for _, g := range row {
			fmt.Fprintf(b, `<span class="%s">%s</span>`, cellClass(g), html.EscapeString(string(g)))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("    </div>\n")
	b.WriteString("</body>\n</html>\n")

	return b.Flush()
}

// SaveScreenshotHTML writes WriteHTML output to a timestamped file in dir and
// returns its absolute path.
func SaveScreenshotHTML(d *generator.Dungeon, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%d-%s.html", d.Config.Seed, timestamp))

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHTML(f, d); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
