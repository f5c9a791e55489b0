package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/tui"
)

func initGettext(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

// flagWasSet reports whether name was given on the command line
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func main() {
	width := flag.Int("width", generator.DefaultWidth, "grid width in cells")
	height := flag.Int("height", generator.DefaultHeight, "grid height in cells")
	rooms := flag.Int("rooms", generator.DefaultRoomCount, "room placement attempts (not a guaranteed room count)")
	maxRoomWidth := flag.Int("max-room-width", generator.DefaultRoomMaxSize, "maximum room width")
	maxRoomHeight := flag.Int("max-room-height", generator.DefaultRoomMaxSize, "maximum room height")
	seed := flag.Int64("seed", 0, "random seed (default: derived from the current time)")
	extra := flag.Float64("extra", generator.DefaultExtraEdgeChance, "chance of keeping each non-tree connection as a loop")
	placement := flag.String("placement", generator.DefaultGenerator.Placement().Name(), "room placement: "+strings.Join(generator.Names(), ", "))
	dump := flag.String("dump", "", "write a debug dump of the dungeon to this file")
	htmlDir := flag.String("html", "", "write an HTML snapshot of the map into this directory")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	localeDir := flag.String("locale-dir", "locales", "directory holding translations")
	lang := flag.String("lang", "en_GB", "language for labels")
	flag.Parse()

	initGettext(*localeDir, *lang)

	if !flagWasSet("seed") {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", *seed)

	base, ok := generator.Lookup(*placement)
	if !ok {
		log.Fatalf("unknown placement %q (available: %s)", *placement, strings.Join(generator.Names(), ", "))
	}

	cfg := generator.Config{
		Size:            world.Vec(*width, *height),
		RoomCount:       *rooms,
		RoomMaxSize:     world.Vec(*maxRoomWidth, *maxRoomHeight),
		Seed:            *seed,
		ExtraEdgeChance: *extra,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen := base.With(generator.WithLogger(log.Default()))
	d, err := gen.GenerateContext(ctx, cfg)
	if err != nil {
		log.Fatalf("%s: %v", gen.Name(), err)
	}

	if *noColor || !terminal.IsTerminal(os.Stdout) {
		color.Enable = false
	}
	renderer.SetRenderer(tui.New())
	renderer.Init()
	if err := renderer.RenderDungeon(os.Stdout, d); err != nil {
		log.Fatalf("render: %v", err)
	}

	if *dump != "" {
		path, err := devtools.DumpToFile(d, *dump)
		if err != nil {
			log.Fatalf("dump: %v", err)
		}
		log.Printf("map dump written to %s", path)
	}

	if *htmlDir != "" {
		path, err := devtools.SaveScreenshotHTML(d, *htmlDir)
		if err != nil {
			log.Fatalf("html snapshot: %v", err)
		}
		log.Printf("html snapshot written to %s", path)
	}
}
