package renderer

import (
	"errors"
	"io"

	"dungeongen/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleHallway
	StyleCenter
	StyleHeading
	StyleSubtle
	StyleDenied
)

// ErrNoRenderer is returned by RenderDungeon when no renderer has been set
var ErrNoRenderer = errors.New("no renderer set")

// Renderer defines the interface for dungeon output backends
type Renderer interface {
	// Init initializes the renderer (colors, output width, etc.)
	Init()

	// RenderDungeon writes the map and a short summary of d to w
	RenderDungeon(w io.Writer, d *generator.Dungeon) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderDungeon renders d with the current renderer
func RenderDungeon(w io.Writer, d *generator.Dungeon) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.RenderDungeon(w, d)
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}
