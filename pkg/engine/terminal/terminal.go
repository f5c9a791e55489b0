// Package terminal queries the controlling terminal so text output can be fitted to it.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// GetSize returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal behind f, or DefaultWidth.
func GetWidth(f *os.File) int {
	width, _ := GetSize(f)
	return width
}

// MaxColumns returns how many cells fit on one line of f, or 0 for "unlimited"
// when f is not a terminal (files and pipes get the full map).
func MaxColumns(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	return GetWidth(f)
}
