package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Theme represents the colour theme for the TUI.
type Theme string

const (
	// ThemeAuto picks dark or light from the terminal background colour.
	ThemeAuto Theme = "auto"
	// ThemeDark uses the palette designed for dark backgrounds.
	ThemeDark Theme = "dark"
	// ThemeLight uses darker colours designed for light backgrounds.
	ThemeLight Theme = "light"
)

// DetectTheme queries the terminal behind w for its background colour.
// Falls back to ThemeDark if detection fails.
func DetectTheme(w io.Writer) Theme {
	output := termenv.NewOutput(w)
	if output.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveTheme converts ThemeAuto to the theme detected on stdout.
// Explicit themes, and anything unknown, are returned unchanged.
func ResolveTheme(configured Theme) Theme {
	if configured == ThemeAuto {
		return DetectTheme(os.Stdout)
	}
	return configured
}

// ValidTheme checks if the given string is a valid theme name.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeAuto, ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}
