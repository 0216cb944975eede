package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fit pads or truncates s to exactly width visible columns.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}

// ellipsis truncates s to width visible columns, marking the cut with "…".
func ellipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// centre places s in the middle of width columns.
func centre(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return fit(s, width)
	}
	left := (width - w) / 2
	return fit(strings.Repeat(" ", left)+s, width)
}

// spread puts left and right at opposite ends of width columns. The left
// side is truncated first when both do not fit.
func spread(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	if rw >= width {
		return fit(right, width)
	}
	room := width - rw - 1
	left = ellipsis(left, room)
	gap := width - ansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}

// wrap word-wraps s to width columns, breaking long words when needed.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// block fits each line to width and pads or cuts the result to height lines.
func block(lines []string, width, height int) []string {
	if height < 0 {
		height = 0
	}
	out := make([]string, height)
	blank := strings.Repeat(" ", max(width, 0))
	for i := range out {
		if i < len(lines) {
			out[i] = fit(lines[i], width)
		} else {
			out[i] = blank
		}
	}
	return out
}

// withBorder appends a vertical rule to every line, so a region of width w
// has w-1 content columns.
func withBorder(lines []string, border string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + border
	}
	return out
}
