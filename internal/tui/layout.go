package tui

// MinTerminalWidth is the minimum supported terminal width.
const MinTerminalWidth = 60

// MinTerminalHeight is the minimum supported terminal height.
const MinTerminalHeight = 16

// Row heights (number of lines)
const (
	// HeaderHeight is the brand line at the top.
	HeaderHeight = 1

	// HelpBarHeight is the key hint line at the bottom.
	HelpBarHeight = 1

	// RuleHeight is the total height of the rules around the body:
	// one under the header, one above the help bar.
	RuleHeight = 2

	// InputHeight is the rule plus prompt line at the bottom of the workspace.
	InputHeight = 2
)

// Frame holds the vertical split of the screen. The horizontal split comes
// from the layout controller.
type Frame struct {
	Width  int
	Height int

	HeaderHeight  int
	BodyHeight    int
	HelpBarHeight int

	// TooSmall indicates the terminal is below minimum size
	TooSmall bool

	// TooSmallMessage is shown when terminal is too small
	TooSmallMessage string
}

// CalculateFrame computes the frame for the given terminal dimensions.
func CalculateFrame(width, height int) Frame {
	frame := Frame{
		Width:         width,
		Height:        height,
		HeaderHeight:  HeaderHeight,
		HelpBarHeight: HelpBarHeight,
	}

	if width < MinTerminalWidth {
		frame.TooSmall = true
		frame.TooSmallMessage = "Terminal too narrow. Minimum width: 60 columns."
		return frame
	}

	if height < MinTerminalHeight {
		frame.TooSmall = true
		frame.TooSmallMessage = "Terminal too short. Minimum height: 16 rows."
		return frame
	}

	frame.BodyHeight = height - frame.HeaderHeight - frame.HelpBarHeight - RuleHeight
	return frame
}

// BodyTop returns the screen row of the first body line.
func (f Frame) BodyTop() int {
	return f.HeaderHeight + 1
}

// TranscriptHeight returns the lines left for the transcript once the input
// area is taken from the body.
func (f Frame) TranscriptHeight() int {
	h := f.BodyHeight - InputHeight
	if h < 0 {
		return 0
	}
	return h
}
