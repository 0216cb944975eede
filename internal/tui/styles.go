// Package tui provides the stratos terminal shell built on bubbletea.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dark theme colour palette (for dark terminal backgrounds).
const (
	ColourAccent      = lipgloss.Color("75")  // #5FAFFF - Brand, headers, active borders
	ColourAccentDim   = lipgloss.Color("61")  // #5F5FAF - Separators, inactive borders
	ColourPrimary     = lipgloss.Color("141") // #AF87FF - Citations, cursor
	ColourText        = lipgloss.Color("252") // #D0D0D0 - Body text
	ColourMuted       = lipgloss.Color("245") // #8A8A8A - Labels, activity dates
	ColourFaded       = lipgloss.Color("240") // #585858 - Pending steps, hints
	ColourSelectionBg = lipgloss.Color("236") // #303030 - Selected session row
	ColourSuccess     = lipgloss.Color("78")  // #5FD787 - Completed steps
	ColourWarning     = lipgloss.Color("214") // #FFAF00 - Too small message
	ColourError       = lipgloss.Color("203") // #FF5F5F - Delete marker
)

// Light theme colour palette (for light terminal backgrounds).
const (
	ColourAccentDark      = lipgloss.Color("25")  // #005FAF
	ColourAccentDarkDim   = lipgloss.Color("103") // #8787AF
	ColourPrimaryDark     = lipgloss.Color("91")  // #8700AF
	ColourTextDark        = lipgloss.Color("235") // #262626
	ColourMutedDark       = lipgloss.Color("242") // #6C6C6C
	ColourFadedDark       = lipgloss.Color("248") // #A8A8A8
	ColourSelectionBgDark = lipgloss.Color("254") // #E4E4E4
	ColourSuccessDark     = lipgloss.Color("28")  // #008700
	ColourWarningDark     = lipgloss.Color("166") // #D75F00
	ColourErrorDark       = lipgloss.Color("160") // #D70000
)

// Frame characters.
const (
	RuleHorizontal = "─"
	RuleVertical   = "│"
)

// Progress bar characters
const (
	BarFilled = "█"
	BarEmpty  = "░"
	BarWidth  = 12
)

// Icons
const (
	IconBrand      = "◆"
	IconNew        = "+"
	IconThinking   = "⚡"
	IconDone       = "✓"
	IconInProgress = "→"
	IconPending    = "○"
	IconExpanded   = "▾"
	IconCollapsed  = "▸"
	IconLock       = "⚿"
	IconDelete     = "✕"
	IconReport     = "▣"
	IconSearch     = "⌕"
)

// Styles contains all lipgloss styles for the UI.
type Styles struct {
	// Frame
	Border    lipgloss.Style
	BorderDim lipgloss.Style

	// Text hierarchy
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style

	// Status colours
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Plan steps
	StepPending    lipgloss.Style
	StepInProgress lipgloss.Style
	StepComplete   lipgloss.Style

	// Navigation panel
	NavItem     lipgloss.Style
	NavSelected lipgloss.Style
	NavCursor   lipgloss.Style
	NavSection  lipgloss.Style

	// Workspace
	Hero      lipgloss.Style
	HeroSub   lipgloss.Style
	UserRole  lipgloss.Style
	AgentRole lipgloss.Style
	LogLine   lipgloss.Style
	Citation  lipgloss.Style

	// Special areas
	TooSmallMessage lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Brand
	Brand lipgloss.Style
}

// DarkStyles returns the theme optimised for dark terminal backgrounds.
func DarkStyles() Styles {
	return Styles{
		Border:    lipgloss.NewStyle().Foreground(ColourAccent),
		BorderDim: lipgloss.NewStyle().Foreground(ColourAccentDim),

		Header: lipgloss.NewStyle().Foreground(ColourAccent).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourMuted),
		Value:  lipgloss.NewStyle().Foreground(ColourText),
		Muted:  lipgloss.NewStyle().Foreground(ColourFaded),
		Accent: lipgloss.NewStyle().Foreground(ColourAccent),

		Success: lipgloss.NewStyle().Foreground(ColourSuccess),
		Warning: lipgloss.NewStyle().Foreground(ColourWarning),
		Error:   lipgloss.NewStyle().Foreground(ColourError),

		StepPending:    lipgloss.NewStyle().Foreground(ColourFaded),
		StepInProgress: lipgloss.NewStyle().Foreground(ColourText),
		StepComplete:   lipgloss.NewStyle().Foreground(ColourAccent),

		NavItem:     lipgloss.NewStyle().Foreground(ColourText),
		NavSelected: lipgloss.NewStyle().Foreground(ColourAccent).Background(ColourSelectionBg).Bold(true),
		NavCursor:   lipgloss.NewStyle().Foreground(ColourPrimary).Bold(true),
		NavSection:  lipgloss.NewStyle().Foreground(ColourMuted).Bold(true),

		Hero:      lipgloss.NewStyle().Foreground(ColourText).Bold(true),
		HeroSub:   lipgloss.NewStyle().Foreground(ColourMuted),
		UserRole:  lipgloss.NewStyle().Foreground(ColourPrimary).Bold(true),
		AgentRole: lipgloss.NewStyle().Foreground(ColourAccent).Bold(true),
		LogLine:   lipgloss.NewStyle().Foreground(ColourMuted),
		Citation:  lipgloss.NewStyle().Foreground(ColourPrimary),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourWarning).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourFaded),
		HelpKey: lipgloss.NewStyle().Foreground(ColourMuted),

		Brand: lipgloss.NewStyle().Foreground(ColourAccent).Bold(true),
	}
}

// LightStyles returns the theme optimised for light terminal backgrounds.
func LightStyles() Styles {
	return Styles{
		Border:    lipgloss.NewStyle().Foreground(ColourAccentDark),
		BorderDim: lipgloss.NewStyle().Foreground(ColourAccentDarkDim),

		Header: lipgloss.NewStyle().Foreground(ColourAccentDark).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColourMutedDark),
		Value:  lipgloss.NewStyle().Foreground(ColourTextDark),
		Muted:  lipgloss.NewStyle().Foreground(ColourFadedDark),
		Accent: lipgloss.NewStyle().Foreground(ColourAccentDark),

		Success: lipgloss.NewStyle().Foreground(ColourSuccessDark),
		Warning: lipgloss.NewStyle().Foreground(ColourWarningDark),
		Error:   lipgloss.NewStyle().Foreground(ColourErrorDark),

		StepPending:    lipgloss.NewStyle().Foreground(ColourFadedDark),
		StepInProgress: lipgloss.NewStyle().Foreground(ColourTextDark),
		StepComplete:   lipgloss.NewStyle().Foreground(ColourAccentDark),

		NavItem:     lipgloss.NewStyle().Foreground(ColourTextDark),
		NavSelected: lipgloss.NewStyle().Foreground(ColourAccentDark).Background(ColourSelectionBgDark).Bold(true),
		NavCursor:   lipgloss.NewStyle().Foreground(ColourPrimaryDark).Bold(true),
		NavSection:  lipgloss.NewStyle().Foreground(ColourMutedDark).Bold(true),

		Hero:      lipgloss.NewStyle().Foreground(ColourTextDark).Bold(true),
		HeroSub:   lipgloss.NewStyle().Foreground(ColourMutedDark),
		UserRole:  lipgloss.NewStyle().Foreground(ColourPrimaryDark).Bold(true),
		AgentRole: lipgloss.NewStyle().Foreground(ColourAccentDark).Bold(true),
		LogLine:   lipgloss.NewStyle().Foreground(ColourMutedDark),
		Citation:  lipgloss.NewStyle().Foreground(ColourPrimaryDark),

		TooSmallMessage: lipgloss.NewStyle().Foreground(ColourWarningDark).Bold(true),

		HelpBar: lipgloss.NewStyle().Foreground(ColourFadedDark),
		HelpKey: lipgloss.NewStyle().Foreground(ColourMutedDark),

		Brand: lipgloss.NewStyle().Foreground(ColourAccentDark).Bold(true),
	}
}

// GetStyles returns the Styles for the given theme.
// Falls back to dark theme for unknown theme values.
func GetStyles(theme Theme) Styles {
	switch theme {
	case ThemeLight:
		return LightStyles()
	default:
		return DarkStyles()
	}
}

// RenderProgressBar renders a bar like [████░░░░] for ratio in [0, 1].
func RenderProgressBar(ratio float64, width int, style lipgloss.Style) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if width < 0 {
		width = 0
	}

	filled := int(ratio * float64(width))
	bar := strings.Repeat(BarFilled, filled) + strings.Repeat(BarEmpty, width-filled)
	return "[" + style.Render(bar) + "]"
}

// RenderRule renders a horizontal single-line rule of the given width.
func RenderRule(width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	return style.Render(strings.Repeat(RuleHorizontal, width))
}
