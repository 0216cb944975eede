package tui

import "strings"

// viewerHeaderHeight is the title, file name and rule above the document.
const viewerHeaderHeight = 3

// documentLines renders the source document body for width columns.
func (m Model) documentLines(width int) []string {
	if width <= 2 {
		return nil
	}
	cw := width - 2
	var lines []string
	for _, sec := range m.document.Sections {
		lines = append(lines, "", " "+m.styles.Accent.Render(sec.Heading))
		for _, line := range wrap(sec.Body, cw) {
			lines = append(lines, " "+m.styles.Value.Render(line))
		}
	}
	if m.document.Hint != "" {
		lines = append(lines, "", " "+RenderRule(cw, m.styles.BorderDim))
		for _, line := range wrap(m.document.Hint, cw) {
			lines = append(lines, " "+m.styles.Muted.Render(line))
		}
	}
	return lines
}

// renderViewer renders the source viewer as exactly height lines of width
// columns, including its right border.
func (m Model) renderViewer(width, height int) []string {
	if width <= 0 {
		return block(nil, 0, height)
	}
	border := m.styles.BorderDim.Render(RuleVertical)
	if m.focus == focusViewer {
		border = m.styles.Border.Render(RuleVertical)
	}
	cw := width - 1

	controls := "f ⤢  ctrl+o ✕"
	if m.fullscreen {
		controls = "f ⤡  ctrl+o ✕"
	}
	lines := []string{
		spread(" "+m.styles.Header.Render(m.document.Title), m.styles.Muted.Render(controls)+" ", cw),
		" " + m.styles.Label.Render(m.document.FileName),
		RenderRule(cw, m.styles.BorderDim),
	}
	lines = append(lines, strings.Split(m.viewer.View(), "\n")...)
	return withBorder(block(lines, cw, height), border)
}
