package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.frame.TooSmall {
		return m.renderTooSmall()
	}
	return m.renderFull()
}

// renderTooSmall renders the "terminal too small" message.
func (m Model) renderTooSmall() string {
	return m.styles.TooSmallMessage.Render(m.frame.TooSmallMessage)
}

// renderFull lays the regions side by side between the header and the help
// bar. Every row is exactly the terminal width.
func (m Model) renderFull() string {
	w := m.regionWidths()
	h := m.frame.BodyHeight

	nav := m.renderNav(w.Nav, h)
	viewer := m.renderViewer(w.Viewer, h)
	workspace := m.renderWorkspace(w.Workspace, h)

	rows := make([]string, 0, m.frame.Height)
	rows = append(rows, m.renderHeader(), RenderRule(m.frame.Width, m.styles.BorderDim))
	for i := 0; i < h; i++ {
		rows = append(rows, nav[i]+viewer[i]+workspace[i])
	}
	rows = append(rows, RenderRule(m.frame.Width, m.styles.BorderDim), m.renderHelpBar())
	return strings.Join(rows, "\n")
}

// renderHeader renders the brand and the selected session title.
func (m Model) renderHeader() string {
	brand := " " + m.styles.Brand.Render(IconBrand+" STRATOS")
	title := m.styles.Label.Render("no chat selected")
	if sel, ok := m.store.Selected(); ok {
		title = m.styles.Value.Render(sel.DisplayName())
	}
	return spread(brand, title+" ", m.frame.Width)
}

// renderHelpBar renders the rename prompt, a status message or the key hints.
func (m Model) renderHelpBar() string {
	width := m.frame.Width
	if m.renaming {
		return fit(" "+m.styles.HelpKey.Render("Rename:")+" "+m.rename.View()+"  "+
			m.styles.HelpBar.Render("enter save  esc cancel"), width)
	}

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		status := " " + m.styles.Warning.Render(m.status) + "  "
		return fit(status+ansi.Truncate(hints, max(width-ansi.StringWidth(status), 0), ""), width)
	}
	return fit(" "+hints, width)
}
