package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flashingpumpkin/stratos/internal/content"
	"github.com/flashingpumpkin/stratos/internal/session"
)

// navState is the transient state of the navigation panel. None of it is
// part of the session store.
type navState struct {
	cursor int
	// hover is the id of the session under the mouse pointer.
	hover       string
	chatsOpen   bool
	privateOpen bool
}

type navRowKind int

const (
	rowNewChat navRowKind = iota
	rowEntry
	rowChatsHeader
	rowSession
	rowPrivateHeader
	rowPrivate
)

// navRow is one selectable entry of the navigation panel.
type navRow struct {
	kind      navRowKind
	index     int
	sessionID string
}

// Navigation entry positions in content.NavEntries.
const (
	entryHome = iota
	entryLibrary
	entrySearch
)

// navHeaderLines is the number of fixed lines above the rows of the expanded
// panel: brand, blank, search box, blank.
const navHeaderLines = 4

// visibleSessions returns the sessions matching the search box, or all of them.
func (m Model) visibleSessions() []session.Session {
	if q := m.search.Value(); q != "" {
		return m.store.Search(q)
	}
	return m.store.List()
}

// navRows lists the selectable rows in display order. The collapsed panel
// only offers the icon shortcuts.
func (m Model) navRows() []navRow {
	rows := []navRow{{kind: rowNewChat}}
	for i := range content.NavEntries() {
		rows = append(rows, navRow{kind: rowEntry, index: i})
	}
	if m.panels.State().NavCollapsed {
		return rows
	}

	rows = append(rows, navRow{kind: rowChatsHeader})
	if m.nav.chatsOpen {
		for _, s := range m.visibleSessions() {
			rows = append(rows, navRow{kind: rowSession, sessionID: s.ID})
		}
	}
	rows = append(rows, navRow{kind: rowPrivateHeader})
	if m.nav.privateOpen {
		for i := range content.PrivateProjects() {
			rows = append(rows, navRow{kind: rowPrivate, index: i})
		}
	}
	return rows
}

func (m Model) rowIndexOfSession(id string) int {
	if id == "" {
		return 0
	}
	for i, row := range m.navRows() {
		if row.kind == rowSession && row.sessionID == id {
			return i
		}
	}
	return 0
}

func (m Model) firstSessionRow() int {
	for i, row := range m.navRows() {
		if row.kind == rowSession {
			return i
		}
	}
	return -1
}

func (m *Model) clampCursor() {
	n := len(m.navRows())
	if m.nav.cursor >= n {
		m.nav.cursor = n - 1
	}
	if m.nav.cursor < 0 {
		m.nav.cursor = 0
	}
}

// activate performs the action of a navigation row.
func (m *Model) activate(row navRow) {
	switch row.kind {
	case rowNewChat:
		m.newChat()
	case rowEntry:
		switch row.index {
		case entryHome:
			m.setFocus(focusWorkspace)
		case entryLibrary:
			if !m.panels.State().ViewerOpen {
				m.toggleViewer()
			}
			m.setFocus(focusViewer)
		case entrySearch:
			m.startSearch()
		}
	case rowChatsHeader:
		m.nav.chatsOpen = !m.nav.chatsOpen
	case rowSession:
		m.selectSession(row.sessionID)
	case rowPrivateHeader:
		m.nav.privateOpen = !m.nav.privateOpen
	case rowPrivate:
		m.status = content.PrivateProjects()[row.index] + " is empty"
	}
}

// navView is the rendered navigation panel body. rowAt maps each body line
// to the row drawn on it, or -1.
type navView struct {
	lines []string
	rowAt []int
}

// layoutNav renders the panel content (without its border) for width
// columns and height lines.
func (m Model) layoutNav(width, height int) navView {
	if m.panels.State().NavCollapsed {
		return m.layoutNavCollapsed(width, height)
	}

	s := m.styles
	view := navView{}
	add := func(line string, row int) {
		view.lines = append(view.lines, line)
		view.rowAt = append(view.rowAt, row)
	}

	add(" "+s.Brand.Render(IconBrand+" Stratos"), -1)
	add("", -1)
	if m.searching || m.search.Value() != "" {
		add(" "+s.Muted.Render(IconSearch)+" "+m.search.View(), -1)
	} else {
		add(" "+s.Muted.Render(IconSearch+" Search chats..."), -1)
	}
	add("", -1)

	var body []string
	var bodyRows []int
	put := func(line string, row int) {
		body = append(body, line)
		bodyRows = append(bodyRows, row)
	}

	rows := m.navRows()
	entries := content.NavEntries()
	cursorFirst, cursorLast := 0, 0
	for i, row := range rows {
		marker := "  "
		if i == m.nav.cursor && m.focus == focusNav {
			marker = s.NavCursor.Render("›") + " "
		}
		start := len(body)

		switch row.kind {
		case rowNewChat:
			put(marker+s.Accent.Render(IconNew+" New Chat"), i)
		case rowEntry:
			e := entries[row.index]
			put(marker+s.NavItem.Render(e.Icon+" "+e.Label), i)
			if row.index == len(entries)-1 {
				put("", -1)
			}
		case rowChatsHeader:
			chev := IconCollapsed
			if m.nav.chatsOpen {
				chev = IconExpanded
			}
			count := strconv.Itoa(len(m.visibleSessions()))
			put(marker+s.NavSection.Render(chev+" Chats")+" "+s.Muted.Render(count), i)
			if m.nav.chatsOpen && m.search.Value() != "" && len(m.visibleSessions()) == 0 {
				put("    "+s.Muted.Render("No matching chats"), -1)
			}
		case rowSession:
			sess, _ := m.store.Get(row.sessionID)
			titleWidth := width - 4
			if m.nav.hover == sess.ID {
				titleWidth -= 2
			}
			title := fit(ellipsis(sess.DisplayName(), titleWidth), titleWidth)
			if sess.ID == m.store.SelectedID() {
				title = s.NavSelected.Render(title)
			} else {
				title = s.NavItem.Render(title)
			}
			if m.nav.hover == sess.ID {
				title += " " + s.Error.Render(IconDelete)
			}
			put(marker+"  "+title, i)
			put("    "+s.Muted.Render(sess.ActivityLabel(m.now())), i)
		case rowPrivateHeader:
			chev := IconCollapsed
			if m.nav.privateOpen {
				chev = IconExpanded
			}
			put("", -1)
			start = len(body)
			put(marker+s.NavSection.Render(chev+" "+IconLock+" Private"), i)
		case rowPrivate:
			put(marker+"  "+s.NavItem.Render(content.PrivateProjects()[row.index]), i)
		}

		if i == m.nav.cursor {
			cursorFirst, cursorLast = start, len(body)-1
		}
	}

	avail := height - navHeaderLines - 1
	if avail < 0 {
		avail = 0
	}
	offset := 0
	if cursorLast >= avail {
		offset = cursorLast - avail + 1
	}
	if offset > cursorFirst {
		offset = cursorFirst
	}
	for i := offset; i < len(body) && i < offset+avail; i++ {
		add(body[i], bodyRows[i])
	}
	for len(view.lines) < height-1 {
		add("", -1)
	}
	if height > navHeaderLines {
		add(" "+s.Muted.Render("◍ Sign in"), -1)
	}
	return view
}

func (m Model) layoutNavCollapsed(width, height int) navView {
	s := m.styles
	view := navView{}
	add := func(line string, row int) {
		view.lines = append(view.lines, line)
		view.rowAt = append(view.rowAt, row)
	}

	add(centre(s.Brand.Render(IconBrand), width), -1)
	add("", -1)
	entries := content.NavEntries()
	for i, row := range m.navRows() {
		icon := IconNew
		if row.kind == rowEntry {
			icon = entries[row.index].Icon
		}
		marker := " "
		if i == m.nav.cursor && m.focus == focusNav {
			marker = s.NavCursor.Render("›")
		}
		add(marker+" "+s.NavItem.Render(icon), i)
	}
	if len(view.lines) > height {
		view.lines = view.lines[:max(height, 0)]
		view.rowAt = view.rowAt[:max(height, 0)]
	}
	return view
}

// navRowAt returns the row drawn on the given body line, or -1.
func (m Model) navRowAt(line, navWidth int) int {
	view := m.layoutNav(max(navWidth-1, 0), m.frame.BodyHeight)
	if line < 0 || line >= len(view.rowAt) {
		return -1
	}
	return view.rowAt[line]
}

// renderNav renders the navigation panel as exactly height lines of width
// columns, including its right border.
func (m Model) renderNav(width, height int) []string {
	if width <= 0 {
		return block(nil, 0, height)
	}
	border := m.styles.BorderDim.Render(RuleVertical)
	if m.focus == focusNav {
		border = m.styles.Border.Render(RuleVertical)
	}
	view := m.layoutNav(width-1, height)
	return withBorder(block(view.lines, width-1, height), border)
}

// handleMouse routes mouse events to the region under the pointer. Motion
// over the navigation panel updates the hover highlight.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.ready || m.frame.TooSmall {
		return m, nil
	}
	w := m.regionWidths()

	var cmd tea.Cmd
	switch {
	case msg.X < w.Nav:
		line := msg.Y - m.frame.BodyTop()
		row := m.navRowAt(line, w.Nav)
		rows := m.navRows()

		m.nav.hover = ""
		if row >= 0 && row < len(rows) && rows[row].kind == rowSession {
			m.nav.hover = rows[row].sessionID
		}

		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.nav.cursor--
		case msg.Button == tea.MouseButtonWheelDown:
			m.nav.cursor++
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && m.nav.hover != "" && msg.X >= w.Nav-3:
			m.deleteSession(m.nav.hover)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && row >= 0:
			m.nav.cursor = row
			m.setFocus(focusNav)
			m.activate(rows[row])
		}
		m.clampCursor()

	case msg.X < w.Nav+w.Viewer:
		m.nav.hover = ""
		m.viewer, cmd = m.viewer.Update(msg)

	default:
		m.nav.hover = ""
		m.transcript, cmd = m.transcript.Update(msg)
	}
	return m, cmd
}
