package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/flashingpumpkin/stratos/internal/config"
	"github.com/flashingpumpkin/stratos/internal/content"
	"github.com/flashingpumpkin/stratos/internal/layout"
	"github.com/flashingpumpkin/stratos/internal/logging"
	"github.com/flashingpumpkin/stratos/internal/session"
)

// focusArea is the region receiving keyboard input.
type focusArea int

const (
	focusNav focusArea = iota
	focusWorkspace
	focusViewer
)

// Model is the main bubbletea model for the stratos shell. It composes the
// session store, the panel layout, the workspace, the source viewer and the
// reasoning panel.
type Model struct {
	cfg config.Config

	// Owned state
	store  *session.Store
	panels *layout.Controller

	// Frame
	frame Frame
	ready bool

	// Presentation
	styles   Styles
	keys     keyMap
	help     help.Model
	showHelp bool
	focus    focusArea

	// Navigation panel
	nav       navState
	search    textinput.Model
	searching bool

	// Rename prompt
	rename   textinput.Model
	renaming bool
	renameID string

	// Workspace
	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model
	pinBottom  bool

	// Viewer
	viewer     viewport.Model
	fullscreen bool
	document   content.Document

	// Reasoning
	reasoning *reasoningPanel
	panelSeq  uint64
	report    content.Report
	// reports holds, per session, the message counts after which a report
	// is shown.
	reports map[string][]int

	// Collaborators
	schedule Scheduler
	copy     func(string) error
	now      func() time.Time
	logger   *slog.Logger
	theme    Theme

	status   string
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithScheduler sets how reasoning ticks are scheduled (tea.Tick by default).
func WithScheduler(s Scheduler) Option {
	return func(m *Model) {
		if s != nil {
			m.schedule = s
		}
	}
}

// WithStore uses an existing session store instead of creating one.
func WithStore(s *session.Store) Option {
	return func(m *Model) {
		m.store = s
	}
}

// WithClipboard sets the function used to copy the report.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		if fn != nil {
			m.copy = fn
		}
	}
}

// WithLogger sets the logger for UI events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets the time source for message and activity timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithTheme forces a resolved theme, skipping terminal detection.
func WithTheme(theme Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// NewModel creates a new shell model from cfg. A nil cfg uses the defaults.
func NewModel(cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	m := Model{
		cfg:      *cfg,
		panels:   layout.NewController(),
		keys:     defaultKeyMap,
		help:     help.New(),
		focus:    focusWorkspace,
		nav:      navState{chatsOpen: true, privateOpen: true},
		document: content.SourceDocument(),
		report:   content.ResearchReport(),
		reports:  make(map[string][]int),
		schedule: TeaScheduler,
		copy:     clipboard.WriteAll,
		now:      time.Now,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.store == nil {
		m.store = session.NewStore(session.WithClock(m.now))
		if cfg.SeedSessions {
			m.store.Seed(content.SeedSessions(m.now()))
		}
	}
	if m.theme == "" {
		m.theme = ResolveTheme(Theme(cfg.Theme))
	}
	m.styles = GetStyles(m.theme)

	m.input = textinput.New()
	m.input.Prompt = "› "
	m.input.Placeholder = content.InputPrompt
	m.input.Focus()

	m.search = textinput.New()
	m.search.Prompt = ""
	m.search.Placeholder = "Search chats..."

	m.rename = textinput.New()
	m.rename.Prompt = ""
	m.rename.CharLimit = 80

	m.transcript = viewport.New(0, 0)
	m.viewer = viewport.New(0, 0)
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))

	m.nav.cursor = m.rowIndexOfSession(m.store.SelectedID())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame = CalculateFrame(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClipboardMsg:
		if msg.Err != nil {
			m.status = "Copy failed: " + msg.Err.Error()
			m.logger.Warn("copy report failed", slog.String("error", msg.Err.Error()))
		} else {
			m.status = "Report copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey routes a key press. Modal prompts see keys first, then the
// global chords, then the text input when it is receiving typing, and
// finally the single-letter commands and the focused region.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""

	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.renaming {
		return m.handleRenameKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.ToggleNav):
		m.panels.ToggleNav()
		m.logger.Debug("navigation toggled", slog.Bool("collapsed", m.panels.State().NavCollapsed))
		return m, nil
	case key.Matches(msg, m.keys.ToggleViewer):
		m.toggleViewer()
		return m, nil
	case key.Matches(msg, m.keys.NewChat):
		m.newChat()
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
		return m, nil
	case key.Matches(msg, m.keys.Rename):
		m.startRename()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.FocusBack):
		m.cycleFocus(-1)
		return m, nil
	}

	if m.typing() {
		switch {
		case key.Matches(msg, m.keys.Enter):
			return m.send()
		case key.Matches(msg, m.keys.Back):
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.startSearch()
		return m, nil
	case key.Matches(msg, m.keys.Thinking):
		if m.reasoning != nil {
			m.reasoning.expanded = !m.reasoning.expanded
		}
		return m, nil
	case key.Matches(msg, m.keys.Log):
		if m.reasoning != nil {
			m.reasoning.logOpen = !m.reasoning.logOpen
		}
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		if m.panels.State().ViewerOpen {
			m.fullscreen = !m.fullscreen
			if m.fullscreen && m.focus == focusWorkspace {
				m.setFocus(focusViewer)
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyReport()
	case key.Matches(msg, m.keys.Back) && m.showHelp:
		m.showHelp = false
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusNav:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.nav.cursor--
			m.clampCursor()
		case key.Matches(msg, m.keys.Down):
			m.nav.cursor++
			m.clampCursor()
		case key.Matches(msg, m.keys.Enter):
			rows := m.navRows()
			if m.nav.cursor >= 0 && m.nav.cursor < len(rows) {
				m.activate(rows[m.nav.cursor])
			}
		}
	case focusWorkspace:
		if key.Matches(msg, m.keys.Enter) {
			m.setFocus(focusWorkspace)
			return m, nil
		}
		m.transcript, cmd = m.transcript.Update(msg)
	case focusViewer:
		m.viewer, cmd = m.viewer.Update(msg)
	}
	return m, cmd
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		title := strings.TrimSpace(m.rename.Value())
		m.store.Rename(m.renameID, title)
		if title != "" {
			m.logger.Info("session renamed", slog.String("session.id", m.renameID), slog.String("title", title))
		}
		m.endRename()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.endRename()
		return m, nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.search.SetValue("")
		m.endSearch()
		return m, nil
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Focus):
		m.endSearch()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.nav.cursor--
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.nav.cursor++
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if first := m.firstSessionRow(); first >= 0 {
		m.nav.cursor = first
	}
	m.clampCursor()
	return m, cmd
}

// handleTick advances the mounted reasoning panel and delivers the scripted
// reply once the plan completes.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	p := m.reasoning
	if p == nil || msg.Panel != p.id {
		return m, nil
	}
	cmd := p.advance(msg, m.schedule)
	m.deliverIfDone()
	return m, cmd
}

// deliverIfDone appends the reply and report once the plan has completed.
func (m *Model) deliverIfDone() {
	p := m.reasoning
	if p == nil || p.delivered || !p.ticker.State().Done() {
		return
	}
	p.delivered = true

	m.store.AppendMessage(p.sessionID, session.Message{
		Role:    session.RoleAssistant,
		Content: content.AssistantReply,
		At:      m.now(),
	})
	if s, ok := m.store.Get(p.sessionID); ok {
		m.reports[p.sessionID] = append(m.reports[p.sessionID], len(s.Messages))
	}
	m.pinBottom = true
	m.logger.Info("report delivered", slog.String("session.id", p.sessionID))

	if m.focus == focusWorkspace {
		m.input.Focus()
	}
}

// send appends the typed message to the selected session, creating one when
// nothing is selected, and mounts a fresh reasoning panel.
func (m Model) send() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.loading() {
		return m, nil
	}

	sel, ok := m.store.Selected()
	if !ok {
		sel = m.store.Create()
		m.logger.Info("session created", slog.String("session.id", sel.ID))
	}

	m.store.AppendMessage(sel.ID, session.Message{Role: session.RoleUser, Content: text, At: m.now()})
	m.input.Reset()
	m.unmountReasoning()

	after := 0
	if s, ok := m.store.Get(sel.ID); ok {
		after = len(s.Messages)
	}
	m.panelSeq++
	p := newReasoningPanel(m.panelSeq, sel.ID, after, m.cfg.AutoStop, m.logger)
	m.reasoning = p
	m.pinBottom = true
	m.nav.cursor = m.rowIndexOfSession(sel.ID)

	cmd := p.start(m.cfg.Plan, m.cfg.Cadence, m.schedule)
	m.deliverIfDone()
	if !m.loading() {
		return m, cmd
	}
	m.input.Blur()
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// loading reports whether the agent is working on the selected session.
func (m Model) loading() bool {
	return m.reasoning != nil && m.reasoning.busy()
}

// typing reports whether keys go to the message input.
func (m Model) typing() bool {
	return m.focus == focusWorkspace && m.input.Focused()
}

func (m *Model) unmountReasoning() {
	if m.reasoning == nil {
		return
	}
	m.reasoning.unmount()
	m.reasoning = nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.unmountReasoning()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) newChat() {
	m.unmountReasoning()
	s := m.store.Create()
	m.search.SetValue("")
	m.nav.cursor = m.rowIndexOfSession(s.ID)
	m.setFocus(focusWorkspace)
	m.pinBottom = true
	m.logger.Info("session created", slog.String("session.id", s.ID))
}

func (m *Model) deleteSelected() {
	id := m.store.SelectedID()
	if id == "" {
		m.status = "No chat selected"
		return
	}
	m.deleteSession(id)
}

func (m *Model) deleteSession(id string) {
	if m.reasoning != nil && m.reasoning.sessionID == id {
		m.unmountReasoning()
	}
	if m.store.Delete(id) {
		delete(m.reports, id)
		if m.nav.hover == id {
			m.nav.hover = ""
		}
		m.logger.Info("session deleted", slog.String("session.id", id))
	}
	m.clampCursor()
	m.pinBottom = true
	if m.focus == focusWorkspace {
		m.setFocus(focusWorkspace)
	}
}

func (m *Model) selectSession(id string) {
	if id == m.store.SelectedID() {
		return
	}
	m.unmountReasoning()
	m.store.Select(id)
	m.pinBottom = true
	m.logger.Debug("session selected", slog.String("session.id", id))
}

func (m *Model) startRename() {
	sel, ok := m.store.Selected()
	if !ok {
		m.status = "No chat selected"
		return
	}
	m.renaming = true
	m.renameID = sel.ID
	m.rename.SetValue(sel.Title)
	m.rename.CursorEnd()
	m.rename.Focus()
	m.input.Blur()
}

func (m *Model) endRename() {
	m.renaming = false
	m.renameID = ""
	m.rename.Blur()
	m.setFocus(m.focus)
}

func (m *Model) startSearch() {
	if m.panels.State().NavCollapsed {
		m.panels.ToggleNav()
	}
	m.searching = true
	m.setFocus(focusNav)
	m.search.Focus()
}

func (m *Model) endSearch() {
	m.searching = false
	m.search.Blur()
	m.clampCursor()
}

func (m *Model) toggleViewer() {
	m.panels.ToggleViewer()
	open := m.panels.State().ViewerOpen
	if !open {
		m.fullscreen = false
		if m.focus == focusViewer {
			m.setFocus(focusWorkspace)
		}
	}
	m.logger.Debug("viewer toggled", slog.Bool("open", open))
}

// setFocus moves keyboard focus. The message input only takes focus while
// the agent is idle.
func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusWorkspace && !m.loading() && !m.renaming {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// focusOrder lists the regions tab cycles through, in order.
func (m Model) focusOrder() []focusArea {
	order := []focusArea{focusNav}
	if !m.fullscreen {
		order = append(order, focusWorkspace)
	}
	if m.panels.State().ViewerOpen {
		order = append(order, focusViewer)
	}
	return order
}

func (m *Model) cycleFocus(step int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(order)) % len(order)
	m.setFocus(order[idx])
}

func (m Model) copyReport() (Model, tea.Cmd) {
	sel, ok := m.store.Selected()
	if !ok || len(m.reports[sel.ID]) == 0 {
		m.status = "No report to copy"
		return m, nil
	}
	text := reportPlainText(m.report)
	write := m.copy
	return m, func() tea.Msg {
		return ClipboardMsg{Err: write(text)}
	}
}

// regionWidths returns the column split for the current frame, giving the
// workspace's share to the viewer in fullscreen.
func (m Model) regionWidths() layout.Widths {
	w := m.panels.ComputeWidths(m.frame.Width, m.cfg.NavCollapsedWidth, m.cfg.NavExpandedWidth)
	if m.fullscreen && m.panels.State().ViewerOpen {
		w.Viewer += w.Workspace
		w.Workspace = 0
	}
	return w
}

// sync sizes the widgets for the current frame and refreshes the viewport
// contents.
func (m *Model) sync() {
	m.clampCursor()
	if !m.ready || m.frame.TooSmall {
		return
	}

	w := m.regionWidths()
	m.help.Width = m.frame.Width

	m.input.Width = max(w.Workspace-ansi.StringWidth(m.input.Prompt)-3, 1)
	m.search.Width = max(w.Nav-6, 1)
	m.rename.Width = max(m.frame.Width-12, 1)

	atBottom := m.transcript.AtBottom()
	m.transcript.Width = w.Workspace
	m.transcript.Height = m.frame.TranscriptHeight()
	m.transcript.SetContent(strings.Join(m.transcriptLines(w.Workspace), "\n"))
	if atBottom || m.pinBottom {
		m.transcript.GotoBottom()
	}
	m.pinBottom = false

	vw := max(w.Viewer-1, 0)
	m.viewer.Width = vw
	m.viewer.Height = max(m.frame.BodyHeight-viewerHeaderHeight, 0)
	m.viewer.SetContent(strings.Join(m.documentLines(vw), "\n"))
}

// Store returns the session store.
func (m Model) Store() *session.Store {
	return m.store
}

// Layout returns the panel layout state.
func (m Model) Layout() layout.State {
	return m.panels.State()
}
