package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/flashingpumpkin/stratos/internal/content"
	"github.com/flashingpumpkin/stratos/internal/session"
)

// transcriptMargin is the blank column kept on each side of the transcript.
const transcriptMargin = 1

// transcriptLines renders the selected session for a workspace of width
// columns. The reasoning panel and reports are placed after the message
// they answer.
func (m Model) transcriptLines(width int) []string {
	if width <= 0 {
		return nil
	}
	sel, ok := m.store.Selected()
	panel := m.reasoning
	if ok && panel != nil && panel.sessionID != sel.ID {
		panel = nil
	}
	if !ok || (!sel.HasMessages() && panel == nil) {
		return m.heroLines(width, m.frame.TranscriptHeight())
	}

	cw := width - 2*transcriptMargin
	var lines []string
	attach := func(after int) {
		if panel != nil && panel.after == after {
			lines = append(lines, panel.render(cw, m.styles)...)
			lines = append(lines, "")
		}
		for _, at := range m.reports[sel.ID] {
			if at == after {
				lines = append(lines, m.reportLines(cw)...)
				lines = append(lines, "")
			}
		}
	}

	lines = append(lines, "")
	attach(0)
	for i, msg := range sel.Messages {
		lines = append(lines, m.messageLines(msg, cw)...)
		lines = append(lines, "")
		attach(i + 1)
	}

	margin := strings.Repeat(" ", transcriptMargin)
	for i, line := range lines {
		lines[i] = margin + line
	}
	return lines
}

func (m Model) messageLines(msg session.Message, width int) []string {
	role := m.styles.AgentRole.Render(IconBrand + " Stratos")
	if msg.Role == session.RoleUser {
		role = m.styles.UserRole.Render("You")
	}
	stamp := ""
	if !msg.At.IsZero() {
		stamp = m.styles.Muted.Render(msg.At.Format("15:04"))
	}

	lines := []string{spread(role, stamp, width)}
	for _, line := range wrap(msg.Content, width) {
		lines = append(lines, m.styles.Value.Render(line))
	}
	return lines
}

// heroLines renders the empty-workspace greeting, vertically centred.
func (m Model) heroLines(width, height int) []string {
	var body []string
	body = append(body, centre(m.styles.Brand.Render(IconBrand), width), "")
	for _, line := range wrap(content.HeroTitle, width-4) {
		body = append(body, centre(m.styles.Hero.Render(line), width))
	}
	body = append(body, "")
	for _, line := range wrap(content.HeroSubtitle, width-4) {
		body = append(body, centre(m.styles.HeroSub.Render(line), width))
	}

	top := (height - len(body)) / 2
	if top < 0 {
		top = 0
	}
	return append(make([]string, top), body...)
}

// reportLines renders the research report block.
func (m Model) reportLines(width int) []string {
	s := m.styles
	r := m.report
	bar := s.Accent.Render(RuleVertical) + " "
	inner := width - 2

	lines := []string{
		s.Header.Render(IconReport + " " + r.Title),
		"",
		s.Accent.Render(r.Subtitle),
	}
	for _, line := range wrap(r.Intro, width) {
		lines = append(lines, s.Value.Render(line))
	}
	lines = append(lines, "", s.Accent.Render("Key Findings"))
	for _, f := range r.Findings {
		text := f.Title + ": " + f.Text
		if f.Citation > 0 {
			text += " [↗ " + strconv.Itoa(f.Citation) + "]"
		}
		for i, line := range wrap(text, inner) {
			if i == 0 {
				title := f.Title + ":"
				if strings.HasPrefix(line, title) {
					line = s.Accent.Render(title) + s.Value.Render(strings.TrimPrefix(line, title))
				}
			}
			lines = append(lines, bar+line)
		}
	}
	if len(r.Sources) > 0 {
		lines = append(lines, "", s.Accent.Render("Sources"))
		for i, src := range r.Sources {
			lines = append(lines, s.Citation.Render("["+strconv.Itoa(i+1)+"] ")+s.Value.Render(src))
		}
		lines = append(lines, s.Muted.Render("ctrl+o opens the source, y copies the report"))
	}
	return lines
}

// reportPlainText renders r without styling, for the clipboard.
func reportPlainText(r content.Report) string {
	var b strings.Builder
	b.WriteString("# " + r.Title + "\n\n## " + r.Subtitle + "\n\n" + r.Intro + "\n\n## Key Findings\n\n")
	for _, f := range r.Findings {
		b.WriteString("- **" + f.Title + ":** " + f.Text)
		if f.Citation > 0 {
			b.WriteString(" [" + strconv.Itoa(f.Citation) + "]")
		}
		b.WriteString("\n")
	}
	if len(r.Sources) > 0 {
		b.WriteString("\n## Sources\n\n")
		for i, src := range r.Sources {
			b.WriteString(strconv.Itoa(i+1) + ". " + src + "\n")
		}
	}
	return b.String()
}

// renderWorkspace renders the transcript and the input line as exactly
// height lines of width columns.
func (m Model) renderWorkspace(width, height int) []string {
	if width <= 0 {
		return block(nil, 0, height)
	}
	if m.showHelp {
		return block(m.helpLines(width), width, height)
	}

	lines := block(strings.Split(m.transcript.View(), "\n"), width, m.frame.TranscriptHeight())

	ruleStyle := m.styles.BorderDim
	if m.focus == focusWorkspace {
		ruleStyle = m.styles.Border
	}
	lines = append(lines, RenderRule(width, ruleStyle))

	var prompt string
	switch {
	case m.loading():
		prompt = " " + m.spinner.View() + " " + m.styles.Label.Render("Agent is thinking... (t details, l log)")
	default:
		prompt = " " + m.input.View()
	}
	lines = append(lines, prompt)
	return block(lines, width, height)
}

// helpLines renders the full key reference in place of the transcript.
func (m Model) helpLines(width int) []string {
	lines := []string{"", " " + m.styles.Header.Render("Keys"), ""}
	h := m.help
	h.Width = width - 2
	for _, line := range strings.Split(h.FullHelpView(m.keys.FullHelp()), "\n") {
		lines = append(lines, " "+ansi.Truncate(line, width-2, ""))
	}
	lines = append(lines, "", " "+m.styles.Muted.Render("esc or ? closes this help"))
	return lines
}
