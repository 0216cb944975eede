package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/flashingpumpkin/stratos/internal/config"
	"github.com/muesli/termenv"
)

// Program wraps the tea.Program for lifecycle management.
type Program struct {
	program *tea.Program
}

// New creates the TUI program for cfg.
func New(cfg *config.Config, opts ...Option) *Program {
	// Handle NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := NewModel(cfg, opts...)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	return &Program{program: program}
}

// Run starts the TUI program. This blocks until the program exits.
func (p *Program) Run() error {
	_, err := p.program.Run()
	return err
}

// Send sends a message to the program.
func (p *Program) Send(msg tea.Msg) {
	p.program.Send(msg)
}

// Quit sends a quit message to the program.
func (p *Program) Quit() {
	p.program.Quit()
}

// Kill forcefully terminates the program.
func (p *Program) Kill() {
	p.program.Kill()
}
