package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/flashingpumpkin/stratos/internal/config"
	"github.com/flashingpumpkin/stratos/internal/session"
)

// GoldenTestOptions configures a golden file test.
type GoldenTestOptions struct {
	Width      int
	Height     int
	Cadence    time.Duration
	ViewerOpen bool
	Collapsed  bool
	Messages   []session.Message
}

// DefaultGoldenOptions returns sensible defaults for golden file testing.
func DefaultGoldenOptions() GoldenTestOptions {
	return GoldenTestOptions{
		Width:   100,
		Height:  30,
		Cadence: 10 * time.Millisecond,
	}
}

func goldenModel(t *testing.T, opts GoldenTestOptions) Model {
	t.Helper()

	// Ensure deterministic colour output
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "dumb")

	cfg := config.NewConfig()
	cfg.Cadence = opts.Cadence

	store := session.NewStore(session.WithClock(func() time.Time { return testNow }))
	if len(opts.Messages) > 0 {
		s := store.Create()
		for _, msg := range opts.Messages {
			store.AppendMessage(s.ID, msg)
		}
	}
	m := NewModel(cfg,
		WithStore(store),
		WithTheme(ThemeDark),
		WithClock(func() time.Time { return testNow }),
		WithClipboard(func(string) error { return nil }),
	)
	if opts.Collapsed {
		m.panels.ToggleNav()
	}
	if opts.ViewerOpen {
		m.panels.ToggleViewer()
	}
	return m
}

// createGoldenTestModel creates a teatest model with the specified terminal size.
func createGoldenTestModel(t *testing.T, opts GoldenTestOptions) *teatest.TestModel {
	t.Helper()

	tm := teatest.NewTestModel(
		t,
		goldenModel(t, opts),
		teatest.WithInitialTermSize(opts.Width, opts.Height),
	)
	tm.Send(tea.WindowSizeMsg{Width: opts.Width, Height: opts.Height})
	return tm
}

// renderToString renders a Model to a string for snapshot comparison.
// This bypasses teatest for simpler, faster testing of view output.
func renderToString(t *testing.T, opts GoldenTestOptions) string {
	t.Helper()

	model := goldenModel(t, opts)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: opts.Width, Height: opts.Height})
	return updated.(Model).View()
}

func TestGoldenEmpty(t *testing.T) {
	output := renderToString(t, DefaultGoldenOptions())

	assertFrame(t, output, 100, 30)
	for _, want := range []string{"no chat selected", "Understand, research and write about anything", "Sign in"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGoldenWithConversation(t *testing.T) {
	opts := DefaultGoldenOptions()
	opts.Messages = []session.Message{
		{Role: session.RoleUser, Content: "How do transcription factors maintain pluripotency?", At: testNow},
		{Role: session.RoleAssistant, Content: "OCT4, SOX2 and NANOG form a core regulatory circuit.", At: testNow},
	}

	output := renderToString(t, opts)

	assertFrame(t, output, 100, 30)
	for _, want := range []string{"You", "Stratos", "15:00", "core regulatory circuit"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGoldenWithViewer(t *testing.T) {
	opts := DefaultGoldenOptions()
	opts.ViewerOpen = true

	output := renderToString(t, opts)

	assertFrame(t, output, 100, 30)
	if !strings.Contains(output, "Efficient Agent Adaptation.pdf") {
		t.Error("expected the viewer file name")
	}
}

func TestGoldenScrollingConversation(t *testing.T) {
	opts := DefaultGoldenOptions()
	for i := 0; i < 40; i++ {
		opts.Messages = append(opts.Messages, session.Message{Role: session.RoleUser, Content: "This is a message line for testing scroll behaviour"})
	}
	opts.Messages = append(opts.Messages, session.Message{Role: session.RoleAssistant, Content: "final answer"})

	output := renderToString(t, opts)

	assertFrame(t, output, 100, 30)
	if !strings.Contains(output, "final answer") {
		t.Error("transcript should start scrolled to the latest message")
	}
}

func TestGoldenNarrowTerminal(t *testing.T) {
	opts := DefaultGoldenOptions()
	opts.Width = 60
	opts.Height = 16
	opts.ViewerOpen = true
	opts.Collapsed = true

	output := renderToString(t, opts)

	assertFrame(t, output, 60, 16)
}

// TestGoldenTeatestIntegration drives a full send through the real program
// loop and tea.Tick cadence.
func TestGoldenTeatestIntegration(t *testing.T) {
	opts := DefaultGoldenOptions()

	tm := createGoldenTestModel(t, opts)

	tm.Type("latest agentic AI advances")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("y copies the report"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	if !ok {
		t.Fatal("final model is not a Model")
	}
	sel, _ := final.Store().Selected()
	if len(sel.Messages) != 2 {
		t.Errorf("len(Messages) = %d; want question and reply", len(sel.Messages))
	}
	if final.reasoning != nil {
		t.Error("quitting should unmount the reasoning panel")
	}
}

func TestGoldenTeatestQuit(t *testing.T) {
	tm := createGoldenTestModel(t, DefaultGoldenOptions())

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	output, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(3*time.Second)))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(output) == 0 {
		t.Fatal("expected non-empty output from teatest harness")
	}
}
