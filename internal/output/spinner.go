package output

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner wraps briandowns/spinner with a plain-text fallback for
// non-interactive output.
type Spinner struct {
	spinner  *spinner.Spinner
	message  string
	writer   *Formatter
	disabled bool
	active   bool
}

// Spinner creates a spinner for a long operation. When animate is false, or
// the formatter is quiet, the spinner prints its message once instead.
func (f *Formatter) Spinner(message string, animate bool) *Spinner {
	if f.quiet || !animate {
		return &Spinner{disabled: true, message: message, writer: f}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = f.writer
	s.Suffix = " " + message

	return &Spinner{spinner: s, message: message, writer: f}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if s.active {
		return
	}
	s.active = true
	if s.disabled {
		if !s.writer.quiet {
			_, _ = fmt.Fprintf(s.writer.writer, "%s...\n", s.message)
		}
		return
	}
	s.spinner.Start()
}

// Stop stops the spinner animation.
func (s *Spinner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	if s.disabled {
		return
	}
	s.spinner.Stop()
}

// Pause stops the animation while fn writes to the terminal, then resumes it.
func (s *Spinner) Pause(fn func()) {
	if s.disabled || !s.active {
		fn()
		return
	}
	s.spinner.Stop()
	fn()
	s.spinner.Start()
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	if message == "" || s.writer.quiet {
		return
	}
	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(s.writer.writer, "%s %s\n", CheckMark, message)
}

// UpdateMessage changes the spinner message.
func (s *Spinner) UpdateMessage(message string) {
	if message == s.message {
		return
	}
	s.message = message
	if s.disabled {
		if s.active && !s.writer.quiet {
			_, _ = fmt.Fprintf(s.writer.writer, "%s...\n", message)
		}
		return
	}
	s.spinner.Suffix = " " + message
}
