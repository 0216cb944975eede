// Package layout owns the visibility state of the navigation panel and the
// document viewer, and derives the width of each horizontal region from it.
package layout

// State is the panel visibility state. The zero value is the default layout:
// navigation expanded, viewer closed.
type State struct {
	NavCollapsed bool
	ViewerOpen   bool
}

// Widths holds the derived width of each region.
type Widths struct {
	Nav       int
	Viewer    int
	Workspace int
}

// Total returns the sum of all region widths.
func (w Widths) Total() int {
	return w.Nav + w.Viewer + w.Workspace
}

// Controller owns a State for the lifetime of one screen.
// It has a single owner and is not safe for concurrent use.
type Controller struct {
	state State
}

// NewController returns a Controller in the default state.
func NewController() *Controller {
	return &Controller{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// ToggleNav flips between the collapsed and expanded navigation panel.
func (c *Controller) ToggleNav() {
	c.state.NavCollapsed = !c.state.NavCollapsed
}

// OpenViewer shows the document viewer.
func (c *Controller) OpenViewer() {
	c.state.ViewerOpen = true
}

// CloseViewer hides the document viewer.
func (c *Controller) CloseViewer() {
	c.state.ViewerOpen = false
}

// ToggleViewer opens the viewer when closed and closes it when open.
func (c *Controller) ToggleViewer() {
	c.state.ViewerOpen = !c.state.ViewerOpen
}

// ComputeWidths derives region widths from the current state.
func (c *Controller) ComputeWidths(total, navCollapsedWidth, navExpandedWidth int) Widths {
	return Compute(c.state, total, navCollapsedWidth, navExpandedWidth)
}

// Compute derives region widths from a state and the supplied constants.
// The navigation panel takes the collapsed or expanded width; the viewer and
// the workspace split what remains equally when the viewer is open, with the
// odd column going to the workspace. Negative inputs are treated as zero and
// the navigation width is capped at the total, so every width is
// non-negative and the widths always sum to max(total, 0).
func Compute(s State, total, navCollapsedWidth, navExpandedWidth int) Widths {
	total = nonNegative(total)

	nav := nonNegative(navExpandedWidth)
	if s.NavCollapsed {
		nav = nonNegative(navCollapsedWidth)
	}
	if nav > total {
		nav = total
	}

	remaining := total - nav
	if !s.ViewerOpen {
		return Widths{Nav: nav, Workspace: remaining}
	}

	viewer := remaining / 2
	return Widths{
		Nav:       nav,
		Viewer:    viewer,
		Workspace: remaining - viewer,
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
