package layout

import "testing"

func TestNewController_Default(t *testing.T) {
	c := NewController()

	if got := c.State(); got != (State{}) {
		t.Errorf("State() = %+v; want default", got)
	}
}

func TestController_ToggleNavTwiceRestores(t *testing.T) {
	for _, start := range []bool{false, true} {
		c := NewController()
		if start {
			c.ToggleNav()
		}
		before := c.State().NavCollapsed

		c.ToggleNav()
		if c.State().NavCollapsed == before {
			t.Errorf("single toggle from %v did not flip", before)
		}
		c.ToggleNav()
		if c.State().NavCollapsed != before {
			t.Errorf("double toggle from %v ended at %v", before, c.State().NavCollapsed)
		}
	}
}

func TestController_OpenCloseViewerIdempotent(t *testing.T) {
	c := NewController()

	c.OpenViewer()
	c.OpenViewer()
	if !c.State().ViewerOpen {
		t.Error("expected viewer open")
	}

	c.CloseViewer()
	c.CloseViewer()
	if c.State().ViewerOpen {
		t.Error("expected viewer closed")
	}

	c.ToggleViewer()
	if !c.State().ViewerOpen {
		t.Error("expected ToggleViewer to open a closed viewer")
	}
	c.ToggleViewer()
	if c.State().ViewerOpen {
		t.Error("expected ToggleViewer to close an open viewer")
	}
}

func TestController_NavAndViewerAreIndependent(t *testing.T) {
	c := NewController()
	c.OpenViewer()
	c.ToggleNav()

	if got := c.State(); got != (State{NavCollapsed: true, ViewerOpen: true}) {
		t.Errorf("State() = %+v", got)
	}

	c.CloseViewer()
	if !c.State().NavCollapsed {
		t.Error("closing viewer changed nav state")
	}
}

func TestController_WidthScenario(t *testing.T) {
	const (
		total     = 1000
		collapsed = 64
		expanded  = 256
	)
	c := NewController()

	w := c.ComputeWidths(total, collapsed, expanded)
	if w != (Widths{Nav: 256, Viewer: 0, Workspace: 744}) {
		t.Errorf("default widths = %+v", w)
	}

	c.OpenViewer()
	w = c.ComputeWidths(total, collapsed, expanded)
	if w != (Widths{Nav: 256, Viewer: 372, Workspace: 372}) {
		t.Errorf("viewer open widths = %+v", w)
	}

	c.ToggleNav()
	w = c.ComputeWidths(total, collapsed, expanded)
	if w != (Widths{Nav: 64, Viewer: 468, Workspace: 468}) {
		t.Errorf("collapsed + viewer widths = %+v", w)
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		total     int
		collapsed int
		expanded  int
		want      Widths
	}{
		{
			name:  "odd remainder goes to workspace",
			state: State{ViewerOpen: true},
			total: 101, collapsed: 6, expanded: 32,
			want: Widths{Nav: 32, Viewer: 34, Workspace: 35},
		},
		{
			name:  "collapsed closed",
			state: State{NavCollapsed: true},
			total: 120, collapsed: 6, expanded: 32,
			want: Widths{Nav: 6, Workspace: 114},
		},
		{
			name:  "nav wider than total is capped",
			state: State{ViewerOpen: true},
			total: 20, collapsed: 6, expanded: 32,
			want: Widths{Nav: 20},
		},
		{
			name:  "negative total",
			state: State{},
			total: -5, collapsed: 6, expanded: 32,
			want: Widths{},
		},
		{
			name:  "negative nav constant",
			state: State{NavCollapsed: true},
			total: 80, collapsed: -3, expanded: 32,
			want: Widths{Nav: 0, Workspace: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.state, tt.total, tt.collapsed, tt.expanded)
			if got != tt.want {
				t.Errorf("Compute() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestCompute_PureAndSumsToTotal(t *testing.T) {
	states := []State{
		{},
		{NavCollapsed: true},
		{ViewerOpen: true},
		{NavCollapsed: true, ViewerOpen: true},
	}

	for _, s := range states {
		for total := 0; total <= 300; total += 7 {
			first := Compute(s, total, 6, 32)
			second := Compute(s, total, 6, 32)
			if first != second {
				t.Fatalf("Compute(%+v, %d) not deterministic: %+v vs %+v", s, total, first, second)
			}
			if first.Total() != total {
				t.Fatalf("Compute(%+v, %d) sums to %d", s, total, first.Total())
			}
			if first.Nav < 0 || first.Viewer < 0 || first.Workspace < 0 {
				t.Fatalf("Compute(%+v, %d) has negative width: %+v", s, total, first)
			}
			if !s.ViewerOpen && first.Viewer != 0 {
				t.Fatalf("closed viewer has width %d", first.Viewer)
			}
		}
	}
}
