package tui

import "testing"

func TestCalculateFrame(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		wantTooSmall bool
		wantBody     int
	}{
		{name: "standard terminal", width: 120, height: 40, wantBody: 36},
		{name: "minimum size", width: 60, height: 16, wantBody: 12},
		{name: "too narrow", width: 59, height: 40, wantTooSmall: true},
		{name: "too short", width: 120, height: 15, wantTooSmall: true},
		{name: "zero size", width: 0, height: 0, wantTooSmall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := CalculateFrame(tt.width, tt.height)

			if frame.TooSmall != tt.wantTooSmall {
				t.Fatalf("TooSmall = %v; want %v", frame.TooSmall, tt.wantTooSmall)
			}
			if tt.wantTooSmall {
				if frame.TooSmallMessage == "" {
					t.Error("TooSmallMessage is empty")
				}
				return
			}
			if frame.BodyHeight != tt.wantBody {
				t.Errorf("BodyHeight = %d; want %d", frame.BodyHeight, tt.wantBody)
			}
			total := frame.HeaderHeight + frame.BodyHeight + frame.HelpBarHeight + RuleHeight
			if total != tt.height {
				t.Errorf("frame rows sum to %d; want %d", total, tt.height)
			}
		})
	}
}

func TestFrame_TranscriptHeight(t *testing.T) {
	frame := CalculateFrame(80, 24)
	if got := frame.TranscriptHeight(); got != frame.BodyHeight-InputHeight {
		t.Errorf("TranscriptHeight() = %d; want %d", got, frame.BodyHeight-InputHeight)
	}
	if got := (Frame{}).TranscriptHeight(); got != 0 {
		t.Errorf("TranscriptHeight() on empty frame = %d; want 0", got)
	}
	if got := frame.BodyTop(); got != 2 {
		t.Errorf("BodyTop() = %d; want 2", got)
	}
}
