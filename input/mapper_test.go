package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type rect struct{ x, y, w, h int }

func (r rect) Contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentStep},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentStep},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentStep},
		{"plus", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), IntentMoreDiscs},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentMoreDiscs},
		{"minus", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), IntentFewerDiscs},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), IntentFewerDiscs},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"settle", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentSettle},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentNone},
	}

	m := NewMapper(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Map(tt.ev).Type; got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMapClickInsideBounds(t *testing.T) {
	m := NewMapper(rect{10, 5, 20, 10})

	if got := m.Map(tcell.NewEventMouse(15, 8, tcell.Button1, tcell.ModNone)).Type; got != IntentStep {
		t.Fatalf("click inside: got %s", got)
	}
	// Held button and motion do not repeat the step
	if got := m.Map(tcell.NewEventMouse(16, 8, tcell.Button1, tcell.ModNone)).Type; got != IntentNone {
		t.Errorf("held button: got %s", got)
	}
	m.Map(tcell.NewEventMouse(16, 8, tcell.ButtonNone, tcell.ModNone))
	if got := m.Map(tcell.NewEventMouse(16, 8, tcell.Button1, tcell.ModNone)).Type; got != IntentStep {
		t.Errorf("second click: got %s", got)
	}
}

func TestMapClickOutsideBounds(t *testing.T) {
	m := NewMapper(rect{10, 5, 20, 10})
	if got := m.Map(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone)).Type; got != IntentNone {
		t.Errorf("click outside: got %s", got)
	}
	m.Map(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))
	if got := m.Map(tcell.NewEventMouse(30, 5, tcell.Button1, tcell.ModNone)).Type; got != IntentNone {
		t.Errorf("click on right edge: got %s", got)
	}
}

func TestMapResize(t *testing.T) {
	m := NewMapper(nil)
	if got := m.Map(tcell.NewEventResize(80, 24)).Type; got != IntentResize {
		t.Errorf("got %s", got)
	}
}
