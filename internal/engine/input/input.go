// Package input turns SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Event represents a processed input event. Buttons is the mouse button
// mask held during the event.
type Event struct {
	Type    EventType
	Key     sdl.Keycode
	Width   int
	Height  int
	MouseX  int
	MouseY  int
	Buttons uint32
	WheelY  int
}

// Pressed reports whether any mouse button was held.
func (e Event) Pressed() bool {
	return e.Buttons != 0
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := convert(event); ok {
			i.events = append(i.events, ev)
			if ev.Type == EventQuit {
				return true
			}
		}
	}

	return false
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:    EventMouseMove,
			MouseX:  int(e.X),
			MouseY:  int(e.Y),
			Buttons: e.State,
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{
			MouseX:  int(e.X),
			MouseY:  int(e.Y),
			Buttons: buttonMask(e.Button),
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = EventMouseDown
		} else {
			ev.Type = EventMouseUp
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventWheel, WheelY: int(e.Y)}, true
	}

	return Event{}, false
}

// buttonMask turns a button index into its bit in a motion state mask.
func buttonMask(button uint8) uint32 {
	if button == 0 {
		return 0
	}
	return 1 << (button - 1)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
