// Package input turns SDL2 events into pointer and window events.
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
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Wheel  float32
}

// Pointer is the accumulated mouse state for one frame.
type Pointer struct {
	X, Y   int
	DX, DY int // Motion while the left button was held
	Wheel  float32
	Valid  bool // Set after the first motion event
	Moved  bool // Motion happened this frame
}

// Input handles all input processing.
type Input struct {
	events  []Event
	pointer Pointer
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events.
// Returns true if the program should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.pointer.DX, i.pointer.DY = 0, 0
	i.pointer.Wheel = 0
	i.pointer.Moved = false

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_CLOSE:
				i.events = append(i.events, Event{Type: EventQuit})
				quit = true
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			}

		case *sdl.MouseMotionEvent:
			i.pointer.X, i.pointer.Y = int(e.X), int(e.Y)
			i.pointer.Valid = true
			i.pointer.Moved = true
			if e.State&sdl.ButtonLMask() != 0 {
				i.pointer.DX += int(e.XRel)
				i.pointer.DY += int(e.YRel)
			}
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseWheelEvent:
			i.pointer.Wheel += float32(e.Y)
			i.events = append(i.events, Event{
				Type:  EventMouseWheel,
				Wheel: float32(e.Y),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pointer returns the mouse state accumulated by the last Update.
func (i *Input) Pointer() Pointer {
	return i.pointer
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
