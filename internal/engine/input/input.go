// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input converts SDL events into per-frame state: discrete events, held-key
// flags for continuous movement, and the relative mouse motion accumulated
// since the previous poll.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
	relX   int32
	relY   int32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Poll drains pending SDL events. Returns true if the application should
// quit (window close or Escape).
func (i *Input) Poll() bool {
	i.events = i.events[:0]
	i.relX, i.relY = 0, 0
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			} else if e.Event == sdl.WINDOWEVENT_CLOSE {
				quit = true
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
				i.held[e.Keysym.Scancode] = true
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.held[e.Keysym.Scancode] = false
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.relX += e.XRel
			i.relY += e.YRel
		}
	}

	return quit
}

// Events returns the events from the last Poll.
func (i *Input) Events() []Event {
	return i.events
}

// Held reports whether a key is currently held down.
func (i *Input) Held(code sdl.Scancode) bool {
	return i.held[code]
}

// MouseDelta returns the relative mouse motion since the previous poll.
func (i *Input) MouseDelta() (float32, float32) {
	return float32(i.relX), float32(i.relY)
}
