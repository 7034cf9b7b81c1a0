// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Resize describes a window resize event.
type Resize struct {
	Width  int
	Height int
}

// Input polls SDL events and tracks per-frame input state.
type Input struct {
	keysDown map[sdl.Scancode]bool

	mouseDX int32
	mouseDY int32

	resize    Resize
	hasResize bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		keysDown: make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.mouseDX, i.mouseDY = 0, 0
	i.hasResize = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.resize = Resize{Width: int(e.Data1), Height: int(e.Data2)}
				i.hasResize = true
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					return true
				}
				i.keysDown[e.Keysym.Scancode] = true
			case sdl.KEYUP:
				delete(i.keysDown, e.Keysym.Scancode)
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += e.XRel
			i.mouseDY += e.YRel
		}
	}

	return false
}

// IsKeyDown reports whether the key is currently held.
func (i *Input) IsKeyDown(key sdl.Scancode) bool {
	return i.keysDown[key]
}

// MouseDelta returns the relative mouse motion accumulated this frame.
func (i *Input) MouseDelta() (dx, dy float32) {
	return float32(i.mouseDX), float32(i.mouseDY)
}

// Resized returns the pending resize event, if any.
func (i *Input) Resized() (Resize, bool) {
	return i.resize, i.hasResize
}

// MoveAxes returns -1..1 movement axes from the WASD/space/shift keys.
func (i *Input) MoveAxes() (forward, right, up float32) {
	if i.keysDown[sdl.SCANCODE_W] {
		forward++
	}
	if i.keysDown[sdl.SCANCODE_S] {
		forward--
	}
	if i.keysDown[sdl.SCANCODE_D] {
		right++
	}
	if i.keysDown[sdl.SCANCODE_A] {
		right--
	}
	if i.keysDown[sdl.SCANCODE_SPACE] {
		up++
	}
	if i.keysDown[sdl.SCANCODE_LSHIFT] {
		up--
	}
	return forward, right, up
}
