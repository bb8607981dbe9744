//go:build sdl

package render

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLSurface renders frames into a window and forwards its keyboard events.
// Key-up events are only observable here; the terminal surface falls back to
// sticky digit taps.
type SDLSurface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	width    int
	height   int
	events   chan Event
	title    string
	closed   bool
}

// NewSDLSurface opens a window of the given pixel size.
func NewSDLSurface(width, height int) (*SDLSurface, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	window, err := sdl.CreateWindow(
		"waveview",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, fmt.Errorf("sdl window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, fmt.Errorf("sdl renderer: %w", err)
	}
	_ = renderer.SetLogicalSize(int32(width), int32(height))

	return &SDLSurface{
		window:   window,
		renderer: renderer,
		width:    width,
		height:   height,
		events:   make(chan Event, 16),
	}, nil
}

// Size returns the window dimensions in pixels.
func (s *SDLSurface) Size() (int, int) {
	return s.width, s.height
}

// Events returns the forwarded keyboard events.
func (s *SDLSurface) Events() <-chan Event {
	return s.events
}

// Present draws the frame and pumps the SDL event queue.
func (s *SDLSurface) Present(f Frame) error {
	if s.closed {
		return ErrSurfaceClosed
	}

	bg := f.Background
	if err := s.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255); err != nil {
		return err
	}
	if err := s.renderer.Clear(); err != nil {
		return err
	}
	for _, seg := range f.Segments {
		c := seg.Color
		_ = s.renderer.SetDrawColor(c.R, c.G, c.B, 255)
		_ = s.renderer.DrawLine(int32(seg.X0), int32(seg.Y0), int32(seg.X1), int32(seg.Y1))
	}
	s.renderer.Present()

	if f.Status != "" && f.Status != s.title {
		s.window.SetTitle("waveview — " + f.Status)
		s.title = f.Status
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return ErrSurfaceClosed
		case *sdl.KeyboardEvent:
			s.forwardKey(ev)
		}
	}
	return nil
}

func (s *SDLSurface) forwardKey(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}
	sym := ev.Keysym.Sym
	down := ev.Type == sdl.KEYDOWN

	var out Event
	switch {
	case sym >= sdl.K_1 && sym <= sdl.K_9:
		out = Event{Digit: int(sym - sdl.K_0)}
		if down {
			out.Kind = EventKeyDown
		} else {
			out.Kind = EventKeyUp
		}
	case sym == sdl.K_p && down:
		out = Event{Kind: EventToggle}
	case (sym == sdl.K_UP || sym == sdl.K_EQUALS || sym == sdl.K_PLUS) && down:
		out = Event{Kind: EventZoom, ZoomDelta: -1}
	case (sym == sdl.K_DOWN || sym == sdl.K_MINUS) && down:
		out = Event{Kind: EventZoom, ZoomDelta: 1}
	case (sym == sdl.K_ESCAPE || sym == sdl.K_q) && down:
		out = Event{Kind: EventQuit}
	default:
		return
	}

	select {
	case s.events <- out:
	default:
	}
}

// Close tears the window down.
func (s *SDLSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
	return nil
}

// SupportsSDL reports whether this build carries the SDL backend.
func SupportsSDL() bool { return true }
