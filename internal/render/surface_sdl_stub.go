//go:build !sdl

package render

import "errors"

// SDLSurface placeholder for builds without the sdl tag.
type SDLSurface struct{}

// NewSDLSurface fails: the SDL backend is compiled out.
func NewSDLSurface(width, height int) (*SDLSurface, error) {
	return nil, errors.New("SDL backend not enabled; rebuild with -tags sdl")
}

func (s *SDLSurface) Size() (int, int)     { return 0, 0 }
func (s *SDLSurface) Events() <-chan Event { return nil }
func (s *SDLSurface) Present(Frame) error  { return ErrSurfaceClosed }
func (s *SDLSurface) Close() error         { return nil }

// SupportsSDL reports whether this build carries the SDL backend.
func SupportsSDL() bool { return false }
