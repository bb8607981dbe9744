package app

import (
	"path/filepath"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/analyzer"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/view"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/wave"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/wavio"
)

// session bundles everything derived from one loaded file: the immutable
// sample buffer, its downsample cache, the view window, and the stats
// analyzer tuned to its sample rate. Loading another file builds a complete
// new session and swaps the pointer, so a consumer holds either the old
// generation or the new one, never a mix.
type session struct {
	name   string
	buffer *wave.Buffer
	cache  *wave.Cache
	window *view.Window
	stats  *analyzer.Analyzer
}

// newSession loads the WAV file at path and derives the session state.
func newSession(path string) (*session, error) {
	buffer, err := wavio.Load(path)
	if err != nil {
		return nil, err
	}
	return &session{
		name:   filepath.Base(path),
		buffer: buffer,
		cache:  wave.NewCache(buffer),
		window: view.NewWindow(buffer.Count()),
		stats:  analyzer.New(analyzer.Config{SampleRate: float64(buffer.SampleRate())}),
	}, nil
}
