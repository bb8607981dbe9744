package playback

import (
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudio keeps process-wide state, so the library is brought up and torn
// down at most once no matter how many engines or device listings run.
var (
	paUp    sync.Once
	paDown  sync.Once
	paErr   error
	paReady bool
)

// Initialize prepares the PortAudio host layer. Safe to call repeatedly;
// every call after the first returns the outcome of the first.
func Initialize() error {
	paUp.Do(func() {
		paErr = portaudio.Initialize()
		paReady = paErr == nil
	})
	return paErr
}

// Terminate releases the PortAudio host layer. A no-op when Initialize
// failed or was never called.
func Terminate() {
	if !paReady {
		return
	}
	paDown.Do(func() {
		_ = portaudio.Terminate()
	})
}
