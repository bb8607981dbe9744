package playback

import (
	"testing"
	"time"
)

// scriptedEngine replays a fixed position sequence, one value per poll.
type scriptedEngine struct {
	positions []int
	polls     int
}

func (e *scriptedEngine) Load([]float64, int) error { return nil }
func (e *scriptedEngine) Play() error               { return nil }
func (e *scriptedEngine) Pause() error              { return nil }
func (e *scriptedEngine) Stop() error               { return nil }
func (e *scriptedEngine) Close() error              { return nil }

func (e *scriptedEngine) PositionSamples() int {
	if e.polls >= len(e.positions) {
		return e.positions[len(e.positions)-1]
	}
	p := e.positions[e.polls]
	e.polls++
	return p
}

func TestTrackerAdvancesMonotonically(t *testing.T) {
	// Three 30ms ticks at 44.1kHz: engine reports 0, 1470, 2940.
	engine := &scriptedEngine{positions: []int{0, 1_470, 2_940}}
	tr := NewTracker(engine)
	if err := tr.Play(); err != nil {
		t.Fatal(err)
	}

	prev := -1
	for i := 0; i < 3; i++ {
		pos := tr.Tick()
		if pos < prev {
			t.Fatalf("tick %d: position %d regressed below %d", i, pos, prev)
		}
		prev = pos
	}
	if prev != 2_940 {
		t.Fatalf("final position %d, want 2940", prev)
	}
}

func TestTrackerReusesPositionOnRegression(t *testing.T) {
	engine := &scriptedEngine{positions: []int{1_000, 400, 1_500}}
	tr := NewTracker(engine)
	_ = tr.Play()

	if got := tr.Tick(); got != 1_000 {
		t.Fatalf("first tick: %d", got)
	}
	// Engine hiccup reporting 400: previous frame's position is reused.
	if got := tr.Tick(); got != 1_000 {
		t.Fatalf("regressed tick: %d, want 1000", got)
	}
	if got := tr.Tick(); got != 1_500 {
		t.Fatalf("recovered tick: %d, want 1500", got)
	}
}

func TestTrackerIgnoresTicksWhilePaused(t *testing.T) {
	engine := &scriptedEngine{positions: []int{500, 9_999}}
	tr := NewTracker(engine)
	_ = tr.Play()
	if got := tr.Tick(); got != 500 {
		t.Fatalf("tick: %d", got)
	}
	_ = tr.Pause()
	if got := tr.Tick(); got != 500 {
		t.Fatalf("paused tick moved position to %d", got)
	}
	if tr.State() != StatePaused {
		t.Fatalf("state=%v", tr.State())
	}
}

func TestTrackerStopRewinds(t *testing.T) {
	engine := &scriptedEngine{positions: []int{500}}
	tr := NewTracker(engine)
	_ = tr.Play()
	tr.Tick()
	if err := tr.Stop(); err != nil {
		t.Fatal(err)
	}
	if tr.Position() != 0 {
		t.Fatalf("position after stop: %d", tr.Position())
	}
	if tr.State() != StateStopped {
		t.Fatalf("state=%v", tr.State())
	}
}

func TestSyntheticEngineClock(t *testing.T) {
	e := NewSynthetic()
	if err := e.Play(); err != ErrNotLoaded {
		t.Fatalf("play before load: %v", err)
	}
	if err := e.Load(make([]float64, 44_100), 44_100); err != nil {
		t.Fatal(err)
	}
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)
	first := e.PositionSamples()
	if first <= 0 {
		t.Fatalf("clock did not advance: %d", first)
	}
	if err := e.Pause(); err != nil {
		t.Fatal(err)
	}
	frozen := e.PositionSamples()
	time.Sleep(20 * time.Millisecond)
	if got := e.PositionSamples(); got != frozen {
		t.Fatalf("paused clock advanced from %d to %d", frozen, got)
	}
	if err := e.Stop(); err != nil {
		t.Fatal(err)
	}
	if got := e.PositionSamples(); got != 0 {
		t.Fatalf("stop did not rewind: %d", got)
	}
}

func TestSyntheticEngineClampsAtEnd(t *testing.T) {
	e := NewSynthetic()
	if err := e.Load(make([]float64, 10), 44_100); err != nil {
		t.Fatal(err)
	}
	_ = e.Play()
	time.Sleep(10 * time.Millisecond)
	if got := e.PositionSamples(); got != 10 {
		t.Fatalf("position %d past end of 10-sample buffer", got)
	}
}

func TestNewEngineBackendSelection(t *testing.T) {
	if _, err := NewEngine("none"); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEngine("bogus"); err == nil {
		t.Fatal("unknown backend accepted")
	}
}
