package playback

// State is the transport state of the tracker.
type State int

const (
	StateStopped State = iota
	StatePaused
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Tracker is the bridge between the engine's clock and the playhead overlay.
// The UI loop calls Tick at a fixed cadence while playing; Tick polls the
// engine once and never blocks on it. If the engine reports a position
// behind the last one (device hiccup, backend buffering), the previous
// position is reused so the playhead never regresses within a playback run.
type Tracker struct {
	engine   Engine
	state    State
	position int
}

// NewTracker wraps an engine. The tracker starts stopped at position 0.
func NewTracker(engine Engine) *Tracker {
	return &Tracker{engine: engine}
}

// Play transitions to playing and starts the engine.
func (t *Tracker) Play() error {
	if err := t.engine.Play(); err != nil {
		return err
	}
	t.state = StatePlaying
	return nil
}

// Pause transitions to paused, keeping the position.
func (t *Tracker) Pause() error {
	if err := t.engine.Pause(); err != nil {
		return err
	}
	t.state = StatePaused
	return nil
}

// Stop transitions to stopped and rewinds.
func (t *Tracker) Stop() error {
	if err := t.engine.Stop(); err != nil {
		return err
	}
	t.state = StateStopped
	t.position = 0
	return nil
}

// Tick polls the engine once and returns the playhead position in samples.
// Outside the playing state it returns the last known position unchanged.
func (t *Tracker) Tick() int {
	if t.state != StatePlaying {
		return t.position
	}
	if p := t.engine.PositionSamples(); p >= t.position {
		t.position = p
	}
	return t.position
}

// Position returns the last position observed by Tick.
func (t *Tracker) Position() int {
	return t.position
}

// State returns the transport state.
func (t *Tracker) State() State {
	return t.state
}
