package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eiannone/keyboard"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/input"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/playback"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/render"
)

// tickInterval is the playhead poll cadence, ~33 updates/sec.
const tickInterval = 30 * time.Millisecond

// Config configures the application runtime.
type Config struct {
	Scheme    render.Scheme
	Surface   render.Surface
	Engine    playback.Engine
	TargetFPS float64
	ZoomStep  int
	Profile   string
	Log       *log.Logger

	// OnFrame, when set, receives every presented frame together with a
	// state snapshot. It is called on the Run goroutine; the web mirror
	// hooks in here and must not block.
	OnFrame func(render.Frame, Snapshot)
}

// App ties together the loaded session, input handling, playback tracking
// and rendering. All state mutation happens on the Run goroutine.
type App struct {
	cfg        Config
	session    *session
	controller *input.Controller
	tracker    *playback.Tracker
	surface    render.Surface
	log        *log.Logger
	profiler   *profiler

	keyEvents chan render.Event
	// sticky is set when keys come from a plain terminal, which cannot
	// report releases; digit presses then toggle the override instead.
	sticky bool

	playbackBroken bool
}

// New constructs the application using the provided configuration.
func New(cfg Config) (*App, error) {
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = 30
	}
	if cfg.ZoomStep <= 0 {
		cfg.ZoomStep = 25
	}
	if cfg.Log == nil {
		cfg.Log = log.New(os.Stderr, "", log.LstdFlags)
	}
	if cfg.Surface == nil {
		return nil, errors.New("app: no surface configured")
	}
	if cfg.Engine == nil {
		return nil, errors.New("app: no engine configured")
	}

	return &App{
		cfg:        cfg,
		controller: input.NewController(),
		tracker:    playback.NewTracker(cfg.Engine),
		surface:    cfg.Surface,
		log:        cfg.Log,
		profiler:   newProfiler(cfg.Profile, cfg.Log),
	}, nil
}

// Load reads the WAV file at path and makes it the current session,
// discarding the previous session and its caches wholesale. Playback of the
// old file stops first so the engine never plays one buffer while the view
// shows another.
func (a *App) Load(path string) error {
	next, err := newSession(path)
	if err != nil {
		return err
	}
	if a.session != nil {
		if err := a.tracker.Stop(); err != nil {
			a.log.Printf("stop before reload: %v", err)
		}
	}
	if err := a.cfg.Engine.Load(next.buffer.All(), next.buffer.SampleRate()); err != nil {
		if errors.Is(err, playback.ErrUnavailable) {
			// Visualization stays usable without a device.
			a.playbackBroken = true
			a.log.Printf("audio disabled: %v", err)
		} else {
			return err
		}
	}
	a.session = next
	a.log.Printf("loaded %q: %d samples @ %d Hz (%s)",
		next.name, next.buffer.Count(), next.buffer.SampleRate(), next.buffer.Duration().Round(time.Millisecond))
	return nil
}

// Run starts the event loop until context cancellation or quit.
func (a *App) Run(ctx context.Context) error {
	if a.session == nil {
		return errors.New("app: no file loaded")
	}

	frameDuration := time.Duration(float64(time.Second) / a.cfg.TargetFPS)
	frameTicker := time.NewTicker(frameDuration)
	defer frameTicker.Stop()
	playTicker := time.NewTicker(tickInterval)
	defer playTicker.Stop()

	surfaceEvents := a.surface.Events()
	if surfaceEvents == nil {
		inputCtx, cancelInput := context.WithCancel(ctx)
		defer cancelInput()
		a.startKeyboardListener(inputCtx)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-a.keyEvents:
			if !ok {
				a.keyEvents = nil
				continue
			}
			if quit := a.handleEvent(evt); quit {
				return nil
			}
		case evt, ok := <-surfaceEvents:
			if !ok {
				surfaceEvents = nil
				continue
			}
			if quit := a.handleEvent(evt); quit {
				return nil
			}
		case <-playTicker.C:
			a.tracker.Tick()
		case <-frameTicker.C:
			if err := a.step(); err != nil {
				if errors.Is(err, render.ErrSurfaceClosed) {
					return nil
				}
				return err
			}
		}
	}
}

// Close releases held resources.
func (a *App) Close() error {
	if a.profiler != nil {
		_ = a.profiler.Close()
	}
	return a.cfg.Engine.Close()
}

func (a *App) handleEvent(evt render.Event) (quit bool) {
	switch evt.Kind {
	case render.EventQuit:
		return true
	case render.EventToggle:
		a.togglePlayback()
	case render.EventKeyDown:
		if a.sticky {
			a.controller.Tap(evt.Digit)
		} else {
			a.controller.KeyDown(evt.Digit)
		}
	case render.EventKeyUp:
		if !a.sticky {
			a.controller.KeyUp(evt.Digit)
		}
	case render.EventZoom:
		win := a.session.window
		win.SetZoom(win.Zoom() + evt.ZoomDelta*a.cfg.ZoomStep)
	}
	return false
}

func (a *App) togglePlayback() {
	if a.playbackBroken {
		a.log.Print("playback unavailable")
		return
	}
	var err error
	if a.controller.TogglePlay() {
		err = a.tracker.Play()
	} else {
		err = a.tracker.Pause()
	}
	if err != nil {
		a.controller.TogglePlay() // revert
		if errors.Is(err, playback.ErrUnavailable) {
			a.playbackBroken = true
		}
		a.log.Printf("playback: %v", err)
	}
}

func (a *App) step() error {
	a.profiler.beginFrame()

	s := a.session
	width, height := a.surface.Size()
	start, end := s.window.Visible()
	factor := a.controller.Factor()

	points, err := s.cache.Window(start, end, factor)
	if err != nil {
		// Contract violation: the window and controller clamp their inputs.
		return fmt.Errorf("app: reduce window: %w", err)
	}
	a.profiler.markSection("reduce")

	visible, err := s.buffer.Range(start, end)
	if err != nil {
		return fmt.Errorf("app: visible range: %w", err)
	}
	summary := s.stats.Analyze(visible)
	a.profiler.markSection("stats")

	playhead := a.tracker.Position()
	showPlayhead := a.tracker.State() != playback.StateStopped

	frame := render.BuildFrame(s.window, points, playhead, showPlayhead, a.cfg.Scheme, width, height)
	frame.Status = a.statusText(factor, summary.Peak, summary.DominantHz)

	if err := a.surface.Present(frame); err != nil {
		return err
	}
	a.profiler.markSection("present")

	if a.cfg.OnFrame != nil {
		a.cfg.OnFrame(frame, a.snapshot())
	}
	a.profiler.endFrame()
	return nil
}

func (a *App) statusText(factor int, peak, dominantHz float64) string {
	resolution := "Full resolution"
	if factor > 1 {
		resolution = fmt.Sprintf("Downscale: %d", factor)
	}
	pos := time.Duration(float64(a.tracker.Position()) / float64(a.session.buffer.SampleRate()) * float64(time.Second))
	return fmt.Sprintf("%s | %s | %s | zoom=%d | %s/%s | peak=%.2f %.0fHz | P=Play/Pause",
		a.session.name, a.tracker.State(), resolution, a.session.window.Zoom(),
		pos.Round(time.Second), a.session.buffer.Duration().Round(time.Second),
		peak, dominantHz)
}

// startKeyboardListener reads terminal keys into the event channel. Plain
// terminals deliver presses only, so digit keys act as sticky taps here.
func (a *App) startKeyboardListener(ctx context.Context) {
	if err := keyboard.Open(); err != nil {
		a.log.Printf("keyboard input disabled: %v", err)
		a.keyEvents = nil
		return
	}
	a.sticky = true

	events := make(chan render.Event, 16)
	a.keyEvents = events

	go func() {
		<-ctx.Done()
		_ = keyboard.Close()
	}()

	go func() {
		defer close(events)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}

			var out render.Event
			switch {
			case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || char == 'q' || char == 'Q':
				events <- render.Event{Kind: render.EventQuit}
				return
			case char == 'p' || char == 'P' || key == keyboard.KeySpace:
				out = render.Event{Kind: render.EventToggle}
			case char >= '0' && char <= '9':
				out = render.Event{Kind: render.EventKeyDown, Digit: int(char - '0')}
			case char == '+' || char == '=' || key == keyboard.KeyArrowUp:
				out = render.Event{Kind: render.EventZoom, ZoomDelta: -1}
			case char == '-' || key == keyboard.KeyArrowDown:
				out = render.Event{Kind: render.EventZoom, ZoomDelta: 1}
			default:
				continue
			}

			select {
			case events <- out:
			default:
			}
		}
	}()
}

// Snapshot is the state summary the web mirror serves.
type Snapshot struct {
	File          string  `json:"file"`
	State         string  `json:"state"`
	Factor        int     `json:"factor"`
	Zoom          int     `json:"zoom"`
	PositionSec   float64 `json:"positionSec"`
	DurationSec   float64 `json:"durationSec"`
	CachedFactors []int   `json:"cachedFactors"`
}

func (a *App) snapshot() Snapshot {
	s := a.session
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		File:          s.name,
		State:         a.tracker.State().String(),
		Factor:        a.controller.Factor(),
		Zoom:          s.window.Zoom(),
		PositionSec:   float64(a.tracker.Position()) / float64(s.buffer.SampleRate()),
		DurationSec:   s.buffer.Duration().Seconds(),
		CachedFactors: s.cache.Cached(),
	}
}
