// Package input tracks which downsample digit is held and whether playback
// is toggled on. It is a pure state machine driven from the UI event loop;
// the surfaces translate their native key events into calls here.
package input

// Controller holds the transient downsample override and the play/pause
// toggle. Digits 1-9 select a reduction factor while held; releasing the
// active digit reverts to full resolution. When several digits are held the
// most recently pressed one wins, and releasing a non-active digit is a
// no-op until it becomes the most recent survivor.
type Controller struct {
	held    []int // pressed digits, oldest first
	playing bool
}

// NewController returns a controller in the paused, no-override state.
func NewController() *Controller {
	return &Controller{}
}

// KeyDown records a digit press. Digits outside 1-9 are ignored.
func (c *Controller) KeyDown(digit int) {
	if digit < 1 || digit > 9 {
		return
	}
	// Re-pressing a held digit moves it to the top of the stack.
	c.remove(digit)
	c.held = append(c.held, digit)
}

// KeyUp records a digit release. Releasing a digit that is not held is a
// no-op.
func (c *Controller) KeyUp(digit int) {
	c.remove(digit)
}

// Tap toggles a sticky override for surfaces that cannot observe key
// releases (plain terminals): tapping a digit activates it, tapping the
// active digit or 0 clears it.
func (c *Controller) Tap(digit int) {
	if digit == 0 || c.Factor() == digit {
		c.held = c.held[:0]
		return
	}
	c.KeyDown(digit)
}

// Factor returns the active reduction factor: the most recently pressed held
// digit, or 1 when nothing is held.
func (c *Controller) Factor() int {
	if len(c.held) == 0 {
		return 1
	}
	return c.held[len(c.held)-1]
}

// TogglePlay flips between playing and paused and returns the new state.
// Stopped is not reachable from here; only an explicit stop or file close
// stops playback.
func (c *Controller) TogglePlay() bool {
	c.playing = !c.playing
	return c.playing
}

// Playing reports the toggle state.
func (c *Controller) Playing() bool {
	return c.playing
}

func (c *Controller) remove(digit int) {
	for i, d := range c.held {
		if d == digit {
			c.held = append(c.held[:i], c.held[i+1:]...)
			return
		}
	}
}
