package input

import "testing"

func TestFactorDefaultsToFullResolution(t *testing.T) {
	c := NewController()
	if got := c.Factor(); got != 1 {
		t.Fatalf("factor=%d want 1", got)
	}
}

func TestHoldAndReleaseDigit(t *testing.T) {
	c := NewController()
	c.KeyDown(3)
	if got := c.Factor(); got != 3 {
		t.Fatalf("after press: factor=%d want 3", got)
	}
	c.KeyUp(3)
	if got := c.Factor(); got != 1 {
		t.Fatalf("after release: factor=%d want 1", got)
	}
}

func TestMostRecentDigitWins(t *testing.T) {
	c := NewController()
	c.KeyDown(2)
	c.KeyDown(7)
	if got := c.Factor(); got != 7 {
		t.Fatalf("factor=%d want 7", got)
	}
	// Releasing the newer key falls back to the older held one.
	c.KeyUp(7)
	if got := c.Factor(); got != 2 {
		t.Fatalf("after releasing 7: factor=%d want 2", got)
	}
}

func TestReleasingNonActiveKeyIsNoOp(t *testing.T) {
	c := NewController()
	c.KeyDown(4)
	c.KeyUp(9)
	if got := c.Factor(); got != 4 {
		t.Fatalf("factor=%d want 4", got)
	}
	c.KeyDown(5)
	c.KeyUp(4) // non-active but held: removed from the stack silently
	if got := c.Factor(); got != 5 {
		t.Fatalf("factor=%d want 5", got)
	}
	c.KeyUp(5)
	if got := c.Factor(); got != 1 {
		t.Fatalf("factor=%d want 1", got)
	}
}

func TestIgnoresDigitsOutsideRange(t *testing.T) {
	c := NewController()
	c.KeyDown(0)
	c.KeyDown(10)
	if got := c.Factor(); got != 1 {
		t.Fatalf("factor=%d want 1", got)
	}
}

func TestTapTogglesStickyOverride(t *testing.T) {
	c := NewController()
	c.Tap(3)
	if got := c.Factor(); got != 3 {
		t.Fatalf("factor=%d want 3", got)
	}
	c.Tap(3)
	if got := c.Factor(); got != 1 {
		t.Fatalf("tap same digit: factor=%d want 1", got)
	}
	c.Tap(6)
	c.Tap(0)
	if got := c.Factor(); got != 1 {
		t.Fatalf("tap 0: factor=%d want 1", got)
	}
}

func TestTogglePlay(t *testing.T) {
	c := NewController()
	if c.Playing() {
		t.Fatal("new controller is playing")
	}
	if !c.TogglePlay() {
		t.Fatal("first toggle should start playback")
	}
	if c.TogglePlay() {
		t.Fatal("second toggle should pause")
	}
}

func TestOverrideDoesNotTouchPlayback(t *testing.T) {
	c := NewController()
	c.TogglePlay()
	c.KeyDown(3)
	c.KeyUp(3)
	if !c.Playing() {
		t.Fatal("digit hold changed playback state")
	}
}
