package wave

import (
	"errors"
	"testing"
)

func newTestCache(t *testing.T, n int) *Cache {
	t.Helper()
	buf, err := NewBuffer(rampSamples(n), 44_100)
	if err != nil {
		t.Fatal(err)
	}
	return NewCache(buf)
}

func TestCacheFullIsLazyAndMemoized(t *testing.T) {
	c := newTestCache(t, 5_000)
	if got := len(c.Cached()); got != 0 {
		t.Fatalf("fresh cache has %d entries", got)
	}

	first, err := c.Full(4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Full(4)
	if err != nil {
		t.Fatal(err)
	}
	if &first[0] != &second[0] {
		t.Error("second Full(4) recomputed instead of serving the cached slice")
	}
	if got := len(c.Cached()); got != 1 {
		t.Fatalf("cache has %d entries after one factor, want 1", got)
	}
}

func TestCacheFullDeterministic(t *testing.T) {
	buf, err := NewBuffer(rampSamples(3_000), 44_100)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := NewCache(buf).Full(3)
	b, _ := NewCache(buf).Full(3)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCacheWindowCoversRequestedRange(t *testing.T) {
	c := newTestCache(t, 10_000)
	points, err := c.Window(1_000, 2_000, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) == 0 {
		t.Fatal("empty window")
	}
	// Bucket alignment may widen the window by less than one factor on
	// either side, never narrow it.
	if points[0].X > 1_000 {
		t.Errorf("window starts at %d, after requested start", points[0].X)
	}
	if points[0].X <= 1_000-3 {
		t.Errorf("window starts at %d, more than one bucket early", points[0].X)
	}
	last := points[len(points)-1]
	if last.X+3 < 2_000 {
		t.Errorf("window ends at bucket %d, before requested end", last.X)
	}
}

func TestCacheWindowRejectsBadRange(t *testing.T) {
	c := newTestCache(t, 100)
	if _, err := c.Window(0, 101, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("overrun range: got %v", err)
	}
	if _, err := c.Window(50, 40, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted range: got %v", err)
	}
}

func TestNewBufferGetsFreshCache(t *testing.T) {
	// Switching files means a new buffer and a new cache; nothing from the
	// old cache may survive into the new one.
	old := newTestCache(t, 1_000)
	if _, err := old.Full(2); err != nil {
		t.Fatal(err)
	}
	if _, err := old.Full(5); err != nil {
		t.Fatal(err)
	}

	fresh := newTestCache(t, 1_000)
	if got := len(fresh.Cached()); got != 0 {
		t.Fatalf("new cache inherited %d entries", got)
	}
	if fresh.Generation() == old.Generation() {
		t.Fatal("new cache shares the old buffer generation")
	}
}
