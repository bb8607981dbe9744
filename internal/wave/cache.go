package wave

import (
	"sort"

	"github.com/google/uuid"
)

// Cache memoizes full-buffer reductions per factor. Entries are derived
// deterministically from the buffer and never mutated, so they can be handed
// out by reference. A cache is bound to exactly one buffer generation;
// loading a new file means building a new cache, never reusing this one.
//
// All methods are called from the UI event loop only.
type Cache struct {
	buf     *Buffer
	entries map[int][]Point
}

// NewCache creates an empty cache bound to buf.
func NewCache(buf *Buffer) *Cache {
	return &Cache{
		buf:     buf,
		entries: make(map[int][]Point, MaxFactor),
	}
}

// Generation returns the generation of the buffer this cache serves.
func (c *Cache) Generation() uuid.UUID {
	return c.buf.Generation()
}

// Full returns the reduced full-range point sequence for factor, computing
// it on first request and serving the memoized slice afterwards.
func (c *Cache) Full(factor int) ([]Point, error) {
	if factor < 1 || factor > MaxFactor {
		return nil, ErrInvalidFactor
	}
	if points, ok := c.entries[factor]; ok {
		return points, nil
	}
	points, err := Reduce(c.buf.All(), 0, factor)
	if err != nil {
		return nil, err
	}
	c.entries[factor] = points
	return points, nil
}

// Window returns the points covering the sample range [start, end) at the
// given factor. It slices the cached full-range reduction on bucket
// boundaries instead of re-reducing raw samples, so per-frame cost is
// independent of the buffer size once the factor has been cached. The
// returned points may extend up to factor-1 samples past either edge of the
// requested range since buckets are fixed to the absolute sample grid.
func (c *Cache) Window(start, end, factor int) ([]Point, error) {
	if start < 0 || start > end || end > c.buf.Count() {
		return nil, ErrInvalidRange
	}
	full, err := c.Full(factor)
	if err != nil {
		return nil, err
	}
	lo := start / factor
	hi := (end + factor - 1) / factor
	if hi > len(full) {
		hi = len(full)
	}
	return full[lo:hi], nil
}

// Cached reports which factors have been populated, mainly for the status
// endpoint of the web mirror.
func (c *Cache) Cached() []int {
	factors := make([]int, 0, len(c.entries))
	for f := range c.entries {
		factors = append(factors, f)
	}
	sort.Ints(factors)
	return factors
}
