package metric

import (
	"fmt"
	"sync"
)

// Histogram counts observations in a fixed number of buckets numbered from zero
type Histogram struct {
	counts []int
	total  int
}

// NewHistogram returns a histogram with n buckets
func NewHistogram(n int) (*Histogram, error) {
	if n <= 0 {
		return nil, fmt.Errorf("histogram must have at least one bucket, got %d", n)
	}
	return &Histogram{counts: make([]int, n)}, nil
}

// Add records one observation in bucket b.  Buckets outside the histogram are an error.
func (h *Histogram) Add(b int) error {
	if b < 0 || b >= len(h.counts) {
		return fmt.Errorf("bucket %d outside histogram of %d buckets", b, len(h.counts))
	}
	h.counts[b]++
	h.total++
	return nil
}

// Counts returns a copy of the bucket counts
func (h *Histogram) Counts() []int {
	out := make([]int, len(h.counts))
	copy(out, h.counts)
	return out
}

// Total returns the number of observations
func (h *Histogram) Total() int {
	return h.total
}

// Reset clears all buckets
func (h *Histogram) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.total = 0
}

// Counter is a monotonically increasing counter safe for concurrent use
type Counter struct {
	mu    sync.RWMutex
	value int
}

// Value returns the current value of the counter
func (c *Counter) Value() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Add will increase the current count by i
func (c *Counter) Add(i uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += int(i)
}

// Reset sets the value of the counter to zero
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = 0
}
