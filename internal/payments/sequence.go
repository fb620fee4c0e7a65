package payments

import "sync"

// SequenceCounter caches the next sequence number to sign with.
type SequenceCounter struct {
	mu          sync.Mutex
	next        uint32
	initialized bool
}

// Get returns the next sequence and whether the counter is initialized.
func (c *SequenceCounter) Get() (uint32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next, c.initialized
}

// Set initializes or resets the counter.
func (c *SequenceCounter) Set(next uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = next
	c.initialized = true
}

// Increment consumes the current sequence.
func (c *SequenceCounter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
}

// Invalidate forces the next cycle to bootstrap the counter again.
func (c *SequenceCounter) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = 0
	c.initialized = false
}
