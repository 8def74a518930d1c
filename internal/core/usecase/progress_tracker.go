package usecase

import (
	"fmt"
	"sync"
)

// ProgressTracker is a serialized counter for completed detail-fetch
// attempts. All mutation goes through the mutex; increments are never
// lost under concurrent fetch tasks.
type ProgressTracker struct {
	mu    sync.Mutex
	count int
	total int
}

// NewProgressTracker creates a tracker for the given total.
func NewProgressTracker(total int) *ProgressTracker {
	return &ProgressTracker{total: total}
}

// Increment registers one completed attempt (success or failure alike)
// and returns the updated count alongside the total.
func (p *ProgressTracker) Increment() (count, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	return p.count, p.total
}

// progressLabel renders "count/total" for log fields.
func progressLabel(count, total int) string {
	return fmt.Sprintf("%d/%d", count, total)
}

// Progress returns the current count/total without mutating.
func (p *ProgressTracker) Progress() (count, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count, p.total
}
