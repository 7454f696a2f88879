package ports

import "time"

// CancelFunc cancels a scheduled task. Calling it after the task ran, or more
// than once, is a no-op.
type CancelFunc func()

// Scheduler runs one-shot tasks after a delay. A task never runs on the
// goroutine that called After.
type Scheduler interface {
	After(delay time.Duration, task func()) (CancelFunc, error)
}
