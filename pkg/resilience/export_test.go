package resilience

import "time"

// SetClock подменяет часы выключателя в тестах.
func (b *Breaker) SetClock(now func() time.Time) {
	b.now = now
}
