// Package adapters provides implementations of application adapter
// interfaces backed by external systems.
package adapters

import (
	"time"

	"github.com/study-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time.
func (systemClock) Now() time.Time {
	return time.Now()
}
