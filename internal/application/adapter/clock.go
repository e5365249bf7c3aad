package adapter

import "time"

// Clock supplies the current time to use cases that stamp sessions, keeping
// timer arithmetic deterministic in tests.
type Clock interface {
	Now() time.Time
}
