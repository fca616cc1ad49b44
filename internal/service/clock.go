package service

import "time"

// Clock supplies the wall-clock time used for expiry math. Injected so tests
// can pin the instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }
