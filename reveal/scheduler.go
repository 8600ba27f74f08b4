package reveal

import "time"

// Timer is a pending deferred call
type Timer interface {
	Stop() bool
}

// Scheduler defers calls. The controller only ever uses it for delayed reveals.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler runs deferred calls on wall-clock timers
var RealScheduler Scheduler = realScheduler{}
