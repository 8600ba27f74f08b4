package reveal

import (
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"salon-site-server/logx"
)

func init() {
	logx.SetOutput(io.Discard)
}

type fakeTarget struct {
	id      string
	mu      sync.Mutex
	classes map[string]bool
	applied int
}

func newFakeTarget(id string) *fakeTarget {
	return &fakeTarget{id: id, classes: make(map[string]bool)}
}

func (t *fakeTarget) ID() string { return t.id }

func (t *fakeTarget) Apply(_ State, add, remove []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.applied++
	for _, c := range remove {
		delete(t.classes, c)
	}
	for _, c := range add {
		t.classes[c] = true
	}
}

func (t *fakeTarget) Classes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.classes))
	for c := range t.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (t *fakeTarget) Applied() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.applied
}

type fakeSource struct {
	mu        sync.Mutex
	observers map[string]func(Entry)
	err       error
}

func newFakeSource() *fakeSource {
	return &fakeSource{observers: make(map[string]func(Entry))}
}

func (s *fakeSource) Observe(id string, notify func(Entry)) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers[id] = notify
	return nil
}

func (s *fakeSource) Unobserve(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
}

func (s *fakeSource) Observing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.observers[id]
	return ok
}

// Emit delivers an entry to id's observer, as a viewport event would
func (s *fakeSource) Emit(id string, entry Entry) bool {
	s.mu.Lock()
	notify, ok := s.observers[id]
	s.mu.Unlock()
	if ok {
		notify(entry)
	}
	return ok
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock and fires due timers. Stopped timers still
// run their callback when the test asks for it via fireStopped, which
// models a timer that already fired concurrently with Stop.
func (s *fakeScheduler) Advance(d time.Duration, fireStopped bool) {
	s.now += d
	for _, t := range s.timers {
		if t.fired || t.at > s.now {
			continue
		}
		if t.stopped && !fireStopped {
			continue
		}
		t.fired = true
		t.f()
	}
}

var (
	viewport  = Rect{Width: 1280, Height: 800}
	onScreen  = Entry{Bounds: Rect{Y: 100, Width: 400, Height: 300}, Root: viewport}
	offScreen = Entry{Bounds: Rect{Y: 2000, Width: 400, Height: 300}, Root: viewport}
)

func hiddenState() []string {
	return []string{"duration-700", "opacity-0", "transition-all", "translate-y-8"}
}

func TestAttach_AppliesHiddenState(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	target := newFakeTarget("hero")

	sub := c.Attach(target, DefaultOptions())

	assert.Equal(t, hiddenState(), target.Classes())
	assert.Equal(t, Hidden, sub.State())
	assert.True(t, source.Observing("hero"))
	assert.Equal(t, 1, c.Len())
}

func TestReveal_OnFirstIntersection(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	target := newFakeTarget("services")
	sub := c.Attach(target, DefaultOptions())

	source.Emit("services", onScreen)

	assert.Equal(t, Revealed, sub.State())
	assert.Equal(t, []string{"animate-fade-in", "duration-700", "transition-all"}, target.Classes())
	assert.False(t, source.Observing("services"), "observation stops after the reveal")
}

func TestReveal_NeverIntersectingStaysHidden(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	target := newFakeTarget("contact")
	sub := c.Attach(target, DefaultOptions())

	for i := 0; i < 10; i++ {
		source.Emit("contact", offScreen)
	}
	assert.Equal(t, Hidden, sub.State())
	assert.Equal(t, hiddenState(), target.Classes())

	assert.NotPanics(t, sub.Detach)
	assert.NotPanics(t, sub.Detach)
	assert.False(t, source.Observing("contact"))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, hiddenState(), target.Classes())
}

func TestReveal_BelowThresholdDoesNotTrigger(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	target := newFakeTarget("plans")
	sub := c.Attach(target, Options{ThresholdFraction: 0.5})

	// 25% visible with no root margin
	source.Emit("plans", Entry{Bounds: Rect{Y: 725, Width: 100, Height: 300}, Root: viewport})
	assert.Equal(t, Hidden, sub.State())

	source.Emit("plans", Entry{Bounds: Rect{Y: 500, Width: 100, Height: 300}, Root: viewport})
	assert.Equal(t, Revealed, sub.State())
}

func TestReveal_RootMarginExpandsTrigger(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	target := newFakeTarget("reviews")
	sub := c.Attach(target, DefaultOptions())

	// Starts 20px below the fold; the 50px margin brings 30px of 100px in view.
	source.Emit("reviews", Entry{Bounds: Rect{Y: 820, Width: 100, Height: 100}, Root: viewport})
	assert.Equal(t, Revealed, sub.State())
}

func TestReveal_WithDelay(t *testing.T) {
	source := newFakeSource()
	scheduler := &fakeScheduler{}
	c := NewController(source, scheduler)
	target := newFakeTarget("hero-title")
	sub := c.Attach(target, Options{ThresholdFraction: 0.1, RootMarginPx: 50, Delay: 200 * time.Millisecond})

	source.Emit("hero-title", onScreen)
	assert.Equal(t, Hidden, sub.State(), "nothing changes before the delay elapses")
	assert.False(t, source.Observing("hero-title"))

	scheduler.Advance(199*time.Millisecond, false)
	assert.Equal(t, Hidden, sub.State())

	scheduler.Advance(time.Millisecond, false)
	assert.Equal(t, Revealed, sub.State())
	assert.Equal(t, []string{"duration-700", "opacity-100", "transition-all", "translate-y-0"}, target.Classes())
}

func TestReveal_DetachBeforeDelayedRevealIsNoOp(t *testing.T) {
	source := newFakeSource()
	scheduler := &fakeScheduler{}
	c := NewController(source, scheduler)
	target := newFakeTarget("hero-button")
	sub := c.Attach(target, Options{ThresholdFraction: 0.1, RootMarginPx: 50, Delay: 400 * time.Millisecond})

	source.Emit("hero-button", onScreen)
	scheduler.Advance(100*time.Millisecond, false)
	applied := target.Applied()

	sub.Detach()
	require.True(t, scheduler.timers[0].stopped, "pending reveal is cancelled")

	// Even if the timer had already been dispatched, the callback must not touch the element.
	scheduler.Advance(300*time.Millisecond, true)

	assert.Equal(t, applied, target.Applied(), "no visual mutation after detach")
	assert.Equal(t, Hidden, sub.State())
	assert.Equal(t, hiddenState(), target.Classes())
}

func TestReveal_SecondTriggerIsNoOp(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	target := newFakeTarget("memberships")
	sub := c.Attach(target, DefaultOptions())

	var notify func(Entry)
	source.mu.Lock()
	notify = source.observers["memberships"]
	source.mu.Unlock()

	notify(onScreen)
	applied := target.Applied()
	notify(onScreen)
	notify(offScreen)

	assert.Equal(t, applied, target.Applied())
	assert.Equal(t, Revealed, sub.State())
}

func TestReveal_ElementsAreIndependent(t *testing.T) {
	source := newFakeSource()
	c := NewController(source, &fakeScheduler{})
	a := newFakeTarget("a")
	b := newFakeTarget("b")
	subA := c.Attach(a, DefaultOptions())
	subB := c.Attach(b, DefaultOptions())

	source.Emit("b", onScreen)

	assert.Equal(t, Hidden, subA.State())
	assert.Equal(t, Revealed, subB.State())
	assert.True(t, source.Observing("a"))
}

func TestReveal_ReattachReplacesPreviousElement(t *testing.T) {
	source := newFakeSource()
	scheduler := &fakeScheduler{}
	c := NewController(source, scheduler)
	first := newFakeTarget("hero")
	old := c.Attach(first, Options{Delay: time.Second})
	source.Emit("hero", onScreen)

	second := newFakeTarget("hero")
	current := c.Attach(second, DefaultOptions())
	scheduler.Advance(2*time.Second, false)

	assert.Equal(t, Hidden, old.State(), "the replaced element's pending reveal was cancelled")
	old.Detach()
	assert.True(t, source.Observing("hero"), "detaching a stale subscription leaves the new one observed")

	source.Emit("hero", onScreen)
	assert.Equal(t, Revealed, current.State())
}

func TestReveal_WithoutObservationPrimitive(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		c := NewController(nil, nil)
		target := newFakeTarget("hero")
		var sub *Subscription
		assert.NotPanics(t, func() { sub = c.Attach(target, DefaultOptions()) })
		assert.Equal(t, Hidden, sub.State())
		assert.Equal(t, hiddenState(), target.Classes())
		assert.NotPanics(t, sub.Detach)
	})

	t.Run("observe fails", func(t *testing.T) {
		source := newFakeSource()
		source.err = errors.New("unsupported")
		c := NewController(source, nil)
		target := newFakeTarget("hero")
		sub := c.Attach(target, DefaultOptions())
		assert.Equal(t, Hidden, sub.State())
		assert.NotPanics(t, sub.Detach)
	})
}

func TestController_CloseCancelsEverything(t *testing.T) {
	source := newFakeSource()
	scheduler := &fakeScheduler{}
	c := NewController(source, scheduler)
	for _, id := range []string{"a", "b", "c"} {
		c.Attach(newFakeTarget(id), Options{Delay: time.Second})
	}
	source.Emit("a", onScreen)

	c.Close()

	assert.Equal(t, 0, c.Len())
	assert.False(t, source.Observing("b"))
	assert.True(t, scheduler.timers[0].stopped)
	_, ok := c.Lookup("a")
	assert.False(t, ok)
}

func TestController_RealTimersDoNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := newFakeSource()
	c := NewController(source, RealScheduler)

	revealed := newFakeTarget("revealed")
	detached := newFakeTarget("detached")
	subRevealed := c.Attach(revealed, Options{ThresholdFraction: 0.1, Delay: 10 * time.Millisecond})
	subDetached := c.Attach(detached, Options{ThresholdFraction: 0.1, Delay: 50 * time.Millisecond})

	source.Emit("revealed", onScreen)
	source.Emit("detached", onScreen)
	subDetached.Detach()
	applied := detached.Applied()

	require.Eventually(t, func() bool { return subRevealed.State() == Revealed }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, applied, detached.Applied())
	assert.Equal(t, Hidden, subDetached.State())
}

func TestOptionsNormalized(t *testing.T) {
	o := Options{ThresholdFraction: 3, Delay: -time.Second}.normalized()
	assert.Equal(t, 1.0, o.ThresholdFraction)
	assert.Equal(t, time.Duration(0), o.Delay)

	o = Options{ThresholdFraction: -1}.normalized()
	assert.Equal(t, 0.0, o.ThresholdFraction)
}
