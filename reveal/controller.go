package reveal

import (
	"math"
	"sync"
	"time"

	"salon-site-server/logx"
)

// State is the presentation state of one observed element
type State int

const (
	Hidden State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "hidden"
}

// Class sets applied by the controller
var (
	HiddenClasses     = []string{"opacity-0", "translate-y-8"}
	TransitionClasses = []string{"transition-all", "duration-700"}
	FadeInClasses     = []string{"animate-fade-in"}
	StaggeredClasses  = []string{"opacity-100", "translate-y-0"}
)

// Target is an element whose classes the controller toggles.
// Apply is called with the controller lock held and must not call back into it.
type Target interface {
	ID() string
	Apply(state State, add, remove []string)
}

// Entry is one intersection observation for an element
type Entry struct {
	Bounds Rect
	Root   Rect
}

// Source is the viewport-observation primitive. It delivers entries for
// observed ids until Unobserve is called. Observe must not invoke notify
// synchronously.
type Source interface {
	Observe(id string, notify func(Entry)) error
	Unobserve(id string)
}

// Options tune when an element is revealed
type Options struct {
	ThresholdFraction float64
	RootMarginPx      float64
	Delay             time.Duration
}

// DefaultOptions reveals at 10% visibility with a 50px margin and no delay
func DefaultOptions() Options {
	return Options{ThresholdFraction: 0.1, RootMarginPx: 50}
}

func (o Options) normalized() Options {
	if math.IsNaN(o.ThresholdFraction) || o.ThresholdFraction < 0 {
		o.ThresholdFraction = 0
	}
	if o.ThresholdFraction > 1 {
		o.ThresholdFraction = 1
	}
	if o.Delay < 0 {
		o.Delay = 0
	}
	return o
}

type element struct {
	target    Target
	opts      Options
	state     State
	attached  bool
	observing bool
	timer     Timer
}

// Controller runs the Hidden -> Revealed state machine for every attached element.
type Controller struct {
	source    Source
	scheduler Scheduler

	mu       sync.Mutex
	elements map[string]*element
}

// NewController creates a controller. A nil source leaves every element hidden.
func NewController(source Source, scheduler Scheduler) *Controller {
	if scheduler == nil {
		scheduler = RealScheduler
	}
	return &Controller{
		source:    source,
		scheduler: scheduler,
		elements:  make(map[string]*element),
	}
}

// Subscription is the handle returned by Attach
type Subscription struct {
	c  *Controller
	el *element
}

// Attach puts target into the hidden state and starts observing it.
// Attaching an id that is already attached detaches the previous element first.
func (c *Controller) Attach(target Target, opts Options) *Subscription {
	el := &element{
		target:   target,
		opts:     opts.normalized(),
		state:    Hidden,
		attached: true,
	}
	id := target.ID()

	c.mu.Lock()
	defer c.mu.Unlock()

	if previous, ok := c.elements[id]; ok {
		c.detachLocked(previous)
	}
	c.elements[id] = el

	target.Apply(Hidden, append(append([]string{}, HiddenClasses...), TransitionClasses...), nil)

	if c.source == nil {
		logx.Debug().Str("element", id).Msg("Viewport observation unavailable, element stays hidden")
		return &Subscription{c: c, el: el}
	}
	if err := c.source.Observe(id, func(entry Entry) { c.handle(el, entry) }); err != nil {
		logx.Debug().Err(err).Str("element", id).Msg("Viewport observation failed, element stays hidden")
		return &Subscription{c: c, el: el}
	}
	el.observing = true

	return &Subscription{c: c, el: el}
}

func (c *Controller) handle(el *element, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !el.attached || !el.observing || el.state != Hidden {
		return
	}
	ratio, touching := IntersectionRatio(entry.Bounds, entry.Root, el.opts.RootMarginPx)
	if !touching || ratio < el.opts.ThresholdFraction {
		return
	}

	el.observing = false
	c.source.Unobserve(el.target.ID())

	if el.opts.Delay <= 0 {
		c.revealLocked(el)
		return
	}
	el.timer = c.scheduler.AfterFunc(el.opts.Delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		el.timer = nil
		if !el.attached || el.state != Hidden {
			return
		}
		c.revealLocked(el)
	})
}

func (c *Controller) revealLocked(el *element) {
	add := FadeInClasses
	if el.opts.Delay > 0 {
		add = StaggeredClasses
	}
	el.state = Revealed
	el.target.Apply(Revealed, append([]string{}, add...), append([]string{}, HiddenClasses...))
}

func (c *Controller) detachLocked(el *element) {
	if !el.attached {
		return
	}
	el.attached = false
	id := el.target.ID()
	if el.observing {
		el.observing = false
		c.source.Unobserve(id)
	}
	if el.timer != nil {
		el.timer.Stop()
		el.timer = nil
	}
	if c.elements[id] == el {
		delete(c.elements, id)
	}
}

// Detach stops observing the element and cancels a pending delayed reveal.
// It is safe to call more than once.
func (s *Subscription) Detach() {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	s.c.detachLocked(s.el)
}

// State reports the element's current presentation state
func (s *Subscription) State() State {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	return s.el.state
}

// Lookup returns the subscription of an attached element
func (c *Controller) Lookup(id string) (*Subscription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.elements[id]
	if !ok {
		return nil, false
	}
	return &Subscription{c: c, el: el}, true
}

// Len is the number of attached elements
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.elements)
}

// Close detaches every element
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, el := range c.elements {
		c.detachLocked(el)
	}
}
