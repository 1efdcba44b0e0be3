package onboarding

import (
	"fmt"
	"sync"
	"time"
)

// SaveStatus is what the client renders next to an auto-save target:
// a spinner while saving, "Saved" with a timestamp, or "Save failed".
type SaveStatus struct {
	Saving      bool       `json:"saving"`
	Dirty       bool       `json:"dirty"`
	LastSavedAt *time.Time `json:"lastSavedAt,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type flushFunc func(value any) error

// combineFunc folds a new pending value into the previous one. A nil
// combine means plain replacement (latest value wins).
type combineFunc func(prev, next any) any

// saveCoordinator debounces writes for one target. After the last change a
// quiet window must elapse before one flush fires, carrying only the most
// recent value. Flushes never overlap: a change arriving mid-flight is held
// and re-armed once the flight lands. Failures are surfaced, not retried;
// the next change re-arms the window naturally.
type saveCoordinator struct {
	mu      sync.Mutex
	cond    *sync.Cond
	window  time.Duration
	flush   flushFunc
	combine combineFunc

	timer      *time.Timer
	pending    any
	hasPending bool
	inFlight   bool

	lastSavedAt time.Time
	hasSaved    bool
	lastErr     error
}

func newSaveCoordinator(window time.Duration, flush flushFunc, combine combineFunc) *saveCoordinator {
	c := &saveCoordinator{
		window:  window,
		flush:   flush,
		combine: combine,
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// submit records a changed value and re-arms the debounce window.
func (c *saveCoordinator) submit(value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasPending && c.combine != nil {
		value = c.combine(c.pending, value)
	}
	c.pending = value
	c.hasPending = true

	if c.inFlight {
		// Not pipelined; the landing flight re-arms for us.
		return
	}
	c.armLocked()
}

func (c *saveCoordinator) armLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.window, c.fire)
}

func (c *saveCoordinator) fire() {
	c.mu.Lock()
	if !c.hasPending || c.inFlight {
		c.mu.Unlock()
		return
	}
	value := c.pending
	c.pending = nil
	c.hasPending = false
	c.inFlight = true
	c.mu.Unlock()

	err := c.flush(value)

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		c.lastErr = err
	} else {
		c.lastErr = nil
		c.lastSavedAt = time.Now()
		c.hasSaved = true
	}
	if c.hasPending {
		c.armLocked()
	}
	c.cond.Broadcast()
	c.mu.Unlock()
}

// flushNow synchronously drains the coordinator: it waits out any in-flight
// call, then flushes whatever is pending. Used on final submit.
func (c *saveCoordinator) flushNow() error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	for c.inFlight {
		c.cond.Wait()
	}
	if !c.hasPending {
		err := c.lastErr
		c.mu.Unlock()
		return err
	}
	value := c.pending
	c.pending = nil
	c.hasPending = false
	c.inFlight = true
	c.mu.Unlock()

	err := c.flush(value)

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		c.lastErr = err
	} else {
		c.lastErr = nil
		c.lastSavedAt = time.Now()
		c.hasSaved = true
	}
	c.cond.Broadcast()
	c.mu.Unlock()
	return err
}

func (c *saveCoordinator) status() SaveStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := SaveStatus{
		Saving: c.inFlight,
		Dirty:  c.hasPending,
	}
	if c.hasSaved {
		t := c.lastSavedAt
		st.LastSavedAt = &t
	}
	if c.lastErr != nil {
		st.Error = c.lastErr.Error()
	}
	return st
}

func (c *saveCoordinator) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = nil
	c.hasPending = false
}

// Auto-save target names.
const (
	TargetColors       = "colors"
	TargetArrangements = "arrangements"
)

// autoSaveRegistry holds one coordinator per (event, target) pair.
type autoSaveRegistry struct {
	mu     sync.Mutex
	coords map[string]*saveCoordinator
}

func targetKey(eventID int64, target string) string {
	return fmt.Sprintf("%s:%d", target, eventID)
}

func (r *autoSaveRegistry) getOrCreate(key string, create func() *saveCoordinator) *saveCoordinator {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.coords == nil {
		r.coords = make(map[string]*saveCoordinator)
	}
	if c, ok := r.coords[key]; ok {
		return c
	}
	c := create()
	r.coords[key] = c
	return c
}

func (r *autoSaveRegistry) get(key string) *saveCoordinator {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coords[key]
}

// statuses reports every known target for an event.
func (r *autoSaveRegistry) statuses(eventID int64) map[string]SaveStatus {
	out := make(map[string]SaveStatus)
	for _, target := range []string{TargetColors, TargetArrangements} {
		if c := r.get(targetKey(eventID, target)); c != nil {
			out[target] = c.status()
		}
	}
	return out
}

// flushAll synchronously drains every target for an event, returning the
// first error encountered.
func (r *autoSaveRegistry) flushAll(eventID int64) error {
	var firstErr error
	for _, target := range []string{TargetColors, TargetArrangements} {
		if c := r.get(targetKey(eventID, target)); c != nil {
			if err := c.flushNow(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// drop stops and forgets every target for an event.
func (r *autoSaveRegistry) drop(eventID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, target := range []string{TargetColors, TargetArrangements} {
		key := targetKey(eventID, target)
		if c, ok := r.coords[key]; ok {
			c.stop()
			delete(r.coords, key)
		}
	}
}
