// Package tracker owns the session's soul state and the side effects of
// recording a kill: the transient cue and the toast notification.
package tracker

import (
	"sync"
	"time"

	"soul-tracker/pkg/i18n"
	"soul-tracker/pkg/log"
	"soul-tracker/pkg/souls"
)

// CueDuration is how long the cue stays on after a kill.
const CueDuration = 2 * time.Second

// Scheduler runs f once after d. Implementations decide which goroutine f
// runs on; the UI marshals it back onto the main goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func())

func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) { fn(d, f) }

// TimerScheduler schedules with time.AfterFunc.
var TimerScheduler = SchedulerFunc(func(d time.Duration, f func()) { time.AfterFunc(d, f) })

// Notifier shows a one-shot message to the user.
type Notifier interface {
	Notify(title, body string)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithScheduler overrides the scheduler used to clear the cue.
func WithScheduler(s Scheduler) Option {
	return func(t *Tracker) { t.sched = s }
}

// Tracker holds the soul state. RecordKill is the only mutation.
type Tracker struct {
	mu        sync.Mutex
	state     souls.State
	cue       bool
	listeners []func()

	now      func() time.Time
	sched    Scheduler
	printer  *i18n.Printer
	notifier Notifier
}

// New creates a Tracker with a zeroed state. notifier may be nil.
func New(printer *i18n.Printer, notifier Notifier, opts ...Option) *Tracker {
	t := &Tracker{
		state:    souls.New(),
		now:      time.Now,
		sched:    TimerScheduler,
		printer:  printer,
		notifier: notifier,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnChange registers fn to run after every state or cue change.
func (t *Tracker) OnChange(fn func()) {
	t.mu.Lock()
	t.listeners = append(t.listeners, fn)
	t.mu.Unlock()
}

// RecordKill records a kill of the given kind and returns the new history
// head. Unknown kinds are ignored.
func (t *Tracker) RecordKill(kind souls.Kind) souls.KillEvent {
	if !kind.Valid() {
		log.Warn("ignoring kill of unknown kind", "kind", int(kind))
		return souls.KillEvent{}
	}

	t.mu.Lock()
	next, ev := t.state.Record(kind, t.now())
	t.state = next
	t.cue = true
	t.mu.Unlock()

	// Earlier timers are left running; clearing twice is harmless.
	t.sched.AfterFunc(CueDuration, t.clearCue)

	log.Debug("kill recorded", "kind", kind, "souls_gained", ev.SoulsGained, "total_souls", next.TotalSouls)

	if t.notifier != nil && t.printer != nil {
		t.notifier.Notify(t.printer.ToastTitle(kind), t.printer.ToastBody(ev.SoulsGained))
	}
	t.changed()
	return ev
}

func (t *Tracker) clearCue() {
	t.mu.Lock()
	t.cue = false
	t.mu.Unlock()
	t.changed()
}

func (t *Tracker) changed() {
	t.mu.Lock()
	listeners := append([]func(){}, t.listeners...)
	t.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() souls.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// CueActive reports whether the post-kill cue is showing.
func (t *Tracker) CueActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cue
}
