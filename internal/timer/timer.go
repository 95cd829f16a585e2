// ABOUTME: Workout stopwatch that persists elapsed seconds on every tick.
// ABOUTME: A new Timer resumes from the last persisted value.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// Persister stores the elapsed seconds between runs.
type Persister interface {
	TimerSeconds() int
	SetTimerSeconds(int) bool
	ClearTimer() bool
}

// TickSource returns a tick channel and a function that stops it.
type TickSource func() (<-chan time.Time, func())

// SecondTicks ticks once per second.
func SecondTicks() (<-chan time.Time, func()) {
	t := time.NewTicker(time.Second)
	return t.C, t.Stop
}

// Timer counts seconds while running.
type Timer struct {
	mu      sync.Mutex
	store   Persister
	ticks   TickSource
	onTick  func(int)
	seconds int
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a Timer.
type Option func(*Timer)

// WithTickSource replaces the one-second ticker.
func WithTickSource(src TickSource) Option {
	return func(t *Timer) { t.ticks = src }
}

// WithOnTick is called with the elapsed seconds after each tick is persisted.
func WithOnTick(fn func(int)) Option {
	return func(t *Timer) { t.onTick = fn }
}

// New creates a paused timer starting from the persisted value.
func New(store Persister, opts ...Option) *Timer {
	t := &Timer{store: store, ticks: SecondTicks, seconds: store.TimerSeconds()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins counting. Starting a running timer does nothing.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	ch, stopTicks := t.ticks()
	go t.run(ch, stopTicks, t.stop, t.done)
}

func (t *Timer) run(ch <-chan time.Time, stopTicks func(), stop, done chan struct{}) {
	defer close(done)
	defer stopTicks()
	for {
		select {
		case <-stop:
			return
		case <-ch:
			t.mu.Lock()
			t.seconds++
			s := t.seconds
			t.store.SetTimerSeconds(s)
			t.mu.Unlock()
			if t.onTick != nil {
				t.onTick(s)
			}
		}
	}
}

// Pause stops counting and waits for the tick loop to exit.
func (t *Timer) Pause() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Reset pauses the timer and clears the elapsed time.
func (t *Timer) Reset() {
	t.Pause()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seconds = 0
	t.store.ClearTimer()
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Seconds returns the elapsed seconds.
func (t *Timer) Seconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seconds
}

// Format renders seconds as MM:SS, or H:MM:SS past an hour.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
