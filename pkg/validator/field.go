package validator

import (
	"sync"
	"time"
)

const defaultWindow = 300 * time.Millisecond

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithWindow sets the debounce window. Non-positive values keep the
// default of 300ms.
func WithWindow(d time.Duration) FieldOption {
	return func(f *Field) {
		if d > 0 {
			f.window = d
		}
	}
}

// WithFieldMessage overrides the pattern's default failure message.
func WithFieldMessage(message string) FieldOption {
	return func(f *Field) {
		f.message = message
	}
}

// WithNotify registers a callback invoked after each completed debounced
// validation. The callback runs on the timer goroutine.
func WithNotify(fn func(Result)) FieldOption {
	return func(f *Field) {
		f.notify = fn
	}
}

// Field validates a single input as the user types, debouncing calls so
// only the newest value inside the window is ever validated. Each Field
// owns its state exclusively; at most one timer is pending at a time.
type Field struct {
	pattern Pattern
	window  time.Duration
	message string
	notify  func(Result)

	mu         sync.Mutex
	timer      *time.Timer
	gen        uint64
	validating bool
	last       Result
}

// NewField creates a live validator bound to one pattern. It panics if the
// pattern is unknown, so a misconfigured field fails during development.
func NewField(p Pattern, opts ...FieldOption) *Field {
	lookup(p)

	f := &Field{
		pattern: p,
		window:  defaultWindow,
		last:    Result{Valid: true}, // optimistic until first validation
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Validate schedules validation of raw after the debounce window. A call
// made while a timer is pending cancels it, so intermediate keystrokes
// never produce a result.
func (f *Field) Validate(raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.validating = true

	f.timer = time.AfterFunc(f.window, func() {
		f.mu.Lock()
		// A Stop that loses the race with the timer firing still must not
		// publish a stale result.
		if gen != f.gen {
			f.mu.Unlock()
			return
		}
		res := ValidateWithMessage(raw, f.pattern, f.message)
		f.last = res
		f.validating = false
		f.timer = nil
		notify := f.notify
		f.mu.Unlock()

		if notify != nil {
			notify(res)
		}
	})
}

// Reset cancels any pending validation and restores the optimistic initial
// state. Canceling an already-fired timer is a safe no-op.
func (f *Field) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
	f.validating = false
	f.last = Result{Valid: true}
}

// Result returns the last completed validation result.
func (f *Field) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Validating reports whether a validation is pending behind the debounce
// window.
func (f *Field) Validating() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validating
}
