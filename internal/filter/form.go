// Package filter turns user-entered filter values into the query string
// a listing endpoint receives. Edits are debounced on a single shared
// trailing-edge timer per form, so a burst of keystrokes yields exactly
// one downstream query carrying the final value.
package filter

import (
	"net/url"
	"sync"
	"time"
)

// DefaultDelay is the debounce window applied when none is given.
const DefaultDelay = 300 * time.Millisecond

// Form holds the current filter values and notifies emit with a
// snapshot once edits settle. The snapshot doubles as the persisted
// view state: feeding it back through Restore reproduces the listing.
type Form struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	values url.Values
	emit   func(url.Values)
	// gen invalidates in-flight timer callbacks: a fired timer that
	// lost the race against Submit/Reset/Stop sees a newer generation
	// and emits nothing.
	gen uint64
}

// New creates a form emitting debounced snapshots to emit.
func New(delay time.Duration, emit func(url.Values)) *Form {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if emit == nil {
		emit = func(url.Values) {}
	}
	return &Form{delay: delay, values: url.Values{}, emit: emit}
}

// Set records a field edit and arms the shared timer. Setting a field
// to "" removes it, so a cleared input drops its key from the query.
func (f *Form) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLocked(key, value)
	f.armLocked()
}

// SetAll replaces one multi-valued key (e.g. organization_ids).
func (f *Form) SetAll(key string, values []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(values) == 0 {
		f.values.Del(key)
	} else {
		f.values[key] = append([]string(nil), values...)
	}
	f.armLocked()
}

// Submit bypasses the debounce: any armed timer is dropped and the
// current snapshot is emitted at once. Bound to the Enter key.
func (f *Form) Submit() {
	f.mu.Lock()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	snapshot := f.snapshotLocked()
	emit := f.emit
	f.mu.Unlock()

	emit(snapshot)
}

// Reset clears every filter and immediately emits the empty query,
// bringing the listing back to its base path.
func (f *Form) Reset() {
	f.mu.Lock()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.values = url.Values{}
	emit := f.emit
	f.mu.Unlock()

	emit(url.Values{})
}

// Restore loads a previously emitted snapshot without triggering a new
// emission; the caller refetches with it directly. Any armed timer is
// dropped so pending edits cannot emit over the restored state.
func (f *Form) Restore(values url.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.values = url.Values{}
	for key, vals := range values {
		f.values[key] = append([]string(nil), vals...)
	}
}

// Snapshot returns a copy of the current values.
func (f *Form) Snapshot() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Encode renders the current values as a query string.
func (f *Form) Encode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Encode()
}

// Stop drops any armed timer. Called when the owning page unmounts so
// no emission fires into a torn-down view.
func (f *Form) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) setLocked(key, value string) {
	if value == "" {
		f.values.Del(key)
		return
	}
	f.values.Set(key, value)
}

// armLocked resets the shared timer; only the last edit in a burst
// survives to emission. Stop on an already-fired timer cannot recall
// its callback, so the callback re-checks the generation under the
// lock before emitting.
func (f *Form) armLocked() {
	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.timer = time.AfterFunc(f.delay, func() {
		f.mu.Lock()
		if f.gen != gen {
			f.mu.Unlock()
			return
		}
		f.timer = nil
		snapshot := f.snapshotLocked()
		emit := f.emit
		f.mu.Unlock()

		emit(snapshot)
	})
}

func (f *Form) snapshotLocked() url.Values {
	out := url.Values{}
	for key, vals := range f.values {
		out[key] = append([]string(nil), vals...)
	}
	return out
}
