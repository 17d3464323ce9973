package search

import (
	"sync"
	"time"

	"github.com/prashant-tajane/qkart-frontend/internal/metrics"
)

// Debouncer collapses a rapid burst of calls into at most one, firing only
// after the window elapses with no new call. One reusable timer per instance:
// each new call stops and restarts the pending timer.
type Debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn after the window, cancelling any pending schedule.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Cancel stops any pending fire.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Dispatcher owns one search box's query stream. Keystrokes go in through
// Input; the single query that survives the quiet window comes out on
// Queries. Superseded intermediate queries are discarded, never queued.
// There is no minimum-length gate: even a one-character or empty query is
// dispatched once the window elapses.
type Dispatcher struct {
	debouncer *Debouncer

	mu     sync.Mutex
	latest string

	queries chan string
}

func NewDispatcher(window time.Duration) *Dispatcher {
	return &Dispatcher{
		debouncer: NewDebouncer(window),
		queries:   make(chan string, 1),
	}
}

// Input records the latest query text and restarts the quiet-window timer.
func (d *Dispatcher) Input(query string) {
	d.mu.Lock()
	d.latest = query
	d.mu.Unlock()

	d.debouncer.Trigger(d.fire)
}

func (d *Dispatcher) fire() {
	d.mu.Lock()
	query := d.latest
	d.mu.Unlock()

	metrics.SearchesDispatchedTotal.Inc()

	// Replace an undelivered pending query rather than queueing behind it.
	select {
	case <-d.queries:
	default:
	}
	d.queries <- query
}

// Queries delivers the surviving query after each quiet window.
func (d *Dispatcher) Queries() <-chan string {
	return d.queries
}

// Cancel drops any pending fire, e.g. when the search box is torn down.
func (d *Dispatcher) Cancel() {
	d.debouncer.Cancel()
}
