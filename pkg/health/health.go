package health

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Status of a single check or of the whole report.
type Status string

const (
	StatusUp       Status = "up"
	StatusDown     Status = "down"
	StatusDegraded Status = "degraded"
)

// Indicator is the outcome of one check.
type Indicator struct {
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
	Used      uint64 `json:"used,omitempty"`
	Threshold uint64 `json:"threshold,omitempty"`
}

// Check probes one resource.
type Check func(ctx context.Context) Indicator

// Result is the aggregated report. Info holds the checks that are up, Error
// the ones that are down or degraded, Details all of them.
type Result struct {
	Status  Status               `json:"status"`
	Info    map[string]Indicator `json:"info"`
	Error   map[string]Indicator `json:"error"`
	Details map[string]Indicator `json:"details"`
}

// Reporter runs named checks.
type Reporter struct {
	mu     sync.RWMutex
	names  []string
	checks map[string]Check
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{checks: make(map[string]Check)}
}

// Default returns a reporter with memory_heap and memory_rss checks at
// DefaultThreshold.
func Default() *Reporter {
	return NewReporter().
		Register("memory_heap", HeapCheck(DefaultThreshold)).
		Register("memory_rss", RSSCheck(DefaultThreshold))
}

// Register adds or replaces a named check.
func (r *Reporter) Register(name string, check Check) *Reporter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checks[name]; !ok {
		r.names = append(r.names, name)
	}
	r.checks[name] = check
	return r
}

// Names returns the registered check names in registration order.
func (r *Reporter) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// Check runs every registered check concurrently and aggregates the result.
// A check that panics is reported as down.
func (r *Reporter) Check(ctx context.Context) Result {
	r.mu.RLock()
	names := slices.Clone(r.names)
	checks := make([]Check, len(names))
	for i, name := range names {
		checks[i] = r.checks[name]
	}
	r.mu.RUnlock()

	indicators := make([]Indicator, len(names))
	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			indicators[i] = run(ctx, check)
			return nil
		})
	}
	_ = g.Wait()

	res := Result{
		Status:  StatusUp,
		Info:    make(map[string]Indicator),
		Error:   make(map[string]Indicator),
		Details: make(map[string]Indicator, len(names)),
	}
	for i, name := range names {
		ind := indicators[i]
		res.Details[name] = ind
		if ind.Status == StatusUp {
			res.Info[name] = ind
			continue
		}
		res.Error[name] = ind
		res.Status = worst(res.Status, ind.Status)
	}
	return res
}

func run(ctx context.Context, check Check) (ind Indicator) {
	defer func() {
		if rec := recover(); rec != nil {
			ind = Indicator{Status: StatusDown, Message: fmt.Sprintf("check panicked: %v", rec)}
		}
	}()
	if err := ctx.Err(); err != nil {
		return Indicator{Status: StatusDown, Message: err.Error()}
	}
	return check(ctx)
}

func worst(a, b Status) Status {
	rank := func(s Status) int {
		switch s {
		case StatusDown:
			return 2
		case StatusDegraded:
			return 1
		case StatusUp:
			return 0
		default:
			return 2
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}
