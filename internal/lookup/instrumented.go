package lookup

import (
	"context"
	"time"

	"github.com/rodrigoasouza93/brdocs/internal/metrics"
	"github.com/rodrigoasouza93/brdocs/internal/validator"
)

// Instrumented records outcome and latency of every lookup. Results and errors
// pass through untouched.
type Instrumented struct {
	next    validator.PostalLookup
	metrics *metrics.Metrics
}

var _ validator.PostalLookup = (*Instrumented)(nil)

func Instrument(next validator.PostalLookup, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (i *Instrumented) Exists(ctx context.Context, code string) (bool, error) {
	start := time.Now()
	found, err := i.next.Exists(ctx, code)
	i.metrics.LookupDuration.Observe(time.Since(start).Seconds())

	outcome := metrics.OutcomeAbsent
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case found:
		outcome = metrics.OutcomeFound
	}
	i.metrics.LookupRequests.WithLabelValues(outcome).Inc()
	return found, err
}
