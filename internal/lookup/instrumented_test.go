package lookup_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rodrigoasouza93/brdocs/internal/lookup"
	"github.com/rodrigoasouza93/brdocs/internal/metrics"
	"github.com/rodrigoasouza93/brdocs/internal/validator/mocks"
)

func TestInstrumented(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockPostalLookup(ctrl)
	m := metrics.New(prometheus.NewRegistry())
	transportErr := &lookup.Error{Kind: lookup.KindTimeout, Message: "request timeout"}

	gomock.InOrder(
		next.EXPECT().Exists(gomock.Any(), "01001000").Return(true, nil),
		next.EXPECT().Exists(gomock.Any(), "99999999").Return(false, nil),
		next.EXPECT().Exists(gomock.Any(), "20040002").Return(false, transportErr),
	)

	inst := lookup.Instrument(next, m)
	ctx := context.Background()

	found, err := inst.Exists(ctx, "01001000")
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = inst.Exists(ctx, "99999999")
	assert.NoError(t, err)
	assert.False(t, found)

	_, err = inst.Exists(ctx, "20040002")
	assert.Same(t, transportErr, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupRequests.WithLabelValues(metrics.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupRequests.WithLabelValues(metrics.OutcomeAbsent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupRequests.WithLabelValues(metrics.OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LookupDuration))
}
