//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/tests/common/builder"
	sharedmock "bus-seat-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeaseQueries_Inspect(t *testing.T) {
	t.Run("returns live leases sorted by seat with remaining time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockLeaseStore(ctrl)
		q := queries.NewLeaseQueries(store, clock.NewMockClock(now))

		b2 := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) { b.Seat = "B2" }).BuildDomain(now.Add(-time.Minute))
		a1 := builder.NewLeaseBuilder().BuildDomain(now.Add(-9 * time.Minute))
		expired := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) { b.Seat = "C3" }).BuildDomain(now.Add(-lease.TTL))

		store.EXPECT().SweepExpired(gomock.Any(), gomock.Any(), now).Return(int64(1), nil)
		store.EXPECT().ListLive(gomock.Any(), int64(1), gomock.Any(), now).Return([]lease.Lease{b2, a1, expired}, nil)

		views, err := q.Inspect(context.Background(), 1, "2026-11-02")
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "A1", views[0].SeatNumber)
		assert.Equal(t, int64(60), views[0].SecondsRemaining)
		assert.Equal(t, "B2", views[1].SeatNumber)
		assert.Equal(t, int64(540), views[1].SecondsRemaining)
	})

	t.Run("bad input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewLeaseQueries(sharedmock.NewMockLeaseStore(ctrl), clock.NewMockClock(now))

		_, err := q.Inspect(context.Background(), 1, "2026/11/02")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		_, err = q.Inspect(context.Background(), 0, "2026-11-02")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockLeaseStore(ctrl)
		q := queries.NewLeaseQueries(store, clock.NewMockClock(now))
		store.EXPECT().SweepExpired(gomock.Any(), gomock.Any(), now).Return(int64(0), errors.New("down"))
		store.EXPECT().ListLive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		_, err := q.Inspect(context.Background(), 1, "2026-11-02")
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}
