//go:build unit

package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra/memstore"
	"bus-seat-booking/internal/usecase/shared"
	"bus-seat-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

func leaseFor(seat, session string, at time.Time) lease.Lease {
	return builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.Seat = seat
		b.SessionID = session
	}).BuildDomain(at)
}

func TestStore_Acquire(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	outcome, holder, err := store.Acquire(ctx, leaseFor("A1", "sess-1", now), now)
	require.NoError(t, err)
	assert.Equal(t, lease.OutcomeCreated, outcome)
	assert.Nil(t, holder)

	outcome, _, err = store.Acquire(ctx, leaseFor("A1", "sess-1", now.Add(time.Minute)), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, lease.OutcomeRenewed, outcome)

	outcome, holder, err = store.Acquire(ctx, leaseFor("A1", "sess-2", now.Add(2*time.Minute)), now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, lease.OutcomeHeldByOther, outcome)
	require.NotNil(t, holder)
	assert.Equal(t, "sess-1", holder.SessionID)
	assert.Equal(t, now.Add(time.Minute+lease.TTL), holder.ExpiresAt)

	// the renewed lease is gone once its TTL passes
	later := now.Add(time.Minute + lease.TTL)
	outcome, _, err = store.Acquire(ctx, leaseFor("A1", "sess-2", later), later)
	require.NoError(t, err)
	assert.Equal(t, lease.OutcomeCreated, outcome)
}

func TestStore_ConcurrentAcquire(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	const contenders = 64
	var created atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			outcome, _, err := store.Acquire(ctx, leaseFor("B7", fmt.Sprintf("sess-%d", i), now), now)
			if err == nil && outcome == lease.OutcomeCreated {
				created.Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, 1, store.Len())
}

func TestStore_ReleaseAndList(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	date := schedule.MustParseJourneyDate("2026-11-02")

	for _, l := range []lease.Lease{
		leaseFor("C3", "sess-1", now),
		leaseFor("A1", "sess-1", now),
		leaseFor("B2", "sess-2", now),
		leaseFor("D4", "sess-1", now.Add(-lease.TTL)),
	} {
		_, _, err := store.Acquire(ctx, l, l.LockedAt)
		require.NoError(t, err)
	}

	live, err := store.ListLive(ctx, 1, date, now)
	require.NoError(t, err)
	seats := make([]schedule.SeatNumber, len(live))
	for i, l := range live {
		seats[i] = l.Seat
	}
	assert.Equal(t, []schedule.SeatNumber{"A1", "B2", "C3"}, seats)

	n, err := store.Release(ctx, 1, date, []schedule.SeatNumber{"A1", "B2", "Z9"}, "sess-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.SweepExpired(ctx, &shared.SweepScope{ScheduleID: 2, JourneyDate: date}, now)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.SweepExpired(ctx, nil, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 2, store.Len())
}

func TestStore_ReleaseDoesNotCountExpired(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	date := schedule.MustParseJourneyDate("2026-11-02")

	stale := leaseFor("A1", "sess-1", now.Add(-2*lease.TTL))
	_, _, err := store.Acquire(ctx, stale, stale.LockedAt)
	require.NoError(t, err)
	fresh := leaseFor("A2", "sess-1", now)
	_, _, err = store.Acquire(ctx, fresh, now)
	require.NoError(t, err)

	n, err := store.Release(ctx, 1, date, []schedule.SeatNumber{"A1", "A2"}, "sess-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, store.Len())

	_, _, err = store.Acquire(ctx, stale, stale.LockedAt)
	require.NoError(t, err)
	n, err = store.Release(ctx, 1, date, []schedule.SeatNumber{"A1"}, "sess-1", now)
	require.NoError(t, err)
	assert.Zero(t, n)
}
