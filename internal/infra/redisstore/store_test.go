//go:build unit

package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
	}{
		{"int64", int64(1762000000000), 1762000000000},
		{"int", 42, 42},
		{"float64 truncates", float64(7.9), 7},
		{"numeric string", "1762000000000", 1762000000000},
		{"garbage string", "soon", 0},
		{"nil", nil, 0},
		{"bytes are not parsed", []byte("12"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asInt64(tt.in))
		})
	}
}

func TestDecodeLease(t *testing.T) {
	key := lease.Key{ScheduleID: 7, JourneyDate: schedule.MustParseJourneyDate("2026-11-02"), Seat: "A1"}
	userID := uuid.New()
	locked := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	expires := locked.Add(10 * time.Minute)

	t.Run("HMGET reply", func(t *testing.T) {
		l := decodeLease(key, []any{"sess-1", userID.String(), "1762000000000", "1762000600000"})
		assert.Equal(t, key, l.Key)
		assert.Equal(t, "sess-1", l.SessionID)
		assert.Equal(t, userID, l.UserID)
		assert.Equal(t, time.UnixMilli(1762000000000).UTC(), l.LockedAt)
		assert.Equal(t, time.UnixMilli(1762000600000).UTC(), l.ExpiresAt)
	})

	t.Run("script reply with integers", func(t *testing.T) {
		l := decodeLease(key, []any{[]byte("sess-2"), userID.String(), locked.UnixMilli(), expires.UnixMilli()})
		assert.Equal(t, "sess-2", l.SessionID)
		assert.True(t, l.LockedAt.Equal(locked))
		assert.True(t, l.ExpiresAt.Equal(expires))
		assert.True(t, l.IsLive(locked))
		assert.False(t, l.IsLive(expires))
	})

	t.Run("anonymous holder and missing fields", func(t *testing.T) {
		l := decodeLease(key, []any{"sess-3", "", nil, nil})
		assert.Equal(t, uuid.Nil, l.UserID)
		assert.Equal(t, time.UnixMilli(0).UTC(), l.ExpiresAt)
		assert.False(t, l.IsLive(locked))
	})
}

func TestStore_KeyLayout(t *testing.T) {
	s := New(nil, "")
	date := schedule.MustParseJourneyDate("2026-11-02")

	assert.Equal(t, "seatlease:{7:2026-11-02}:idx", s.indexKey(7, date))
	assert.Equal(t, "seatlease:{7:2026-11-02}:seat:", s.seatPrefix(7, date))

	// the full sweep derives the seat prefix from a scanned index key
	idx := s.indexKey(7, date)
	assert.Equal(t, s.seatPrefix(7, date), idx[:len(idx)-len("idx")]+"seat:")
}

type fakeCluster struct {
	redis.UniversalClient
	nodes   []*redis.Client
	visited []string
}

func (f *fakeCluster) ForEachMaster(ctx context.Context, fn func(ctx context.Context, client *redis.Client) error) error {
	var errs []error
	for _, node := range f.nodes {
		f.visited = append(f.visited, node.Options().Addr)
		if err := fn(ctx, node); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func TestStore_SweepExpiredScansEveryMaster(t *testing.T) {
	unreachable := func(addr string) *redis.Client {
		c := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
		t.Cleanup(func() { _ = c.Close() })
		return c
	}
	cluster := &fakeCluster{nodes: []*redis.Client{unreachable("127.0.0.1:1"), unreachable("127.0.0.1:2")}}
	s := New(cluster, "")

	n, err := s.SweepExpired(context.Background(), nil, time.Now())

	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))
	assert.Equal(t, []string{"127.0.0.1:1", "127.0.0.1:2"}, cluster.visited)
	// each node was scanned through its own connection
	assert.Contains(t, err.Error(), "127.0.0.1:1")
	assert.Contains(t, err.Error(), "127.0.0.1:2")
}
