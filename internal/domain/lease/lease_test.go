//go:build unit

package lease_test

import (
	"testing"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testKey() lease.Key {
	return lease.Key{
		ScheduleID:  7,
		JourneyDate: schedule.MustParseJourneyDate("2026-11-02"),
		Seat:        "A1",
	}
}

func TestNew_StampsExpiryFromTTL(t *testing.T) {
	now := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)

	l := lease.New(testKey(), "sess-1", uuid.New(), now, 0)

	assert.Equal(t, now, l.LockedAt)
	assert.Equal(t, now.Add(lease.TTL), l.ExpiresAt)
	assert.True(t, l.HeldBy("sess-1"))
	assert.False(t, l.HeldBy("sess-2"))
}

func TestLease_IsLive(t *testing.T) {
	now := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	l := lease.New(testKey(), "sess-1", uuid.New(), now, lease.TTL)

	testCases := []struct {
		name string
		at   time.Time
		live bool
	}{
		{name: "just locked", at: now, live: true},
		{name: "one second before expiry", at: now.Add(lease.TTL - time.Second), live: true},
		{name: "exactly at expiry", at: now.Add(lease.TTL), live: false},
		{name: "after expiry", at: now.Add(lease.TTL + time.Minute), live: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.live, l.IsLive(tc.at))
		})
	}
}

func TestLease_SecondsRemaining(t *testing.T) {
	now := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	l := lease.New(testKey(), "sess-1", uuid.New(), now, lease.TTL)

	assert.Equal(t, int64(600), l.SecondsRemaining(now))
	assert.Equal(t, int64(1), l.SecondsRemaining(now.Add(lease.TTL-100*time.Millisecond)))
	assert.Equal(t, int64(0), l.SecondsRemaining(now.Add(lease.TTL)))
}

func TestLockedByOther_CarriesRemainingTime(t *testing.T) {
	now := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	holder := lease.New(testKey(), "sess-1", uuid.New(), now, lease.TTL)

	d := lease.LockedByOther("A1", holder, now.Add(4*time.Minute))

	assert.Equal(t, lease.ReasonLockedByOther, d.Reason)
	assert.Equal(t, int64(360), d.SecondsRemaining)
	assert.Contains(t, d.Message, "2026-11-01T10:10:00Z")
}

func TestOutcome_Granted(t *testing.T) {
	assert.True(t, lease.OutcomeCreated.Granted())
	assert.True(t, lease.OutcomeRenewed.Granted())
	assert.False(t, lease.OutcomeHeldByOther.Granted())
}
