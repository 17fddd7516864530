//go:build unit

package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/pkg/clock"
	commandsmock "bus-seat-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLeaseSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	leases := commandsmock.NewMockLeaseCommands(ctrl)
	sweeper := NewLeaseSweeper(leases, nil)

	leases.EXPECT().Sweep(ctx).Return(int64(3), nil)
	assert.NoError(t, sweeper.RunOnce(ctx))

	leases.EXPECT().Sweep(ctx).Return(int64(0), errors.New("store down"))
	assert.Error(t, sweeper.RunOnce(ctx))
}

func TestDepartedCompleter_RunOnce(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bookings := commandsmock.NewMockBookingCommands(ctrl)
	clk := clock.NewMockClock(time.Date(2026, 11, 3, 23, 59, 0, 0, time.UTC))
	completer := NewDepartedCompleter(bookings, clk, nil)

	bookings.EXPECT().CompleteDeparted(ctx, schedule.MustParseJourneyDate("2026-11-03")).Return(2, nil)
	assert.NoError(t, completer.RunOnce(ctx))

	bookings.EXPECT().CompleteDeparted(ctx, gomock.Any()).Return(0, errors.New("db down"))
	assert.Error(t, completer.RunOnce(ctx))
}

type countingJob struct {
	ticks atomic.Int32
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) RunOnce(context.Context) error {
	if j.ticks.Add(1)%2 == 0 {
		return errors.New("every other tick fails")
	}
	return nil
}

func TestRunner_KeepsTickingAfterFailure(t *testing.T) {
	job := &countingJob{}
	r := NewRunner(job, 5*time.Millisecond, nil)
	r.Start()

	assert.Eventually(t, func() bool { return job.ticks.Load() >= 4 }, time.Second, 5*time.Millisecond)
	r.Stop()

	stopped := job.ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, job.ticks.Load())
}
