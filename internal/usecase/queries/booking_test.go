//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/pkg/clock"
	"bus-seat-booking/internal/pkg/errs"
	"bus-seat-booking/internal/usecase/queries"
	"bus-seat-booking/tests/common/builder"
	queriesmock "bus-seat-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC)

func newBookingQueries(t *testing.T) (*queriesmock.MockBookingReadStore, queries.BookingQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	return store, queries.NewBookingQueries(store, clock.NewMockClock(now))
}

func TestBookingQueries_GetByID(t *testing.T) {
	owner := uuid.New()
	view := builder.NewBookingBuilder().WithUserID(owner).BuildView(now)

	testCases := []struct {
		name     string
		actor    user.Actor
		storeErr error
		errIs    error
	}{
		{name: "owner", actor: user.NewActor(owner, user.RoleViewer)},
		{name: "admin", actor: user.NewActor(uuid.New(), user.RoleAdmin)},
		{name: "operator is not an owner", actor: user.NewActor(uuid.New(), user.RoleOperator), errIs: errs.ErrBookingNotFound},
		{name: "stranger", actor: user.NewActor(uuid.New(), user.RoleViewer), errIs: errs.ErrBookingNotFound},
		{
			name:     "missing row",
			actor:    user.NewActor(owner, user.RoleViewer),
			storeErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
			errIs:    errs.ErrBookingNotFound,
		},
		{
			name:     "storage failure",
			actor:    user.NewActor(owner, user.RoleViewer),
			storeErr: infra.WrapRepoErr("failed", errors.New("boom")),
			errIs:    errs.ErrStorage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q := newBookingQueries(t)
			if tc.storeErr != nil {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := q.GetByID(context.Background(), tc.actor, view.ID)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListMine(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name        string
		limit       int
		offset      int
		wantLimit   int32
		wantOffset  int32
		rows        int
		total       int64
		wantHasMore bool
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 10, wantOffset: 0, rows: 10, total: 25, wantHasMore: true},
		{name: "limit is capped", limit: 500, offset: 0, wantLimit: 100, wantOffset: 0, rows: 25, total: 25, wantHasMore: false},
		{name: "negative offset resets", limit: 5, offset: -3, wantLimit: 5, wantOffset: 0, rows: 5, total: 5, wantHasMore: false},
		{name: "last page", limit: 10, offset: 20, wantLimit: 10, wantOffset: 20, rows: 5, total: 25, wantHasMore: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q := newBookingQueries(t)
			rows := make([]*queries.BookingView, tc.rows)
			for i := range rows {
				rows[i] = builder.NewBookingBuilder().WithUserID(userID).BuildView(now)
			}
			store.EXPECT().ListByUser(gomock.Any(), userID, tc.wantLimit, tc.wantOffset).Return(rows, nil)
			store.EXPECT().CountByUser(gomock.Any(), userID).Return(tc.total, nil)

			page, err := q.ListMine(context.Background(), userID, tc.limit, tc.offset)
			require.NoError(t, err)
			assert.Len(t, page.Bookings, tc.rows)
			assert.Equal(t, tc.total, page.Total)
			assert.Equal(t, int(tc.wantLimit), page.Limit)
			assert.Equal(t, tc.wantHasMore, page.HasMore)
		})
	}
}

func TestBookingQueries_ListUpcoming(t *testing.T) {
	store, q := newBookingQueries(t)
	userID := uuid.New()
	store.EXPECT().ListUpcoming(gomock.Any(), userID, schedule.MustParseJourneyDate("2026-11-01")).
		Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView(now)}, nil)

	got, err := q.ListUpcoming(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
