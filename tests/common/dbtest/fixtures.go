//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seeded catalog rows. IDs are stable because ResetDB restarts identities.
const (
	SeededScheduleID         int64 = 1 // active, 40 seats
	SeededInactiveScheduleID int64 = 2 // inactive, 40 seats
	SeededSmallScheduleID    int64 = 3 // active, 2 seats
)

// CreateSchedule inserts a bus and one schedule on it and returns the schedule id.
func CreateSchedule(t *testing.T, db DBLike, busNumber string, totalSeats int, active bool) int64 {
	t.Helper()

	ctx := context.Background()
	var busID int64
	err := db.QueryRow(ctx,
		"INSERT INTO buses (bus_number, total_seats) VALUES ($1, $2) RETURNING id",
		busNumber, totalSeats).Scan(&busID)
	require.NoError(t, err)

	var scheduleID int64
	err = db.QueryRow(ctx, `
		INSERT INTO bus_schedules (bus_id, departure_time, arrival_time, base_fare, is_active)
		VALUES ($1, now() + interval '1 day', now() + interval '1 day 6 hours', 600, $2)
		RETURNING id`, busID, active).Scan(&scheduleID)
	require.NoError(t, err)
	return scheduleID
}

// SeedReferenceData inserts the catalog the tests book against.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO buses (bus_number, bus_type, total_seats) VALUES
		    ('KA-01-F-1001', 'sleeper', 40),
		    ('KA-01-F-1002', 'seater', 40),
		    ('KA-01-F-1003', 'seater', 2)
		ON CONFLICT (bus_number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO bus_schedules (bus_id, departure_time, arrival_time, base_fare, is_active)
		SELECT b.id, now() + interval '1 day', now() + interval '1 day 6 hours', 600, b.bus_number <> 'KA-01-F-1002'
		FROM buses b
		WHERE b.bus_number IN ('KA-01-F-1001', 'KA-01-F-1002', 'KA-01-F-1003')
		ORDER BY b.id;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// CountRows is a test-only escape hatch for asserting persisted side effects.
func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
