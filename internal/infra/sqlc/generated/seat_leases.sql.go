const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
9const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
0const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
5const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
3const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
3const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
5const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
7const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
<const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
>const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
/const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
*const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
<const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
*const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
!const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
0const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
<const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
3const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
*const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
!const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
0const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
3const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
*const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
>const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
3const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
zconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
*const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
[const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
]const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
!const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
[const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
]const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
vconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
kconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
&const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
;const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
!const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
;const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
!const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
-const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
1const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
2const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
3const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
$const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
[const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
]const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
[const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
]const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
_const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
"const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
`const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
*const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Qconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Pconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
6const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
4const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
:const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
xconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
hconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Jconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
yconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
gconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
mconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
bconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
!const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
=const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
{const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
0const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
	const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
uconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
.const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Rconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
oconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
wconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
sconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
Aconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
fconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
cconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
tconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
econst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
dconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
(const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
)const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
,const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
 const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
nconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
iconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
lconst releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
}const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}

const releaseSeatLeases = `-- name: ReleaseSeatLeases :one
WITH released AS (
    DELETE FROM seat_leases
    WHERE schedule_id = $1
      AND journey_date = $2
      AND session_id = $3
      AND seat_number = ANY($4::text[])
    RETURNING expires_at
)
SELECT count(*) FILTER (WHERE expires_at > $5)::bigint AS live_count
FROM released
`

type ReleaseSeatLeasesParams struct {
	ScheduleID  int64              `json:"schedule_id"`
	JourneyDate pgtype.Date        `json:"journey_date"`
	SessionID   string             `json:"session_id"`
	SeatNumbers []string           `json:"seat_numbers"`
	Now         pgtype.Timestamptz `json:"now"`
}

// Expired rows are deleted too but only live ones are counted.
func (q *Queries) ReleaseSeatLeases(ctx context.Context, db DBTX, arg ReleaseSeatLeasesParams) (int64, error) {
	row := db.QueryRow(ctx, releaseSeatLeases,
		arg.ScheduleID,
		arg.JourneyDate,
		arg.SessionID,
		arg.SeatNumbers,
		arg.Now,
	)
	var live_count int64
	err := row.Scan(&live_count)
	return live_count, err
}
