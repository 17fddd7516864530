package redisstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"bus-seat-booking/internal/domain/lease"
	"bus-seat-booking/internal/domain/schedule"
	"bus-seat-booking/internal/infra"
	"bus-seat-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Each lease is a hash; each (schedule, date) has a sorted set of seats scored by
// expiry in unix ms. Both share a hash tag so scripts stay within one cluster slot.
//
//	{prefix}:{scheduleID:date}:seat:{seat}  -> session, user, locked_at, expires_at
//	{prefix}:{scheduleID:date}:idx          -> zset(seat, expires_at)

// acquireScript returns {1} created, {2} renewed, or {3, session, user, locked_at, expires_at}.
var acquireScript = redis.NewScript(`
	local key = KEYS[1]
	local idx = KEYS[2]
	local session = ARGV[1]
	local locked = tonumber(ARGV[3])
	local expires = tonumber(ARGV[4])
	local ttl_ms = tonumber(ARGV[5])

	local cur = redis.call('HMGET', key, 'session', 'user', 'locked_at', 'expires_at')
	local outcome = 1
	if cur[1] and tonumber(cur[4]) > locked then
		if cur[1] ~= session then
			return { 3, cur[1], cur[2], cur[3], cur[4] }
		end
		outcome = 2
	end

	redis.call('HSET', key, 'session', session, 'user', ARGV[2], 'locked_at', locked, 'expires_at', expires)
	redis.call('PEXPIRE', key, ttl_ms)
	redis.call('ZADD', idx, expires, ARGV[6])
	redis.call('PEXPIRE', idx, ttl_ms)
	return { outcome }
`)

// releaseScript: KEYS[1] is the index, KEYS[i>1] the lease hash for seat ARGV[i+1].
// ARGV[1] is the session, ARGV[2] now in ms. Expired leases are deleted but not counted.
var releaseScript = redis.NewScript(`
	local now = tonumber(ARGV[2])
	local n = 0
	for i = 2, #KEYS do
		local cur = redis.call('HMGET', KEYS[i], 'session', 'expires_at')
		if cur[1] == ARGV[1] then
			redis.call('DEL', KEYS[i])
			redis.call('ZREM', KEYS[1], ARGV[i + 1])
			local exp = tonumber(cur[2])
			if exp ~= nil and exp > now then
				n = n + 1
			end
		end
	end
	return n
`)
var sweepScript = redis.NewScript(`
	local idx = KEYS[1]
	local now = tonumber(ARGV[1])
	local seat_prefix = ARGV[2]
	local n = 0
	for _, seat in ipairs(redis.call('ZRANGEBYSCORE', idx, '-inf', now)) do
		local key = seat_prefix .. seat
		local exp = tonumber(redis.call('HGET', key, 'expires_at'))
		if exp == nil or exp <= now then
			if exp ~= nil then
				redis.call('DEL', key)
				n = n + 1
			end
			redis.call('ZREM', idx, seat)
		end
	end
	return n
`)

type Store struct {
	rdb    redis.UniversalClient
	prefix string
}

func New(rdb redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = "seatlease"
	}
	return &Store{rdb: rdb, prefix: prefix}
}

var _ shared.LeaseStore = (*Store)(nil)

func (s *Store) slot(scheduleID int64, date schedule.JourneyDate) string {
	return fmt.Sprintf("%s:{%d:%s}", s.prefix, scheduleID, date.String())
}

func (s *Store) seatPrefix(scheduleID int64, date schedule.JourneyDate) string {
	return s.slot(scheduleID, date) + ":seat:"
}

func (s *Store) indexKey(scheduleID int64, date schedule.JourneyDate) string {
	return s.slot(scheduleID, date) + ":idx"
}

func (s *Store) Acquire(ctx context.Context, l lease.Lease, _ time.Time) (lease.Outcome, *lease.Lease, error) {
	ttl := l.ExpiresAt.Sub(l.LockedAt)
	if ttl <= 0 {
		return 0, nil, infra.WrapRepoErr("lease ttl must be positive", nil, infra.KindCacheFailure)
	}
	user := ""
	if l.UserID != uuid.Nil {
		user = l.UserID.String()
	}

	keys := []string{s.seatPrefix(l.ScheduleID, l.JourneyDate) + l.Seat.String(), s.indexKey(l.ScheduleID, l.JourneyDate)}
	// The script compares against lockedAt, which is the caller's now.
	args := []any{l.SessionID, user, l.LockedAt.UnixMilli(), l.ExpiresAt.UnixMilli(), ttl.Milliseconds(), l.Seat.String()}

	vals, err := acquireScript.Run(ctx, s.rdb, keys, args...).Slice()
	if err != nil {
		return 0, nil, infra.WrapRepoErr("failed to run acquire script", err, infra.KindCacheFailure)
	}
	if len(vals) == 0 {
		return 0, nil, infra.WrapRepoErr("empty acquire script result", nil, infra.KindCacheFailure)
	}

	switch asInt64(vals[0]) {
	case 1:
		return lease.OutcomeCreated, nil, nil
	case 2:
		return lease.OutcomeRenewed, nil, nil
	case 3:
		if len(vals) != 5 {
			return 0, nil, infra.WrapRepoErr("malformed acquire script result", nil, infra.KindCacheFailure)
		}
		holder := decodeLease(l.Key, []any{vals[1], vals[2], vals[3], vals[4]})
		return lease.OutcomeHeldByOther, &holder, nil
	default:
		return 0, nil, infra.WrapRepoErr(fmt.Sprintf("unexpected acquire outcome %v", vals[0]), nil, infra.KindCacheFailure)
	}
}

func (s *Store) Release(ctx context.Context, scheduleID int64, date schedule.JourneyDate, seats []schedule.SeatNumber, sessionID string, now time.Time) (int64, error) {
	if len(seats) == 0 {
		return 0, nil
	}
	keys := make([]string, 0, len(seats)+1)
	args := make([]any, 0, len(seats)+2)
	keys = append(keys, s.indexKey(scheduleID, date))
	args = append(args, sessionID, now.UnixMilli())
	for _, seat := range seats {
		keys = append(keys, s.seatPrefix(scheduleID, date)+seat.String())
		args = append(args, seat.String())
	}

	n, err := releaseScript.Run(ctx, s.rdb, keys, args...).Int64()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release seat leases", err, infra.KindCacheFailure)
	}
	return n, nil
}

func (s *Store) ListLive(ctx context.Context, scheduleID int64, date schedule.JourneyDate, now time.Time) ([]lease.Lease, error) {
	seats, err := s.rdb.ZRangeByScore(ctx, s.indexKey(scheduleID, date), &redis.ZRangeBy{
		Min: "(" + strconv.FormatInt(now.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read lease index", err, infra.KindCacheFailure)
	}
	if len(seats) == 0 {
		return nil, nil
	}

	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.SliceCmd, len(seats))
	for i, seat := range seats {
		cmds[i] = pipe.HMGet(ctx, s.seatPrefix(scheduleID, date)+seat, "session", "user", "locked_at", "expires_at")
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to read leases", err, infra.KindCacheFailure)
	}

	live := make([]lease.Lease, 0, len(seats))
	for i, seat := range seats {
		vals := cmds[i].Val()
		if len(vals) != 4 || vals[0] == nil {
			continue
		}
		key := lease.Key{ScheduleID: scheduleID, JourneyDate: date, Seat: schedule.SeatNumber(seat)}
		l := decodeLease(key, vals)
		if l.IsLive(now) {
			live = append(live, l)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].Seat < live[j].Seat })
	return live, nil
}

func (s *Store) SweepExpired(ctx context.Context, scope *shared.SweepScope, now time.Time) (int64, error) {
	if scope != nil {
		return s.sweepIndex(ctx, s.indexKey(scope.ScheduleID, scope.JourneyDate), s.seatPrefix(scope.ScheduleID, scope.JourneyDate), now)
	}

	if mw, ok := s.rdb.(masterWalker); ok {
		var total atomic.Int64
		err := mw.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			n, err := s.sweepNode(ctx, node, now)
			total.Add(n)
			return err
		})
		return total.Load(), err
	}
	return s.sweepNode(ctx, s.rdb, now)
}

// masterWalker is satisfied by *redis.ClusterClient, whose SCAN only covers one node.
type masterWalker interface {
	ForEachMaster(ctx context.Context, fn func(ctx context.Context, client *redis.Client) error) error
}

// sweepNode scans one node for lease indexes. Scripts still go through s.rdb
// so cluster routing picks the slot owner.
func (s *Store) sweepNode(ctx context.Context, node redis.Cmdable, now time.Time) (int64, error) {
	var (
		total  int64
		cursor uint64
	)
	for {
		idxKeys, next, err := node.Scan(ctx, cursor, s.prefix+":{*}:idx", 200).Result()
		if err != nil {
			return total, infra.WrapRepoErr("failed to scan lease indexes", err, infra.KindCacheFailure)
		}
		for _, idx := range idxKeys {
			n, err := s.sweepIndex(ctx, idx, idx[:len(idx)-len("idx")]+"seat:", now)
			if err != nil {
				return total, err
			}
			total += n
		}
		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}

func (s *Store) sweepIndex(ctx context.Context, idx, seatPrefix string, now time.Time) (int64, error) {
	n, err := sweepScript.Run(ctx, s.rdb, []string{idx}, now.UnixMilli(), seatPrefix).Int64()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired leases", err, infra.KindCacheFailure)
	}
	return n, nil
}

// decodeLease reads session, user, locked_at, expires_at in that order.
func decodeLease(key lease.Key, vals []any) lease.Lease {
	l := lease.Lease{Key: key}
	l.SessionID = asString(vals[0])
	if id, err := uuid.Parse(asString(vals[1])); err == nil {
		l.UserID = id
	}
	l.LockedAt = time.UnixMilli(asInt64(vals[2])).UTC()
	l.ExpiresAt = time.UnixMilli(asInt64(vals[3])).UTC()
	return l
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
