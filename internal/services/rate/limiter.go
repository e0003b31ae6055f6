package rate

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	interestMinuteWindow = time.Minute
	interestDayWindow    = 24 * time.Hour
)

type WindowStore interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	WindowState(ctx context.Context, key string) (int64, time.Duration, error)
}

// Limiter throttles interest sends per sender: a short per-minute window
// against bursts and a daily window against spraying the whole candidate
// pool.
type Limiter struct {
	store     WindowStore
	perMinute int
	perDay    int
}

func NewLimiter(store WindowStore, perMinute, perDay int) *Limiter {
	if perMinute < 0 {
		perMinute = 0
	}
	if perDay < 0 {
		perDay = 0
	}

	return &Limiter{
		store:     store,
		perMinute: perMinute,
		perDay:    perDay,
	}
}

func (l *Limiter) AllowSend(ctx context.Context, userID int64) (int64, bool, error) {
	if userID <= 0 {
		return 0, false, fmt.Errorf("invalid user id")
	}
	if l.store == nil {
		return 0, false, fmt.Errorf("rate limiter store is nil")
	}

	retryAfterSec := int64(0)

	if l.perMinute > 0 {
		count, ttl, err := l.store.IncrementWindow(ctx, minuteKey(userID), interestMinuteWindow)
		if err != nil {
			return 0, false, err
		}
		if count > int64(l.perMinute) {
			retryAfterSec = maxInt64(retryAfterSec, ceilSeconds(ttl))
		}
	}

	if l.perDay > 0 {
		count, ttl, err := l.store.IncrementWindow(ctx, dayKey(userID), interestDayWindow)
		if err != nil {
			return 0, false, err
		}
		if count > int64(l.perDay) {
			retryAfterSec = maxInt64(retryAfterSec, ceilSeconds(ttl))
		}
	}

	if retryAfterSec > 0 {
		return retryAfterSec, false, nil
	}

	return 0, true, nil
}

func (l *Limiter) RetryAfterSend(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("invalid user id")
	}
	if l.store == nil {
		return 0, fmt.Errorf("rate limiter store is nil")
	}

	retryAfterSec := int64(0)

	if l.perMinute > 0 {
		count, ttl, err := l.store.WindowState(ctx, minuteKey(userID))
		if err != nil {
			return 0, err
		}
		if count >= int64(l.perMinute) {
			retryAfterSec = maxInt64(retryAfterSec, ceilSeconds(ttl))
		}
	}

	if l.perDay > 0 {
		count, ttl, err := l.store.WindowState(ctx, dayKey(userID))
		if err != nil {
			return 0, err
		}
		if count >= int64(l.perDay) {
			retryAfterSec = maxInt64(retryAfterSec, ceilSeconds(ttl))
		}
	}

	return retryAfterSec, nil
}

func minuteKey(userID int64) string {
	return "rate:interests:min:" + strconv.FormatInt(userID, 10)
}

func dayKey(userID int64) string {
	return "rate:interests:day:" + strconv.FormatInt(userID, 10)
}

func ceilSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	sec := int64(d / time.Second)
	if d%time.Second != 0 {
		sec++
	}
	if sec <= 0 {
		sec = 1
	}
	return sec
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
