package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CandidateCacheRepo caches the first page of a seeker's candidate listing.
// Only the cursorless page is cached: deeper pages are rare and the filter
// inputs change too often to make them worth keeping.
type CandidateCacheRepo struct {
	client *goredis.Client
}

func NewCandidateCacheRepo(client *goredis.Client) *CandidateCacheRepo {
	return &CandidateCacheRepo{client: client}
}

func (r *CandidateCacheRepo) GetFirstPage(ctx context.Context, seekerID int64) ([]byte, bool, error) {
	if r.client == nil {
		return nil, false, fmt.Errorf("redis client is nil")
	}
	if seekerID <= 0 {
		return nil, false, fmt.Errorf("invalid seeker id")
	}

	payload, err := r.client.Get(ctx, candidatePageKey(seekerID)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get candidate page: %w", err)
	}

	return payload, true, nil
}

func (r *CandidateCacheRepo) SetFirstPage(ctx context.Context, seekerID int64, payload []byte, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if seekerID <= 0 || len(payload) == 0 || ttl <= 0 {
		return fmt.Errorf("invalid candidate page payload")
	}

	if err := r.client.Set(ctx, candidatePageKey(seekerID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("set candidate page: %w", err)
	}

	return nil
}

// Invalidate drops the cached page after the seeker edits their profile or
// preferences, or declines/undeclines someone.
func (r *CandidateCacheRepo) Invalidate(ctx context.Context, seekerID int64) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if seekerID <= 0 {
		return fmt.Errorf("invalid seeker id")
	}

	if err := r.client.Del(ctx, candidatePageKey(seekerID)).Err(); err != nil {
		return fmt.Errorf("invalidate candidate page: %w", err)
	}

	return nil
}

func candidatePageKey(seekerID int64) string {
	return "candidates:first:" + strconv.FormatInt(seekerID, 10)
}
