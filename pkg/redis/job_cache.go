package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const jobListKey = "jobs:all"

// JobListCache keeps the full job listing in Redis. A nil client turns every
// call into a no-op miss, so the API behaves the same with or without Redis.
type JobListCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ domain.JobCache = (*JobListCache)(nil)

func NewJobListCache(client redis.Cmdable, ttl time.Duration) *JobListCache {
	return &JobListCache{client: client, ttl: ttl}
}

func (c *JobListCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

func (c *JobListCache) GetJobs(ctx context.Context) ([]domain.JobWithCompany, bool) {
	if !c.enabled() {
		return nil, false
	}

	data, err := c.client.Get(ctx, jobListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("job cache read failed", "error", err)
		}
		return nil, false
	}

	var jobs []domain.JobWithCompany
	if err := json.Unmarshal(data, &jobs); err != nil {
		logger.Log.Warn("job cache entry corrupt, ignoring", "error", err)
		return nil, false
	}
	return jobs, true
}

func (c *JobListCache) SetJobs(ctx context.Context, jobs []domain.JobWithCompany) {
	if !c.enabled() {
		return
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		logger.Log.Warn("job cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, jobListKey, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("job cache write failed", "error", err)
	}
}

func (c *JobListCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.client.Del(ctx, jobListKey).Err(); err != nil {
		logger.Log.Warn("job cache invalidation failed", "error", err)
	}
}
