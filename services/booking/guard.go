package booking

import (
	"context"
	"strings"
	"time"

	"klinik/utils"

	"github.com/go-redis/redis/v8"
)

// SubmissionGuard blocks the same patient from submitting the same date and time
// twice while the first submission is still in flight or was just accepted.
type SubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmissionGuard(client *redis.Client, ttl time.Duration) *SubmissionGuard {
	return &SubmissionGuard{client: client, ttl: ttl}
}

// Acquire returns false when an identical submission holds the key.
func (g *SubmissionGuard) Acquire(ctx context.Context, key string) (bool, error) {
	if g == nil || g.client == nil {
		return true, nil
	}
	return g.client.SetNX(ctx, utils.BookingGuardPrefix+key, time.Now().Unix(), g.ttl).Result()
}

// Release frees the key so a failed submission can be retried at once.
func (g *SubmissionGuard) Release(ctx context.Context, key string) error {
	if g == nil || g.client == nil {
		return nil
	}
	return g.client.Del(ctx, utils.BookingGuardPrefix+key).Err()
}

func guardKey(parts ...string) string {
	return strings.Join(parts, ":")
}
