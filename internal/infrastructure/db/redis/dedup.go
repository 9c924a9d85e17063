package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for interaction events.
// Key format: dedup:<property_id>:<type>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact interaction has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, propertyID, interactionType string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(propertyID, interactionType, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this interaction has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, propertyID, interactionType string, ts time.Time) error {
	return d.client.Set(ctx, d.key(propertyID, interactionType, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(propertyID, interactionType string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%d", propertyID, interactionType, ts.Unix())
}
