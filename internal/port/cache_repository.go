package port

import (
	"context"

	"github.com/rl1809/seckill/internal/core/domain"
)

// CacheRepository is a best-effort item metadata cache. Staleness is
// tolerated: values read here are advisory for token issuance only, the
// authoritative stock check happens inside the database decrement.
type CacheRepository interface {
	// GetItem returns the cached item, or nil on a miss.
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)

	// SetItem stores an item snapshot with the adapter's TTL.
	SetItem(ctx context.Context, item *domain.Item) error
}
