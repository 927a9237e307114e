package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/port"
)

// CatalogService is a read-through cache over item metadata. Cache
// staleness is tolerated here: window checks against a cached item only
// gate token issuance, the authoritative check happens at decrement time.
type CatalogService struct {
	cache  port.CacheRepository
	db     port.CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(cache port.CacheRepository, db port.CatalogRepository, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{cache: cache, db: db, logger: logger}
}

// GetItem returns the item from cache, falling back to the authoritative
// store on a miss. Cache failures degrade to store reads, never to
// request failures.
func (s *CatalogService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	if s.cache != nil {
		item, err := s.cache.GetItem(ctx, itemID)
		if err != nil {
			s.logger.Warn("item cache read failed", zap.String("item_id", itemID), zap.Error(err))
		} else if item != nil {
			return item, nil
		}
	}

	item, err := s.db.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item); err != nil {
			s.logger.Warn("item cache populate failed", zap.String("item_id", itemID), zap.Error(err))
		}
	}

	return item, nil
}

// ListActiveItems returns items whose sale window has not yet closed.
func (s *CatalogService) ListActiveItems(ctx context.Context, now time.Time, limit int) ([]domain.Item, error) {
	return s.db.ListActiveItems(ctx, now, limit)
}
