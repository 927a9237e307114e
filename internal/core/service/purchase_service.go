package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/port"
)

// Strategy selects how the record+decrement pair is executed.
type Strategy string

const (
	// StrategyOrchestrated runs the ledger insert and the decrement as
	// two statements inside one application-scoped transaction.
	StrategyOrchestrated Strategy = "orchestrated"

	// StrategyProcedure collapses both into a single stored-procedure
	// round trip. Outcome semantics are identical.
	StrategyProcedure Strategy = "procedure"
)

// PurchaseService coordinates one purchase attempt. It holds no state
// across requests; all cross-request coordination is delegated to the
// ledger's uniqueness constraint and the conditional decrement.
type PurchaseService struct {
	tokens   *TokenService
	catalog  *CatalogService
	repo     port.PurchaseRepository
	strategy Strategy
	logger   *zap.Logger
	now      func() time.Time
}

func NewPurchaseService(tokens *TokenService, catalog *CatalogService, repo port.PurchaseRepository, strategy Strategy, logger *zap.Logger) *PurchaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strategy == "" {
		strategy = StrategyOrchestrated
	}
	return &PurchaseService{
		tokens:   tokens,
		catalog:  catalog,
		repo:     repo,
		strategy: strategy,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute converts a (item, buyer, token) triple into exactly one
// terminal outcome. Validation failures return before any mutation; a
// failed decrement after a committed ledger insert is surfaced as
// SALE_ENDED and grants no unit.
func (s *PurchaseService) Execute(ctx context.Context, itemID, buyerID, token string) domain.Execution {
	if !s.tokens.Verify(itemID, token) {
		return domain.Execution{ItemID: itemID, State: domain.StateInvalidToken}
	}

	now := s.now()

	// Window precheck against the catalog so a stale or early request
	// never reaches the ledger or the counter. The decrement predicate
	// re-checks the window authoritatively.
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return domain.Execution{ItemID: itemID, State: domain.StateItemNotFound}
		}
		s.logger.Error("item lookup failed", zap.String("item_id", itemID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}
	if now.Before(item.StartTime) {
		return domain.Execution{ItemID: itemID, State: domain.StateSaleNotStarted}
	}
	if now.After(item.EndTime) {
		return domain.Execution{ItemID: itemID, State: domain.StateSaleEnded}
	}

	if s.strategy == StrategyProcedure {
		return s.executeProcedure(ctx, itemID, buyerID, now)
	}
	return s.executeOrchestrated(ctx, itemID, buyerID, now)
}

// executeOrchestrated inserts the ledger record before touching the
// counter. The insert is keyed per buyer and does not contend across
// buyers; the decrement races every concurrent buyer on one row, so it
// goes last to keep the row-lock window as short as possible.
func (s *PurchaseService) executeOrchestrated(ctx context.Context, itemID, buyerID string, now time.Time) domain.Execution {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		s.logger.Error("begin purchase tx failed", zap.String("item_id", itemID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}
	defer tx.Rollback()

	record, err := tx.TryRecord(ctx, itemID, buyerID, now)
	if errors.Is(err, port.ErrDuplicateRecord) {
		return domain.Execution{ItemID: itemID, State: domain.StateRepeatPurchase}
	}
	if err != nil {
		s.logger.Error("ledger insert failed",
			zap.String("item_id", itemID), zap.String("buyer_id", buyerID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}

	result, err := tx.TryDecrement(ctx, itemID, now)
	if err != nil {
		s.logger.Error("stock decrement failed",
			zap.String("item_id", itemID), zap.String("buyer_id", buyerID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}

	// The ledger record commits even when the decrement lost the race:
	// a recorded-but-unfulfilled attempt, surfaced as SALE_ENDED.
	if err := tx.Commit(); err != nil {
		s.logger.Error("purchase tx commit failed",
			zap.String("item_id", itemID), zap.String("buyer_id", buyerID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}

	if result != port.Decremented {
		return domain.Execution{ItemID: itemID, State: domain.StateSaleEnded}
	}

	return domain.Execution{ItemID: itemID, State: domain.StateSuccess, Record: record}
}

func (s *PurchaseService) executeProcedure(ctx context.Context, itemID, buyerID string, now time.Time) domain.Execution {
	state, err := s.repo.ExecuteProcedure(ctx, itemID, buyerID, now)
	if err != nil {
		s.logger.Error("execute_purchase procedure failed",
			zap.String("item_id", itemID), zap.String("buyer_id", buyerID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}

	if state != domain.StateSuccess {
		return domain.Execution{ItemID: itemID, State: state}
	}

	record, err := s.repo.GetRecord(ctx, itemID, buyerID)
	if err != nil || record == nil {
		s.logger.Error("purchase record readback failed",
			zap.String("item_id", itemID), zap.String("buyer_id", buyerID), zap.Error(err))
		return domain.Execution{ItemID: itemID, State: domain.StateInternalError}
	}

	return domain.Execution{ItemID: itemID, State: domain.StateSuccess, Record: record}
}
