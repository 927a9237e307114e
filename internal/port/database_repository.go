package port

import (
	"context"
	"errors"
	"time"

	"github.com/rl1809/seckill/internal/core/domain"
)

// ErrDuplicateRecord is returned by TryRecord when a record for the
// (itemID, buyerID) pair already exists.
var ErrDuplicateRecord = errors.New("purchase record already exists")

// DecrementResult classifies the outcome of a conditional decrement.
type DecrementResult int

const (
	Decremented DecrementResult = iota
	NoStock
	SaleClosed
)

// CatalogRepository reads item metadata from the authoritative store.
type CatalogRepository interface {
	// GetItem returns the item, or nil if no such item exists.
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)

	// ListActiveItems returns items whose sale window has not yet closed.
	ListActiveItems(ctx context.Context, now time.Time, limit int) ([]domain.Item, error)
}

// PurchaseRepository owns the two atomic primitives the coordinator
// relies on: the unique ledger insert and the conditional stock
// decrement. Begin opens the explicit transaction scope that spans both.
type PurchaseRepository interface {
	Begin(ctx context.Context) (PurchaseTx, error)

	// ExecuteProcedure runs ledger insert and decrement as one atomic
	// server-side routine, returning the resulting execution state.
	ExecuteProcedure(ctx context.Context, itemID, buyerID string, now time.Time) (domain.ExecutionState, error)

	// GetRecord fetches a committed purchase record, or nil if absent.
	GetRecord(ctx context.Context, itemID, buyerID string) (*domain.PurchaseRecord, error)
}

// PurchaseTx is one commit-or-rollback unit over the ledger and the
// inventory counter. Implementations must guarantee that under
// concurrent TryRecord calls for the same pair exactly one succeeds, and
// that TryDecrement never drives stock below zero.
type PurchaseTx interface {
	// TryRecord inserts the ledger record, or returns ErrDuplicateRecord.
	TryRecord(ctx context.Context, itemID, buyerID string, now time.Time) (*domain.PurchaseRecord, error)

	// TryDecrement decrements stock by one iff stock > 0 and now is
	// inside the sale window.
	TryDecrement(ctx context.Context, itemID string, now time.Time) (DecrementResult, error)

	Commit() error
	Rollback() error
}
