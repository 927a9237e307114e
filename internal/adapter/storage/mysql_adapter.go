package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/port"
)

// Result codes produced by the execute_purchase stored procedure.
const (
	procSuccess  = 1
	procSaleEnd  = 0
	procRepeat   = -1
	procInternal = -2
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	var item domain.Item
	err := m.db.QueryRowContext(ctx, `
		SELECT item_id, name, stock, start_time, end_time, created_at
		FROM item WHERE item_id = ?`, itemID,
	).Scan(&item.ID, &item.Name, &item.Stock, &item.StartTime, &item.EndTime, &item.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}

	return &item, nil
}

func (m *MySQLAdapter) ListActiveItems(ctx context.Context, now time.Time, limit int) ([]domain.Item, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT item_id, name, stock, start_time, end_time, created_at
		FROM item WHERE end_time >= ?
		ORDER BY start_time
		LIMIT ?`, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query active items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Stock, &item.StartTime, &item.EndTime, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

func (m *MySQLAdapter) Begin(ctx context.Context) (port.PurchaseTx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &mysqlPurchaseTx{tx: tx}, nil
}

func (m *MySQLAdapter) ExecuteProcedure(ctx context.Context, itemID, buyerID string, now time.Time) (domain.ExecutionState, error) {
	var code int
	err := m.db.QueryRowContext(ctx, `CALL execute_purchase(?, ?, ?)`, itemID, buyerID, now).Scan(&code)
	if err != nil {
		return domain.StateInternalError, fmt.Errorf("call execute_purchase: %w", err)
	}

	switch code {
	case procSuccess:
		return domain.StateSuccess, nil
	case procSaleEnd:
		return domain.StateSaleEnded, nil
	case procRepeat:
		return domain.StateRepeatPurchase, nil
	default:
		return domain.StateInternalError, fmt.Errorf("execute_purchase returned %d", code)
	}
}

func (m *MySQLAdapter) GetRecord(ctx context.Context, itemID, buyerID string) (*domain.PurchaseRecord, error) {
	var rec domain.PurchaseRecord
	err := m.db.QueryRowContext(ctx, `
		SELECT item_id, buyer_id, purchased_at
		FROM purchase_record WHERE item_id = ? AND buyer_id = ?`, itemID, buyerID,
	).Scan(&rec.ItemID, &rec.BuyerID, &rec.PurchasedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query purchase record: %w", err)
	}

	return &rec, nil
}

type mysqlPurchaseTx struct {
	tx *sql.Tx
}

// TryRecord relies on the composite primary key (item_id, buyer_id):
// INSERT IGNORE affects zero rows on a duplicate, so exactly one of any
// set of racing inserts for the same pair succeeds.
func (t *mysqlPurchaseTx) TryRecord(ctx context.Context, itemID, buyerID string, now time.Time) (*domain.PurchaseRecord, error) {
	result, err := t.tx.ExecContext(ctx, `
		INSERT IGNORE INTO purchase_record (item_id, buyer_id, purchased_at)
		VALUES (?, ?, ?)`, itemID, buyerID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert purchase record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("insert purchase record: %w", err)
	}
	if rows == 0 {
		return nil, port.ErrDuplicateRecord
	}

	return &domain.PurchaseRecord{ItemID: itemID, BuyerID: buyerID, PurchasedAt: now}, nil
}

// TryDecrement is the only place stock is mutated. The predicate makes
// the decrement conditional in a single statement; MySQL's row lock on
// the item row serializes racing callers.
func (t *mysqlPurchaseTx) TryDecrement(ctx context.Context, itemID string, now time.Time) (port.DecrementResult, error) {
	result, err := t.tx.ExecContext(ctx, `
		UPDATE item SET stock = stock - 1
		WHERE item_id = ? AND stock > 0 AND start_time <= ? AND end_time >= ?`,
		itemID, now, now,
	)
	if err != nil {
		return port.SaleClosed, fmt.Errorf("decrement stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return port.SaleClosed, fmt.Errorf("decrement stock: %w", err)
	}
	if rows == 1 {
		return port.Decremented, nil
	}

	// Zero rows means no stock or window closed; classify with a
	// follow-up read. Both map to the same terminal outcome upstream.
	var stock int
	var endTime time.Time
	err = t.tx.QueryRowContext(ctx, `
		SELECT stock, end_time FROM item WHERE item_id = ?`, itemID,
	).Scan(&stock, &endTime)
	if err != nil {
		return port.SaleClosed, nil
	}
	if now.After(endTime) || stock > 0 {
		return port.SaleClosed, nil
	}
	return port.NoStock, nil
}

func (t *mysqlPurchaseTx) Commit() error {
	return t.tx.Commit()
}

func (t *mysqlPurchaseTx) Rollback() error {
	return t.tx.Rollback()
}
