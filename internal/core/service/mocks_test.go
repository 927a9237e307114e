package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/port"
)

// Mock CacheRepository
type mockCacheRepo struct {
	mu      sync.Mutex
	items   map[string]*domain.Item
	getErr  error
	setErr  error
	getHits int
	sets    int
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{items: make(map[string]*domain.Item)}
}

func (m *mockCacheRepo) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	item, ok := m.items[itemID]
	if !ok {
		return nil, nil
	}
	m.getHits++
	cp := *item
	return &cp, nil
}

func (m *mockCacheRepo) SetItem(ctx context.Context, item *domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	cp := *item
	m.items[item.ID] = &cp
	m.sets++
	return nil
}

// Mock CatalogRepository
type mockCatalogRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Item
	err   error
	reads int
}

func newMockCatalogRepo(items ...*domain.Item) *mockCatalogRepo {
	m := &mockCatalogRepo{items: make(map[string]*domain.Item)}
	for _, item := range items {
		cp := *item
		m.items[item.ID] = &cp
	}
	return m
}

func (m *mockCatalogRepo) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.reads++
	item, ok := m.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (m *mockCatalogRepo) ListActiveItems(ctx context.Context, now time.Time, limit int) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Item
	for _, item := range m.items {
		if !now.After(item.EndTime) && len(out) < limit {
			out = append(out, *item)
		}
	}
	return out, nil
}

// Mock PurchaseRepository. Operations apply immediately under one mutex,
// which preserves the atomicity guarantees the real store provides. Seeded
// items are copied so stock writes never alias items held by other mocks.
type mockPurchaseRepo struct {
	mu      sync.Mutex
	items   map[string]*domain.Item
	records map[string]*domain.PurchaseRecord

	beginErr  error
	recordErr error
	decErr    error
	commitErr error
}

func newMockPurchaseRepo(items ...*domain.Item) *mockPurchaseRepo {
	m := &mockPurchaseRepo{
		items:   make(map[string]*domain.Item),
		records: make(map[string]*domain.PurchaseRecord),
	}
	for _, item := range items {
		cp := *item
		m.items[item.ID] = &cp
	}
	return m
}

func (m *mockPurchaseRepo) recordKey(itemID, buyerID string) string {
	return itemID + "|" + buyerID
}

func (m *mockPurchaseRepo) Begin(ctx context.Context) (port.PurchaseTx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return &mockPurchaseTx{repo: m}, nil
}

func (m *mockPurchaseRepo) ExecuteProcedure(ctx context.Context, itemID, buyerID string, now time.Time) (domain.ExecutionState, error) {
	tx := &mockPurchaseTx{repo: m}

	_, err := tx.TryRecord(ctx, itemID, buyerID, now)
	if errors.Is(err, port.ErrDuplicateRecord) {
		return domain.StateRepeatPurchase, nil
	}
	if err != nil {
		return domain.StateInternalError, err
	}

	result, err := tx.TryDecrement(ctx, itemID, now)
	if err != nil {
		return domain.StateInternalError, err
	}
	if result != port.Decremented {
		return domain.StateSaleEnded, nil
	}
	return domain.StateSuccess, nil
}

func (m *mockPurchaseRepo) GetRecord(ctx context.Context, itemID, buyerID string) (*domain.PurchaseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[m.recordKey(itemID, buyerID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockPurchaseRepo) stock(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[itemID].Stock
}

func (m *mockPurchaseRepo) recordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type mockPurchaseTx struct {
	repo *mockPurchaseRepo
}

func (t *mockPurchaseTx) TryRecord(ctx context.Context, itemID, buyerID string, now time.Time) (*domain.PurchaseRecord, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.recordErr != nil {
		return nil, t.repo.recordErr
	}
	key := t.repo.recordKey(itemID, buyerID)
	if _, exists := t.repo.records[key]; exists {
		return nil, port.ErrDuplicateRecord
	}
	rec := &domain.PurchaseRecord{ItemID: itemID, BuyerID: buyerID, PurchasedAt: now}
	t.repo.records[key] = rec
	return rec, nil
}

func (t *mockPurchaseTx) TryDecrement(ctx context.Context, itemID string, now time.Time) (port.DecrementResult, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if t.repo.decErr != nil {
		return port.SaleClosed, t.repo.decErr
	}
	item, ok := t.repo.items[itemID]
	if !ok {
		return port.SaleClosed, nil
	}
	if now.After(item.EndTime) || now.Before(item.StartTime) {
		return port.SaleClosed, nil
	}
	if item.Stock <= 0 {
		return port.NoStock, nil
	}
	item.Stock--
	return port.Decremented, nil
}

func (t *mockPurchaseTx) Commit() error {
	return t.repo.commitErr
}

func (t *mockPurchaseTx) Rollback() error {
	return nil
}
