package tests

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/seckill/internal/adapter/storage"
	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/core/service"
)

type testEnv struct {
	redis    *redis.Client
	mysql    *sql.DB
	catalog  *service.CatalogService
	tokens   *service.TokenService
	purchase *service.PurchaseService
	cleanup  func()
}

func setupTestEnv(t *testing.T, strategy service.Strategy) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/seckill?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	redisAdapter := storage.NewRedisAdapter(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)
	catalog := service.NewCatalogService(redisAdapter, mysqlAdapter, nil)
	tokens := service.NewTokenService(catalog, []byte("integration-test-secret"))
	purchase := service.NewPurchaseService(tokens, catalog, mysqlAdapter, strategy, nil)

	return &testEnv{
		redis:    rdb,
		mysql:    db,
		catalog:  catalog,
		tokens:   tokens,
		purchase: purchase,
		cleanup: func() {
			rdb.Close()
			db.Close()
		},
	}
}

func (env *testEnv) seedItem(t *testing.T, itemID string, stock int, start, end time.Time) {
	t.Helper()
	ctx := context.Background()

	env.redis.Del(ctx, "item:"+itemID)
	env.mysql.ExecContext(ctx, `DELETE FROM purchase_record WHERE item_id = ?`, itemID)
	_, err := env.mysql.ExecContext(ctx, `
		INSERT INTO item (item_id, name, stock, start_time, end_time)
		VALUES (?, 'Integration Test Item', ?, ?, ?)
		ON DUPLICATE KEY UPDATE stock = ?, start_time = VALUES(start_time), end_time = VALUES(end_time)`,
		itemID, stock, start, end, stock)
	if err != nil {
		t.Fatalf("seed item failed: %v", err)
	}
}

func TestIntegration_FullPurchaseFlow(t *testing.T) {
	env := setupTestEnv(t, service.StrategyOrchestrated)
	defer env.cleanup()

	ctx := context.Background()
	itemID := "integration-flow-item"
	initialStock := 10
	totalRequests := 20

	env.seedItem(t, itemID, initialStock, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))

	token, err := env.tokens.IssueToken(ctx, itemID)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	var successCount atomic.Int32
	var endedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buyerID := "buyer-" + uuid.NewString()
			execution := env.purchase.Execute(ctx, itemID, buyerID, token.Value)
			switch execution.State {
			case domain.StateSuccess:
				successCount.Add(1)
			case domain.StateSaleEnded:
				endedCount.Add(1)
			default:
				t.Errorf("unexpected state %s", execution.State)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successful purchases, got %d", initialStock, successCount.Load())
	}
	if endedCount.Load() != int32(totalRequests-initialStock) {
		t.Errorf("expected %d rejected purchases, got %d", totalRequests-initialStock, endedCount.Load())
	}

	var stock int
	env.mysql.QueryRowContext(ctx, `SELECT stock FROM item WHERE item_id = ?`, itemID).Scan(&stock)
	if stock != 0 {
		t.Errorf("expected stock 0, got %d", stock)
	}

	var recordCount int
	env.mysql.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchase_record WHERE item_id = ?`, itemID).Scan(&recordCount)
	if recordCount != totalRequests {
		t.Errorf("expected %d ledger records, got %d", totalRequests, recordCount)
	}

	env.mysql.ExecContext(ctx, `DELETE FROM purchase_record WHERE item_id = ?`, itemID)
}

func TestIntegration_RepeatPurchase(t *testing.T) {
	env := setupTestEnv(t, service.StrategyOrchestrated)
	defer env.cleanup()

	ctx := context.Background()
	itemID := "integration-repeat-item"
	buyerID := "buyer-" + uuid.NewString()

	env.seedItem(t, itemID, 10, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))

	token, err := env.tokens.IssueToken(ctx, itemID)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	first := env.purchase.Execute(ctx, itemID, buyerID, token.Value)
	if first.State != domain.StateSuccess {
		t.Fatalf("expected SUCCESS, got %s", first.State)
	}

	second := env.purchase.Execute(ctx, itemID, buyerID, token.Value)
	if second.State != domain.StateRepeatPurchase {
		t.Errorf("expected REPEAT_PURCHASE, got %s", second.State)
	}

	var stock int
	env.mysql.QueryRowContext(ctx, `SELECT stock FROM item WHERE item_id = ?`, itemID).Scan(&stock)
	if stock != 9 {
		t.Errorf("expected stock 9, got %d", stock)
	}
}

func TestIntegration_WindowEnforcement(t *testing.T) {
	env := setupTestEnv(t, service.StrategyOrchestrated)
	defer env.cleanup()

	ctx := context.Background()
	itemID := "integration-window-item"

	// Sale starts in the future.
	env.seedItem(t, itemID, 10, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour))

	_, err := env.tokens.IssueToken(ctx, itemID)
	var windowErr *domain.WindowError
	if !errors.As(err, &windowErr) {
		t.Fatalf("expected WindowError, got %v", err)
	}
	if windowErr.Reason != domain.WindowBeforeStart {
		t.Errorf("expected BEFORE_START, got %s", windowErr.Reason)
	}
	if windowErr.StartTime.IsZero() || windowErr.EndTime.IsZero() || windowErr.Now.IsZero() {
		t.Error("expected all three timestamps in rejection")
	}

	// A structurally valid token still cannot purchase before the window.
	execution := env.purchase.Execute(ctx, itemID, "buyer-1", env.tokens.Compute(itemID))
	if execution.State != domain.StateSaleNotStarted {
		t.Errorf("expected SALE_NOT_STARTED, got %s", execution.State)
	}

	var stock int
	env.mysql.QueryRowContext(ctx, `SELECT stock FROM item WHERE item_id = ?`, itemID).Scan(&stock)
	if stock != 10 {
		t.Errorf("expected stock unchanged at 10, got %d", stock)
	}
}

func TestIntegration_ProcedureStrategy(t *testing.T) {
	env := setupTestEnv(t, service.StrategyProcedure)
	defer env.cleanup()

	ctx := context.Background()
	itemID := "integration-proc-item"

	env.seedItem(t, itemID, 1, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))

	token, err := env.tokens.IssueToken(ctx, itemID)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	first := env.purchase.Execute(ctx, itemID, "buyer-1", token.Value)
	if first.State == domain.StateInternalError {
		t.Skip("execute_purchase procedure not installed")
	}
	if first.State != domain.StateSuccess {
		t.Fatalf("expected SUCCESS, got %s", first.State)
	}
	if first.Record == nil {
		t.Fatal("expected purchase record")
	}

	soldOut := env.purchase.Execute(ctx, itemID, "buyer-2", token.Value)
	if soldOut.State != domain.StateSaleEnded {
		t.Errorf("expected SALE_ENDED, got %s", soldOut.State)
	}

	repeat := env.purchase.Execute(ctx, itemID, "buyer-1", token.Value)
	if repeat.State != domain.StateRepeatPurchase {
		t.Errorf("expected REPEAT_PURCHASE, got %s", repeat.State)
	}
}
