package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/seckill/internal/adapter/storage"
	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/core/service"
)

const (
	itemID        = "stress-test-item"
	initialStock  = 20
	totalRequests = 50
)

func main() {
	ctx := context.Background()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/seckill?parseTime=true"
	}
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "stress-test-secret"
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		log.Fatalf("failed to open mysql: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Reset test data
	rdb.Del(ctx, "item:"+itemID)
	db.ExecContext(ctx, `DELETE FROM purchase_record WHERE item_id = ?`, itemID)
	_, err = db.ExecContext(ctx, `
		INSERT INTO item (item_id, name, stock, start_time, end_time)
		VALUES (?, 'Stress Test Item', ?, ?, ?)
		ON DUPLICATE KEY UPDATE stock = ?, start_time = VALUES(start_time), end_time = VALUES(end_time)`,
		itemID, initialStock, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), initialStock)
	if err != nil {
		log.Fatalf("failed to seed item: %v", err)
	}

	redisAdapter := storage.NewRedisAdapter(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)
	catalog := service.NewCatalogService(redisAdapter, mysqlAdapter, nil)
	tokens := service.NewTokenService(catalog, []byte(secret))
	purchase := service.NewPurchaseService(tokens, catalog, mysqlAdapter, service.StrategyOrchestrated, nil)

	token, err := tokens.IssueToken(ctx, itemID)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	var successCount atomic.Int32
	var endedCount atomic.Int32
	var otherCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			buyerID := "buyer-" + uuid.NewString()
			execution := purchase.Execute(ctx, itemID, buyerID, token.Value)
			switch execution.State {
			case domain.StateSuccess:
				successCount.Add(1)
			case domain.StateSaleEnded:
				endedCount.Add(1)
			default:
				otherCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	ended := endedCount.Load()
	other := otherCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Sale Ended:       %d\n", ended)
	fmt.Printf("Other:            %d\n", other)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == int32(initialStock) && ended == int32(totalRequests-initialStock) {
		fmt.Printf("PASS: Exactly %d purchases succeeded, %d rejected\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: Expected %d success/%d rejected, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, ended)
	}

	var finalStock int
	db.QueryRowContext(ctx, `SELECT stock FROM item WHERE item_id = ?`, itemID).Scan(&finalStock)
	fmt.Printf("Final Stock: %d\n", finalStock)

	if finalStock == 0 {
		fmt.Println("PASS: Stock depleted to 0")
	} else {
		fmt.Printf("FAIL: Expected stock 0, got %d\n", finalStock)
	}
}
