// Package integration provides end-to-end integration tests for the saga participants.
// Tests run against PostgreSQL and MySQL when TEST_POSTGRES_DSN and TEST_MYSQL_DSN are set.
package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ordersaga/internal/app"
	authHTTP "github.com/allisson/ordersaga/internal/auth/http"
	"github.com/allisson/ordersaga/internal/config"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	inventoryDomain "github.com/allisson/ordersaga/internal/inventory/domain"
	"github.com/allisson/ordersaga/internal/messaging"
	"github.com/allisson/ordersaga/internal/metrics"
	orderDTO "github.com/allisson/ordersaga/internal/order/http/dto"
	outboxDomain "github.com/allisson/ordersaga/internal/outbox/domain"
	outboxUseCase "github.com/allisson/ordersaga/internal/outbox/usecase"
	"github.com/allisson/ordersaga/internal/testutil"
)

var drivers = []struct {
	name     string
	dbDriver string
}{
	{"PostgreSQL", "postgres"},
	{"MySQL", "mysql"},
}

// integrationTestContext holds all dependencies and state for one participant under test.
type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	dbDriver  string
	service   string
}

// recordingPublisher captures relayed messages instead of sending them to a broker.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []messaging.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg messaging.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) Messages() []messaging.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]messaging.Message(nil), p.messages...)
}

// setupIntegrationTest migrates and cleans the service tables and builds a container for it.
func setupIntegrationTest(t *testing.T, dbDriver, service, catalogURL string) *integrationTestContext {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		testutil.SkipIfNoPostgres(t)
		db = testutil.SetupPostgresDB(t, service)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		testutil.SkipIfNoMySQL(t)
		db = testutil.SetupMySQLDB(t, service)
		dsn = testutil.GetMySQLTestDSN()
	}

	cfg := &config.Config{
		ServiceName:                    service,
		DBDriver:                       dbDriver,
		DBConnectionString:             dsn,
		DBMaxOpenConnections:           30,
		DBMaxIdleConnections:           10,
		DBConnMaxLifetime:              time.Hour,
		ServerHost:                     "localhost",
		ServerPort:                     8080,
		LogLevel:                       "error",
		KafkaBrokers:                   "localhost:9092",
		KafkaClientID:                  "ordersaga-integration",
		KafkaConsumerGroup:             service + "-service",
		OutboxBatchSize:                50,
		OutboxMaxAttempts:              5,
		OutboxInterval:                 time.Second,
		OutboxInProgressTimeout:        time.Minute,
		CatalogBaseURL:                 catalogURL,
		CatalogConnectTimeout:          time.Second,
		CatalogReadTimeout:             2 * time.Second,
		CatalogRetryMaxAttempts:        2,
		CatalogRetryBackoff:            10 * time.Millisecond,
		CatalogBreakerFailureThreshold: 5,
		CatalogBreakerTimeout:          time.Second,
		ReservationTTL:                 15 * time.Minute,
		ReservationReaperInterval:      time.Minute,
		ReservationReaperBatchSize:     100,
		PaymentGatewayMaxAmount:        10000,
	}

	return &integrationTestContext{
		container: app.NewContainer(cfg),
		db:        db,
		dbDriver:  dbDriver,
		service:   service,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}

	if ctx.db != nil {
		testutil.TeardownDB(t, ctx.db)
	}
}

// newRelay builds an outbox relay over the container's database that publishes to publisher.
func (ctx *integrationTestContext) newRelay(t *testing.T, publisher messaging.Publisher) *outboxUseCase.Relay {
	t.Helper()

	txManager, err := ctx.container.TxManager()
	require.NoError(t, err)
	outboxRepo, err := ctx.container.OutboxRepository()
	require.NoError(t, err)

	return outboxUseCase.NewRelay(
		outboxUseCase.RelayConfig{
			Interval:          time.Second,
			BatchSize:         50,
			MaxAttempts:       5,
			InProgressTimeout: time.Minute,
		},
		txManager,
		outboxRepo,
		publisher,
		metrics.NewNoOpBusinessMetrics(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

// TestIntegration_Inventory_NoOversell races more single-unit reservations than there is
// stock and checks that exactly the available units are reserved.
func TestIntegration_Inventory_NoOversell(t *testing.T) {
	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServiceInventory, "")
			defer teardownIntegrationTest(t, ctx)

			const (
				productID = int64(1)
				stock     = 10
				attempts  = 25
			)
			testutil.SeedInventory(t, ctx.db, tc.dbDriver, productID, stock)

			useCase, err := ctx.container.InventoryUseCase()
			require.NoError(t, err)

			var (
				wg           sync.WaitGroup
				mu           sync.Mutex
				succeeded    int
				insufficient int
				unexpected   []error
			)
			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func(orderID int64) {
					defer wg.Done()
					_, err := useCase.ReserveStock(context.Background(), orderID, []inventoryDomain.StockItem{
						{ProductID: productID, Quantity: 1},
					})

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						succeeded++
					case apperrors.Is(err, inventoryDomain.ErrInsufficientStock):
						insufficient++
					default:
						unexpected = append(unexpected, err)
					}
				}(int64(1000 + i))
			}
			wg.Wait()

			require.Empty(t, unexpected)
			assert.Equal(t, stock, succeeded)
			assert.Equal(t, attempts-stock, insufficient)

			available, reserved := testutil.StockLevels(t, ctx.db, tc.dbDriver, productID)
			assert.Equal(t, 0, available)
			assert.Equal(t, stock, reserved)
			assert.Equal(t, stock, testutil.CountRows(t, ctx.db, "inventory_reservations", "status = 'RESERVED'"))
		})
	}
}

// TestIntegration_Inventory_OppositeItemOrder reserves the same two products listed in
// opposite orders from many goroutines. Sorted locking must let every call finish.
func TestIntegration_Inventory_OppositeItemOrder(t *testing.T) {
	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServiceInventory, "")
			defer teardownIntegrationTest(t, ctx)

			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 1, 100)
			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 2, 100)

			useCase, err := ctx.container.InventoryUseCase()
			require.NoError(t, err)

			const rounds = 20
			errs := make(chan error, rounds*2)
			var wg sync.WaitGroup
			for i := 0; i < rounds; i++ {
				wg.Add(2)
				go func(orderID int64) {
					defer wg.Done()
					_, err := useCase.ReserveStock(context.Background(), orderID, []inventoryDomain.StockItem{
						{ProductID: 1, Quantity: 1},
						{ProductID: 2, Quantity: 1},
					})
					errs <- err
				}(int64(2000 + i))
				go func(orderID int64) {
					defer wg.Done()
					_, err := useCase.ReserveStock(context.Background(), orderID, []inventoryDomain.StockItem{
						{ProductID: 2, Quantity: 1},
						{ProductID: 1, Quantity: 1},
					})
					errs <- err
				}(int64(3000 + i))
			}

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(30 * time.Second):
				t.Fatal("reservations did not finish")
			}
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}

			for _, productID := range []int64{1, 2} {
				available, reserved := testutil.StockLevels(t, ctx.db, tc.dbDriver, productID)
				assert.Equal(t, 100-rounds*2, available)
				assert.Equal(t, rounds*2, reserved)
			}
		})
	}
}

// TestIntegration_Inventory_ReserveAndRelease reserves and then compensates an order.
func TestIntegration_Inventory_ReserveAndRelease(t *testing.T) {
	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServiceInventory, "")
			defer teardownIntegrationTest(t, ctx)

			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 1, 50)

			useCase, err := ctx.container.InventoryUseCase()
			require.NoError(t, err)

			reservations, err := useCase.ReserveStock(context.Background(), 7001, []inventoryDomain.StockItem{
				{ProductID: 1, Quantity: 3},
			})
			require.NoError(t, err)
			require.Len(t, reservations, 1)
			assert.Equal(t, inventoryDomain.ReservationStatusReserved, reservations[0].Status)
			assert.NotZero(t, reservations[0].ID)

			available, reserved := testutil.StockLevels(t, ctx.db, tc.dbDriver, 1)
			assert.Equal(t, 47, available)
			assert.Equal(t, 3, reserved)

			require.NoError(t, useCase.ReleaseReservation(context.Background(), 7001))

			available, reserved = testutil.StockLevels(t, ctx.db, tc.dbDriver, 1)
			assert.Equal(t, 50, available)
			assert.Equal(t, 0, reserved)
			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "inventory_reservations",
				"order_id = 7001 AND status = 'CANCELLED'"))

			// Releasing again finds nothing RESERVED and changes nothing.
			require.NoError(t, useCase.ReleaseReservation(context.Background(), 7001))
			available, _ = testutil.StockLevels(t, ctx.db, tc.dbDriver, 1)
			assert.Equal(t, 50, available)
		})
	}
}

// TestIntegration_Inventory_OrderCreatedFlow feeds order-created to the inventory handler
// twice and relays the resulting reply.
func TestIntegration_Inventory_OrderCreatedFlow(t *testing.T) {
	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServiceInventory, "")
			defer teardownIntegrationTest(t, ctx)

			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 1, 10)
			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 2, 10)

			handler, err := ctx.container.InventoryEventHandler()
			require.NoError(t, err)

			payload, err := json.Marshal(messaging.OrderCreated{
				OrderID:     8001,
				UserID:      7,
				TotalAmount: decimal.RequireFromString("59.90"),
				Items: []messaging.OrderItem{
					{ProductID: 2, Quantity: 1},
					{ProductID: 1, Quantity: 2},
				},
			})
			require.NoError(t, err)
			msg := kafka.Message{Topic: messaging.TopicOrderCreated, Key: []byte("8001"), Value: payload}

			require.NoError(t, handler.HandleOrderCreated(context.Background(), msg))
			// Redelivery is skipped by the dedup guard.
			require.NoError(t, handler.HandleOrderCreated(context.Background(), msg))

			assert.Equal(t, 2, testutil.CountRows(t, ctx.db, "inventory_reservations", "order_id = 8001"))
			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "processed_events", ""))
			available, _ := testutil.StockLevels(t, ctx.db, tc.dbDriver, 1)
			assert.Equal(t, 8, available)

			publisher := &recordingPublisher{}
			published, err := ctx.newRelay(t, publisher).ProcessBatch(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, published)

			messages := publisher.Messages()
			require.Len(t, messages, 1)
			assert.Equal(t, messaging.TopicInventoryReserved, messages[0].Topic)
			assert.Equal(t, "8001", messages[0].Key)
			assert.Equal(t, messaging.ContractVersion(messaging.TopicInventoryReserved),
				messages[0].Headers[messaging.HeaderContractVersion])

			reply, err := messaging.Decode[messaging.InventoryReserved](messages[0].Value)
			require.NoError(t, err)
			assert.Equal(t, int64(8001), reply.OrderID)
			assert.True(t, reply.TotalAmount.Equal(decimal.RequireFromString("59.90")))

			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "outbox_events", "status = 'PUBLISHED'"))

			// Nothing is left to relay.
			published, err = ctx.newRelay(t, publisher).ProcessBatch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 0, published)
		})
	}
}

// TestIntegration_Inventory_InsufficientStockReply checks that a rejected reservation is
// answered with inventory-failed and leaves stock untouched.
func TestIntegration_Inventory_InsufficientStockReply(t *testing.T) {
	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServiceInventory, "")
			defer teardownIntegrationTest(t, ctx)

			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 1, 10)
			testutil.SeedInventory(t, ctx.db, tc.dbDriver, 2, 1)

			useCase, err := ctx.container.InventoryUseCase()
			require.NoError(t, err)

			err = useCase.ReserveOrderItems(context.Background(), 8002, []inventoryDomain.StockItem{
				{ProductID: 1, Quantity: 4},
				{ProductID: 2, Quantity: 5},
			}, decimal.NewFromInt(90))
			require.NoError(t, err)

			available, reserved := testutil.StockLevels(t, ctx.db, tc.dbDriver, 1)
			assert.Equal(t, 10, available)
			assert.Equal(t, 0, reserved)
			assert.Equal(t, 0, testutil.CountRows(t, ctx.db, "inventory_reservations", ""))
			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "outbox_events",
				fmt.Sprintf("topic = '%s'", messaging.TopicInventoryFailed)))
		})
	}
}

// TestIntegration_Order_CreateOrderFlow places an order over HTTP with prices served by a
// stub catalog and checks the order-created event waiting in the outbox.
func TestIntegration_Order_CreateOrderFlow(t *testing.T) {
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/batch" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "price": "19.90", "status": "ACTIVE"},
			{"id": 2, "price": "5.00", "status": "ACTIVE"}
		]`))
	}))
	defer catalog.Close()

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServiceOrder, catalog.URL)
			defer teardownIntegrationTest(t, ctx)

			httpSrv, err := ctx.container.HTTPServer(context.Background())
			require.NoError(t, err)
			server := httptest.NewServer(httpSrv.GetHandler())
			defer server.Close()

			body, err := json.Marshal(orderDTO.CreateOrderRequest{
				Items: []orderDTO.OrderItemRequest{
					{ProductID: 1, Quantity: 2},
					{ProductID: 2, Quantity: 1},
				},
			})
			require.NoError(t, err)

			resp, respBody := doRequest(t, http.MethodPost, server.URL+"/v1/orders", body, "42")
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBody))

			var order orderDTO.OrderResponse
			require.NoError(t, json.Unmarshal(respBody, &order))
			assert.Equal(t, int64(42), order.UserID)
			assert.Equal(t, "CREATED", order.Status)
			assert.Equal(t, "44.80", order.TotalAmount)
			assert.Len(t, order.Items, 2)

			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "outbox_events",
				fmt.Sprintf("topic = '%s' AND status = 'PENDING'", messaging.TopicOrderCreated)))

			// Another user cannot read the order.
			resp, _ = doRequest(t, http.MethodGet, fmt.Sprintf("%s/v1/orders/%d", server.URL, order.ID), nil, "43")
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)

			// The owner cancels it and order-cancelled is enqueued.
			resp, respBody = doRequest(t, http.MethodPost,
				fmt.Sprintf("%s/v1/orders/%d/cancel", server.URL, order.ID), nil, "42")
			require.Equal(t, http.StatusNoContent, resp.StatusCode, string(respBody))
			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "outbox_events",
				fmt.Sprintf("topic = '%s'", messaging.TopicOrderCancelled)))
		})
	}
}

// doRequest performs an HTTP request as userID and returns the response and body.
func doRequest(t *testing.T, method, url string, body []byte, userID string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(authHTTP.HeaderUserID, userID)

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// TestIntegration_Outbox_StaleClaimReclaimed simulates a relay that claimed an event and
// died before publishing. A live claim is left alone; once it is stale a second relay
// publishes the event exactly once.
func TestIntegration_Outbox_StaleClaimReclaimed(t *testing.T) {
	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver, config.ServicePayment, "")
			defer teardownIntegrationTest(t, ctx)

			bg := context.Background()
			txManager, err := ctx.container.TxManager()
			require.NoError(t, err)
			enqueuer, err := ctx.container.OutboxEnqueuer()
			require.NoError(t, err)
			outboxRepo, err := ctx.container.OutboxRepository()
			require.NoError(t, err)

			require.NoError(t, txManager.WithTx(bg, func(txCtx context.Context) error {
				return enqueuer.Enqueue(txCtx, messaging.TopicPaymentSuccess, "9001", messaging.TopicPaymentSuccess,
					messaging.PaymentSuccess{OrderID: 9001, TransactionID: "tx-9001"})
			}))

			var eventID int64
			claim := func(at time.Time) {
				require.NoError(t, txManager.WithTx(bg, func(txCtx context.Context) error {
					events, err := outboxRepo.GetClaimable(txCtx, 5, time.Now().Add(time.Hour), 50)
					if err != nil {
						return err
					}
					require.Len(t, events, 1)
					eventID = events[0].ID
					return outboxRepo.MarkInProgress(txCtx, []int64{eventID}, at)
				}))
			}

			publisher := &recordingPublisher{}

			// A claim younger than the in-progress timeout belongs to a live relay.
			claim(time.Now())
			published, err := ctx.newRelay(t, publisher).ProcessBatch(bg)
			require.NoError(t, err)
			assert.Equal(t, 0, published)

			// The same claim two minutes old is abandoned and reclaimed.
			claim(time.Now().Add(-2 * time.Minute))
			published, err = ctx.newRelay(t, publisher).ProcessBatch(bg)
			require.NoError(t, err)
			assert.Equal(t, 1, published)

			published, err = ctx.newRelay(t, publisher).ProcessBatch(bg)
			require.NoError(t, err)
			assert.Equal(t, 0, published)

			messages := publisher.Messages()
			require.Len(t, messages, 1)
			assert.Equal(t, "9001", messages[0].Key)
			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "outbox_events", "status = 'PUBLISHED' AND attempt_count = 3"))

			// The abandoned relay (attempt 2) wakes up and reports its own outcome.
			err = outboxRepo.MarkFailed(bg, eventID, 2, "broker down", time.Now())
			assert.ErrorIs(t, err, outboxDomain.ErrOutboxClaimLost)
			err = outboxRepo.MarkPublished(bg, eventID, 2, time.Now())
			assert.ErrorIs(t, err, outboxDomain.ErrOutboxClaimLost)
			assert.Equal(t, 1, testutil.CountRows(t, ctx.db, "outbox_events", "status = 'PUBLISHED' AND attempt_count = 3"))
		})
	}
}
