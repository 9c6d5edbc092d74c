package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/answerking/answerking-api/pkg/app"
	"github.com/answerking/answerking-api/pkg/cache"
	"github.com/answerking/answerking-api/pkg/config"
	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/pkg/events"
	"github.com/answerking/answerking-api/pkg/logger"
	"github.com/answerking/answerking-api/pkg/telemetry"
	menusvcs "github.com/answerking/answerking-api/services/menu/application/services"
	menudomain "github.com/answerking/answerking-api/services/menu/domain"
	menuEvents "github.com/answerking/answerking-api/services/menu/domain/events"
	menupg "github.com/answerking/answerking-api/services/menu/infrastructure/persistence/postgres"
	ordersvcs "github.com/answerking/answerking-api/services/order/application/services"
	orderdomain "github.com/answerking/answerking-api/services/order/domain"
	orderEvents "github.com/answerking/answerking-api/services/order/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	if err := registerSubscribers(subCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		cancelSubs()
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubs()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

type handlerFunc = func(context.Context, *message.Message) error

// registerSubscribers wires the handlers that keep the Redis read models in
// step with committed menu and order changes.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	items := menupg.NewItemRepository(a.Db, nil)
	itemCache := cache.NewMenuItemCache(a.Redis)
	orders := ordersvcs.New(a).Order
	orderCache := cache.NewOrderCache(a.Redis, a.Config.OrderCacheTTL)

	subs := map[string]handlerFunc{
		menuEvents.TopicItemCreated:   refreshItem(a, items, itemCache),
		menuEvents.TopicItemUpdated:   refreshItem(a, items, itemCache),
		menuEvents.TopicItemRetired:   refreshItem(a, items, itemCache),
		menuEvents.TopicItemDeleted:   evictItem(a, itemCache),
		orderEvents.TopicOrderCreated: refreshOrder(a, orders, orderCache),
		orderEvents.TopicOrderUpdated: refreshOrder(a, orders, orderCache),
		orderEvents.TopicOrderDeleted: evictOrder(a, orderCache),
	}

	topics := make([]string, 0, len(subs))
	for topic, handler := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// refreshItem reloads the item named by an item event and rewrites its cache
// entry. Handlers are idempotent since EventBus retries failed deliveries.
func refreshItem(a *app.Application, items *menupg.ItemRepository, itemCache *cache.MenuItemCache) handlerFunc {
	return func(ctx context.Context, msg *message.Message) error {
		var evt menuEvents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		it, err := items.GetByID(ctx, evt.ItemID)
		if errors.Is(err, menudomain.ErrItemNotFound) {
			// Deleted after the event was published.
			return itemCache.Delete(ctx, evt.ItemID)
		}
		if err != nil {
			return err
		}

		if err := itemCache.Set(ctx, menusvcs.ToCachedItem(it)); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "item cache warm failed", "item_id", evt.ItemID, "error", err)
			return nil
		}
		a.Logger.InfoContext(ctx, "item cache warmed", "item_id", evt.ItemID, "retired", evt.Retired)
		return nil
	}
}

func evictItem(a *app.Application, itemCache *cache.MenuItemCache) handlerFunc {
	return func(ctx context.Context, msg *message.Message) error {
		var evt menuEvents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := itemCache.Delete(ctx, evt.ItemID); err != nil {
			a.Logger.WarnContext(ctx, "item cache evict failed", "item_id", evt.ItemID, "error", err)
		}
		return nil
	}
}

// refreshOrder drops the cached order and reads it back through the order
// service, which warms the cache with the committed state.
func refreshOrder(a *app.Application, orders *ordersvcs.OrderService, orderCache *cache.OrderCache) handlerFunc {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := orderCache.Delete(ctx, evt.OrderID); err != nil {
			a.Logger.WarnContext(ctx, "order cache evict failed", "order_id", evt.OrderID, "error", err)
			return nil
		}
		if _, err := orders.Get(ctx, evt.OrderID); err != nil && !errors.Is(err, orderdomain.ErrOrderNotFound) {
			return err
		}
		return nil
	}
}

func evictOrder(a *app.Application, orderCache *cache.OrderCache) handlerFunc {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := orderCache.Delete(ctx, evt.OrderID); err != nil {
			a.Logger.WarnContext(ctx, "order cache evict failed", "order_id", evt.OrderID, "error", err)
		}
		return nil
	}
}
