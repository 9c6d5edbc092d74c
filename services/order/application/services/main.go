package services

import (
	"github.com/answerking/answerking-api/pkg/app"
	"github.com/answerking/answerking-api/pkg/cache"
	"github.com/answerking/answerking-api/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the order context.
type Services struct {
	Order *OrderService
}

// New wires the order services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOrderRepository(a.Db, a.EventBus)
	catalog := postgres.NewItemCatalog(a.Db)

	var orderCache *cache.OrderCache
	if a.Redis != nil {
		orderCache = cache.NewOrderCache(a.Redis, a.Config.OrderCacheTTL)
	}

	return &Services{
		Order: NewOrderService(repo, catalog, a.Db, orderCache, a.Logger, a.Config.SumDuplicateLines()),
	}
}
