package services

import (
	"github.com/answerking/answerking-api/pkg/app"
	"github.com/answerking/answerking-api/pkg/cache"
	"github.com/answerking/answerking-api/services/menu/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the menu context.
type Services struct {
	Item     *ItemService
	Category *CategoryService
}

// New wires the menu services with infrastructure from the Application container.
// repricer is the order context's entry point for item price changes; it may be nil.
func New(a *app.Application, repricer Repricer) *Services {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	categories := postgres.NewCategoryRepository(a.Db, a.EventBus)

	var itemCache *cache.MenuItemCache
	if a.Redis != nil {
		itemCache = cache.NewMenuItemCache(a.Redis)
	}

	return &Services{
		Item:     NewItemService(items, a.Db, repricer, itemCache, a.Logger),
		Category: NewCategoryService(categories, items, a.Logger),
	}
}
