package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/services/order/domain/models"
)

// MutateFunc changes a loaded order. Returning an error aborts the
// transaction and nothing is persisted.
type MutateFunc func(o *models.Order) error

// OrderRepository is the persistence interface for the Order aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Every write persists the order row, its full line set and its total together.
type OrderRepository interface {
	// Save inserts a new order with its lines and assigns o.ID.
	Save(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)

	// Update locks the order, applies fn and persists the result in one
	// transaction. Returns ErrOrderNotFound if the order does not exist.
	Update(ctx context.Context, id int64, reason string, fn MutateFunc) (*models.Order, error)

	// Delete removes the order and its lines. Returns ErrOrderNotFound if absent.
	Delete(ctx context.Context, id int64) error

	// RepriceItem recomputes every order that has a line for itemID and
	// returns the ids of the orders it changed.
	RepriceItem(ctx context.Context, itemID int64, price decimal.Decimal) ([]int64, error)
}

// ItemCatalog resolves item ids to their current name and price.
// Retired items are treated as absent.
type ItemCatalog interface {
	FindAvailable(ctx context.Context, ids []int64) (map[int64]models.MenuItem, error)
}
