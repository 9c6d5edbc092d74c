package repositories

import (
	"context"

	"github.com/answerking/answerking-api/services/menu/domain/models"
)

// ItemRepository is the persistence interface for menu items.
type ItemRepository interface {
	// Save inserts item and assigns its ID. Returns ErrItemAlreadyExists on a name clash.
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)

	// Update locks the item, applies fn and persists the result.
	Update(ctx context.Context, id int64, fn func(*models.Item) error) (*models.Item, error)

	// RetireOrDelete retires the item when an order line or category still
	// references it and deletes it otherwise. It reports which happened.
	RetireOrDelete(ctx context.Context, id int64) (retired bool, err error)

	// AvailableIDs returns the subset of ids that exist and are not retired.
	AvailableIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// CategoryRepository is the persistence interface for categories and their membership.
type CategoryRepository interface {
	Save(ctx context.Context, c *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, id int64, fn func(*models.Category) error) (*models.Category, error)
	Retire(ctx context.Context, id int64) error

	// Items returns the category's items in membership order.
	Items(ctx context.Context, id int64) ([]*models.Item, error)
}
