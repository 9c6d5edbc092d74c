package postgres

import (
	"context"
	"fmt"

	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/services/order/domain/models"
	"github.com/answerking/answerking-api/services/order/domain/repositories"
	"github.com/answerking/answerking-api/services/order/infrastructure/persistence/postgres/db"
)

// ItemCatalog reads priced menu items for order lines straight from the items table.
type ItemCatalog struct {
	db *database.Database
}

var _ repositories.ItemCatalog = (*ItemCatalog)(nil)

// NewItemCatalog returns an ItemCatalog backed by the given pool.
func NewItemCatalog(database *database.Database) *ItemCatalog {
	return &ItemCatalog{db: database}
}

// FindAvailable returns the non-retired items among ids, keyed by id.
// Missing ids are simply absent from the result. Inside a transaction bound
// to ctx the rows stay share-locked until commit, so a concurrent price
// change waits for the order write that read the old price.
func (c *ItemCatalog) FindAvailable(ctx context.Context, ids []int64) (map[int64]models.MenuItem, error) {
	found := make(map[int64]models.MenuItem, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	rows, err := db.New(c.db.Querier(ctx)).FindAvailableItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	for _, row := range rows {
		found[row.ID] = models.MenuItem{ID: row.ID, Name: row.Name, Price: row.Price}
	}
	return found, nil
}
