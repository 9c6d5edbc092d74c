package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/pkg/events"
	menudomain "github.com/answerking/answerking-api/services/menu/domain"
	domainevents "github.com/answerking/answerking-api/services/menu/domain/events"
	"github.com/answerking/answerking-api/services/menu/domain/models"
	"github.com/answerking/answerking-api/services/menu/domain/repositories"
	"github.com/answerking/answerking-api/services/menu/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository returns an ItemRepository. A nil bus disables event publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save persists a new item and publishes item.created within the same transaction.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			Name:        item.Name.String(),
			Description: nullString(item.Description.String()),
			Price:       item.Price,
			Stock:       int32(item.Stock), //nolint:gosec // bounded by models.MaxNumber
			Calories:    nullInt32(item.Calories),
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return menudomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}
		item.ID = id
		return r.publish(ctx, tx, domainevents.TopicItemCreated, item)
	})
}

// GetByID retrieves an item. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row, err := db.New(r.db.Querier(ctx)).GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, menudomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// List returns every item, retired ones included, ordered by id.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := db.New(r.db.Querier(ctx)).ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return rowsToItems(rows), nil
}

// Update locks the item row, applies fn and writes the result back, publishing
// item.updated in the same transaction.
func (r *ItemRepository) Update(ctx context.Context, id int64, fn func(*models.Item) error) (*models.Item, error) {
	var updated *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetItemForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return menudomain.ErrItemNotFound
			}
			return fmt.Errorf("lock item: %w", err)
		}
		item := rowToItem(row)
		if err := fn(item); err != nil {
			return err
		}
		if err := q.UpdateItem(ctx, db.UpdateItemParams{
			ID:          item.ID,
			Name:        item.Name.String(),
			Description: nullString(item.Description.String()),
			Price:       item.Price,
			Stock:       int32(item.Stock), //nolint:gosec // bounded by models.MaxNumber
			Calories:    nullInt32(item.Calories),
			Retired:     item.Retired,
			UpdatedAt:   item.UpdatedAt,
		}); err != nil {
			if database.IsUniqueViolation(err) {
				return menudomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("update item: %w", err)
		}
		updated = item
		return r.publish(ctx, tx, domainevents.TopicItemUpdated, item)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RetireOrDelete retires a referenced item and deletes an unreferenced one.
func (r *ItemRepository) RetireOrDelete(ctx context.Context, id int64) (bool, error) {
	var retired bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetItemForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return menudomain.ErrItemNotFound
			}
			return fmt.Errorf("lock item: %w", err)
		}
		item := rowToItem(row)

		referenced, err := q.ItemIsReferenced(ctx, id)
		if err != nil {
			return fmt.Errorf("check item references: %w", err)
		}

		if referenced {
			item.Retired, item.UpdatedAt = true, time.Now().UTC()
			if _, err := q.RetireItem(ctx, db.RetireItemParams{ID: id, UpdatedAt: item.UpdatedAt}); err != nil {
				return fmt.Errorf("retire item: %w", err)
			}
			retired = true
			return r.publish(ctx, tx, domainevents.TopicItemRetired, item)
		}

		if _, err := q.DeleteItem(ctx, id); err != nil {
			if database.IsForeignKeyViolation(err) {
				return fmt.Errorf("delete item %d: still referenced: %w", id, err)
			}
			return fmt.Errorf("delete item: %w", err)
		}
		return r.publish(ctx, tx, domainevents.TopicItemDeleted, item)
	})
	return retired, err
}

// AvailableIDs returns the subset of ids that exist and are not retired.
func (r *ItemRepository) AvailableIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	available := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return available, nil
	}
	found, err := db.New(r.db.Querier(ctx)).ListAvailableItemIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query available items: %w", err)
	}
	for _, id := range found {
		available[id] = true
	}
	return available, nil
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, item *models.Item) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.ItemEvent{
		EventID:    uuid.New(),
		Version:    domainevents.MenuEventVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Price:      item.Price.StringFixed(2),
		Retired:    item.Retired,
		OccurredAt: time.Now().UTC(),
	}
	msg, err := events.NewMessage(ctx, evt.EventID.String(), evt.Version, evt)
	if err != nil {
		return err
	}
	if err := r.bus.PublishTx(tx, topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func rowToItem(row db.Item) *models.Item {
	it := &models.Item{
		ID:          row.ID,
		Name:        models.Name(row.Name),
		Description: models.Description(row.Description.String),
		Price:       row.Price,
		Stock:       int(row.Stock),
		Retired:     row.Retired,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Calories.Valid {
		cal := int(row.Calories.Int32)
		it.Calories = &cal
	}
	return it
}

func rowsToItems(rows []db.Item) []*models.Item {
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt32(p *int) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*p), Valid: true} //nolint:gosec // bounded by models.MaxNumber
}
