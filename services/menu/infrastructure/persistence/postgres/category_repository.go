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

// CategoryRepository implements repositories.CategoryRepository against PostgreSQL.
// Membership lives in category_items; position keeps the client's order.
type CategoryRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository returns a CategoryRepository. A nil bus disables event publishing.
func NewCategoryRepository(database *database.Database, bus *events.EventBus) *CategoryRepository {
	return &CategoryRepository{db: database, bus: bus}
}

// Save inserts the category and its membership and publishes category.created.
func (r *CategoryRepository) Save(ctx context.Context, c *models.Category) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		id, err := q.InsertCategory(ctx, db.InsertCategoryParams{
			Name:        c.Name.String(),
			Description: nullString(c.Description.String()),
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return menudomain.ErrCategoryAlreadyExists
			}
			return fmt.Errorf("insert category: %w", err)
		}
		c.ID = id
		if err := writeMembership(ctx, q, c); err != nil {
			return err
		}
		if err := loadItems(ctx, q, c); err != nil {
			return err
		}
		return r.publish(ctx, tx, domainevents.TopicCategoryCreated, c)
	})
}

// GetByID loads a category with its items. Returns ErrCategoryNotFound if absent.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	q := db.New(r.db.Querier(ctx))
	row, err := q.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, menudomain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category: %w", err)
	}
	c := rowToCategory(row)
	if err := loadItems(ctx, q, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every category with its items, ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	q := db.New(r.db.Querier(ctx))
	rows, err := q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	cats := make([]*models.Category, len(rows))
	for i, row := range rows {
		cats[i] = rowToCategory(row)
		if err := loadItems(ctx, q, cats[i]); err != nil {
			return nil, err
		}
	}
	return cats, nil
}

// Update locks the category, applies fn, and rewrites its row and membership.
func (r *CategoryRepository) Update(ctx context.Context, id int64, fn func(*models.Category) error) (*models.Category, error) {
	var updated *models.Category
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetCategoryForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return menudomain.ErrCategoryNotFound
			}
			return fmt.Errorf("lock category: %w", err)
		}
		c := rowToCategory(row)
		if err := loadItems(ctx, q, c); err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		if err := q.UpdateCategory(ctx, db.UpdateCategoryParams{
			ID:          c.ID,
			Name:        c.Name.String(),
			Description: nullString(c.Description.String()),
			UpdatedAt:   c.UpdatedAt,
		}); err != nil {
			if database.IsUniqueViolation(err) {
				return menudomain.ErrCategoryAlreadyExists
			}
			return fmt.Errorf("update category: %w", err)
		}
		if err := q.DeleteCategoryItems(ctx, c.ID); err != nil {
			return fmt.Errorf("clear category items: %w", err)
		}
		if err := writeMembership(ctx, q, c); err != nil {
			return err
		}
		if err := loadItems(ctx, q, c); err != nil {
			return err
		}
		updated = c
		return r.publish(ctx, tx, domainevents.TopicCategoryUpdated, c)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Retire marks the category retired. Returns ErrCategoryNotFound if absent.
func (r *CategoryRepository) Retire(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		n, err := q.RetireCategory(ctx, db.RetireCategoryParams{ID: id, UpdatedAt: time.Now().UTC()})
		if err != nil {
			return fmt.Errorf("retire category: %w", err)
		}
		if n == 0 {
			return menudomain.ErrCategoryNotFound
		}
		row, err := q.GetCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("reload category: %w", err)
		}
		c := rowToCategory(row)
		if err := loadItems(ctx, q, c); err != nil {
			return err
		}
		return r.publish(ctx, tx, domainevents.TopicCategoryRetired, c)
	})
}

// Items returns the category's items in membership order.
func (r *CategoryRepository) Items(ctx context.Context, id int64) ([]*models.Item, error) {
	q := db.New(r.db.Querier(ctx))
	if _, err := q.GetCategory(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, menudomain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query category: %w", err)
	}
	rows, err := q.ListCategoryItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query category items: %w", err)
	}
	return rowsToItems(rows), nil
}

func (r *CategoryRepository) publish(ctx context.Context, tx *sql.Tx, topic string, c *models.Category) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.CategoryEvent{
		EventID:    uuid.New(),
		Version:    domainevents.MenuEventVersion,
		CategoryID: c.ID,
		Name:       c.Name.String(),
		ItemIDs:    c.ItemIDs,
		Retired:    c.Retired,
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

func writeMembership(ctx context.Context, q *db.Queries, c *models.Category) error {
	for pos, itemID := range c.ItemIDs {
		if err := q.InsertCategoryItem(ctx, db.InsertCategoryItemParams{
			CategoryID: c.ID,
			ItemID:     itemID,
			Position:   int32(pos), //nolint:gosec // small
		}); err != nil {
			if database.IsForeignKeyViolation(err) {
				return menudomain.ErrUnknownItem
			}
			return fmt.Errorf("insert category item %d: %w", itemID, err)
		}
	}
	return nil
}

func loadItems(ctx context.Context, q *db.Queries, c *models.Category) error {
	rows, err := q.ListCategoryItems(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("query category items: %w", err)
	}
	c.Items = rowsToItems(rows)
	c.ItemIDs = make([]int64, len(c.Items))
	for i, it := range c.Items {
		c.ItemIDs[i] = it.ID
	}
	return nil
}

func rowToCategory(row db.Category) *models.Category {
	return &models.Category{
		ID:          row.ID,
		Name:        models.Name(row.Name),
		Description: models.Description(row.Description.String),
		Retired:     row.Retired,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
