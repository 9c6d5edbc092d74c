package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/pkg/events"
	orderdomain "github.com/answerking/answerking-api/services/order/domain"
	domainevents "github.com/answerking/answerking-api/services/order/domain/events"
	"github.com/answerking/answerking-api/services/order/domain/models"
	"github.com/answerking/answerking-api/services/order/domain/repositories"
	"github.com/answerking/answerking-api/services/order/infrastructure/persistence/postgres/db"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository returns an OrderRepository backed by the given pool and
// event bus. A nil bus disables event publishing.
func NewOrderRepository(database *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: database, bus: bus}
}

// Save inserts the order and its lines and publishes order.created in the same transaction.
func (r *OrderRepository) Save(ctx context.Context, o *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		id, err := q.InsertOrder(ctx, db.InsertOrderParams{
			Address:   o.Address.String(),
			Status:    o.Status.String(),
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert order: %w", mapWriteError(err))
		}
		if err := insertLines(ctx, q, id, o.Lines); err != nil {
			return err
		}
		o.ID = id
		return r.publish(ctx, tx, domainevents.TopicOrderCreated, o, "")
	})
}

// GetByID loads the order with its lines. Returns ErrOrderNotFound if absent.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	q := db.New(r.db.Querier(ctx))
	return loadOrder(ctx, q, q.GetOrder, id)
}

// List returns every order with its lines, ordered by id.
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	q := db.New(r.db.Querier(ctx))
	rows, err := q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	orders := make([]*models.Order, len(rows))
	byID := make(map[int64]*models.Order, len(rows))
	ids := make([]int64, len(rows))
	for i, row := range rows {
		orders[i] = rowToOrder(row)
		byID[row.ID] = orders[i]
		ids[i] = row.ID
	}

	lines, err := q.ListOrderLinesByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	for _, l := range lines {
		o := byID[l.OrderID]
		o.Lines = append(o.Lines, &models.OrderLine{
			ItemID:   l.ItemID,
			ItemName: l.Name,
			Price:    l.Price,
			Quantity: int(l.Quantity),
			SubTotal: l.SubTotal,
		})
	}
	return orders, nil
}

// Update locks the order row, applies fn, and writes the order row and its
// full line set back. The order.updated event carries reason.
func (r *OrderRepository) Update(ctx context.Context, id int64, reason string, fn repositories.MutateFunc) (*models.Order, error) {
	var updated *models.Order
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		o, err := loadOrder(ctx, q, q.GetOrderForUpdate, id)
		if err != nil {
			return err
		}
		if err := fn(o); err != nil {
			return err
		}
		o.Touch()
		if err := writeOrder(ctx, q, o); err != nil {
			return err
		}
		updated = o
		return r.publish(ctx, tx, domainevents.TopicOrderUpdated, o, reason)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the order; its lines go with it through ON DELETE CASCADE.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.DeleteOrderLines(ctx, id); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		n, err := q.DeleteOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}
		return r.publish(ctx, tx, domainevents.TopicOrderDeleted, &models.Order{ID: id}, "")
	})
}

// RepriceItem applies price to every order holding itemID. Orders are locked
// in id order so concurrent reprices cannot deadlock each other.
func (r *OrderRepository) RepriceItem(ctx context.Context, itemID int64, price decimal.Decimal) ([]int64, error) {
	var changed []int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		ids, err := q.LockOrdersWithItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("lock orders for item %d: %w", itemID, err)
		}
		for _, id := range ids {
			o, err := loadOrder(ctx, q, q.GetOrder, id)
			if err != nil {
				return err
			}
			if !o.Reprice(itemID, price) {
				continue
			}
			o.Touch()
			if err := writeOrder(ctx, q, o); err != nil {
				return err
			}
			if err := r.publish(ctx, tx, domainevents.TopicOrderUpdated, o, domainevents.ReasonReprice); err != nil {
				return err
			}
			changed = append(changed, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

func (r *OrderRepository) publish(ctx context.Context, tx *sql.Tx, topic string, o *models.Order, reason string) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.OrderEvent{
		EventID:    uuid.New(),
		Version:    domainevents.OrderEventVersion,
		OrderID:    o.ID,
		LineCount:  len(o.Lines),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	if topic != domainevents.TopicOrderDeleted {
		evt.Status = o.Status.String()
		evt.Total = o.Total.StringFixed(2)
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

func loadOrder(ctx context.Context, q *db.Queries, get func(context.Context, int64) (db.Order, error), id int64) (*models.Order, error) {
	row, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	o := rowToOrder(row)

	lines, err := q.ListOrderLines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	o.Lines = make([]*models.OrderLine, len(lines))
	for i, l := range lines {
		o.Lines[i] = &models.OrderLine{
			ItemID:   l.ItemID,
			ItemName: l.Name,
			Price:    l.Price,
			Quantity: int(l.Quantity),
			SubTotal: l.SubTotal,
		}
	}
	return o, nil
}

// writeOrder replaces the stored line set and order row with o.
func writeOrder(ctx context.Context, q *db.Queries, o *models.Order) error {
	if err := q.DeleteOrderLines(ctx, o.ID); err != nil {
		return fmt.Errorf("clear order lines: %w", err)
	}
	if err := insertLines(ctx, q, o.ID, o.Lines); err != nil {
		return err
	}
	if err := q.UpdateOrder(ctx, db.UpdateOrderParams{
		ID:        o.ID,
		Address:   o.Address.String(),
		Status:    o.Status.String(),
		Total:     o.Total,
		UpdatedAt: o.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("update order: %w", mapWriteError(err))
	}
	return nil
}

func insertLines(ctx context.Context, q *db.Queries, orderID int64, lines []*models.OrderLine) error {
	for _, l := range lines {
		if err := q.InsertOrderLine(ctx, db.InsertOrderLineParams{
			OrderID:  orderID,
			ItemID:   l.ItemID,
			Quantity: int32(l.Quantity), //nolint:gosec // ValidateQuantity caps it at MaxQuantity
			SubTotal: l.SubTotal,
		}); err != nil {
			return fmt.Errorf("insert order line for item %d: %w", l.ItemID, mapWriteError(err))
		}
	}
	return nil
}

// mapWriteError turns constraint violations into domain errors. A line whose
// item vanished between lookup and insert fails the foreign key; a reprice
// that pushes a total past NUMERIC(18,2) overflows.
func mapWriteError(err error) error {
	switch {
	case database.IsNumericOutOfRange(err):
		return orderdomain.ErrAmountTooLarge
	case database.IsForeignKeyViolation(err):
		return orderdomain.ErrItemNotFound
	case database.IsCheckViolation(err):
		return orderdomain.ErrInvalidQuantity
	}
	return err
}

func rowToOrder(row db.Order) *models.Order {
	return &models.Order{
		ID:        row.ID,
		Address:   models.Address(row.Address),
		Status:    models.Status(row.Status),
		Total:     row.Total,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
