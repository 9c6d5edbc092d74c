package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	pkgcache "github.com/answerking/answerking-api/pkg/cache"
	"github.com/answerking/answerking-api/pkg/logger"
	orderdomain "github.com/answerking/answerking-api/services/order/domain"
	"github.com/answerking/answerking-api/services/order/domain/models"
	"github.com/answerking/answerking-api/services/order/domain/repositories"
	domainevents "github.com/answerking/answerking-api/services/order/domain/events"
	domainsvcs "github.com/answerking/answerking-api/services/order/domain/services"
)

// Transactor runs fn in one database transaction bound to the context it is given.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderService orchestrates the Order aggregate. Every mutation runs in one
// transaction; event publishing happens there too. Item prices are read in
// the same transaction as the write that uses them.
// Reads go through the Redis order cache when one is configured.
type OrderService struct {
	repo          repositories.OrderRepository
	catalog       repositories.ItemCatalog
	tx            Transactor
	cache         *pkgcache.OrderCache
	log           logger.Logger
	sumDuplicates bool

	ordersCreated metric.Int64Counter
	lineChanges   metric.Int64Counter
}

// NewOrderService returns an OrderService. orderCache may be nil.
func NewOrderService(
	repo repositories.OrderRepository,
	catalog repositories.ItemCatalog,
	tx Transactor,
	orderCache *pkgcache.OrderCache,
	log logger.Logger,
	sumDuplicates bool,
) *OrderService {
	meter := otel.Meter("answerking/order")
	created, _ := meter.Int64Counter("orders_created_total",
		metric.WithDescription("Orders created"))
	lines, _ := meter.Int64Counter("order_line_changes_total",
		metric.WithDescription("Order line additions, updates and removals"))

	return &OrderService{
		repo:          repo,
		catalog:       catalog,
		tx:            tx,
		cache:         orderCache,
		log:           log,
		sumDuplicates: sumDuplicates,
		ordersCreated: created,
		lineChanges:   lines,
	}
}

// Create builds a pending order from address and the initial lines and saves it.
// Unknown or retired items, bad quantities and, under the reject policy,
// repeated items fail validation before anything is written.
func (s *OrderService) Create(ctx context.Context, address string, lines []domainsvcs.LineRequest) (*models.Order, error) {
	addr, err := models.NewAddress(address)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err := models.ValidateQuantity(l.Quantity); err != nil {
			return nil, err
		}
	}

	var o *models.Order
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		catalog, err := s.catalog.FindAvailable(ctx, domainsvcs.ItemIDs(lines))
		if err != nil {
			return fmt.Errorf("find items: %w", err)
		}
		if o, err = domainsvcs.BuildOrder(addr, lines, catalog, s.sumDuplicates); err != nil {
			return err
		}
		if err := s.repo.Save(ctx, o); err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.ordersCreated.Add(ctx, 1)
	return o, nil
}

// Get returns an order, serving it from cache when possible. A miss warms the
// cache unless the order was evicted while it was being read.
func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	var (
		warm    bool
		version int64
	)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		switch {
		case err == nil:
			if o, convErr := fromCached(cached); convErr == nil {
				return o, nil
			}
		case !errors.Is(err, redis.Nil):
			s.log.WarnContext(ctx, "order cache read failed", "order_id", id, "error", err)
		}
		if version, err = s.cache.Version(ctx, id); err == nil {
			warm = true
		}
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if warm {
		if _, err := s.cache.SetIfVersion(ctx, toCached(o), version); err != nil {
			s.log.WarnContext(ctx, "order cache warm failed", "order_id", id, "error", err)
		}
	}
	return o, nil
}

// List returns every order.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateFields applies a partial change of address and status. An invalid
// value rejects the whole change.
func (s *OrderService) UpdateFields(ctx context.Context, id int64, changes models.Changes) (*models.Order, error) {
	o, err := s.repo.Update(ctx, id, domainevents.ReasonFields, func(o *models.Order) error {
		return o.Apply(changes)
	})
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	s.evict(ctx, id)
	return o, nil
}

// SetLine creates the line for itemID or replaces its quantity.
func (s *OrderService) SetLine(ctx context.Context, id, itemID int64, quantity int) (*models.Order, error) {
	if err := models.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	var o *models.Order
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		// An unknown order is reported before an unknown item. The item row
		// is share-locked before the order row, the order a price change
		// takes its locks in.
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		items, err := s.catalog.FindAvailable(ctx, []int64{itemID})
		if err != nil {
			return fmt.Errorf("find item: %w", err)
		}
		item, ok := items[itemID]
		if !ok {
			return orderdomain.ErrItemNotFound
		}
		o, err = s.repo.Update(ctx, id, domainevents.ReasonLineSet, func(o *models.Order) error {
			return o.SetLine(item, quantity)
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set order line: %w", err)
	}
	s.lineChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "set")))
	s.evict(ctx, id)
	return o, nil
}

// RemoveLine drops the line for itemID. Removing a line the order does not
// have succeeds and returns the order unchanged.
func (s *OrderService) RemoveLine(ctx context.Context, id, itemID int64) (*models.Order, error) {
	o, err := s.repo.Update(ctx, id, domainevents.ReasonLineRemoved, func(o *models.Order) error {
		o.RemoveLine(itemID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove order line: %w", err)
	}
	s.lineChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "remove")))
	s.evict(ctx, id)
	return o, nil
}

// Delete removes the order and all of its lines.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.evict(ctx, id)
	return nil
}

// RepriceItem recomputes every order that contains itemID at the new price
// and returns the ids it changed. It joins the caller's transaction when ctx
// carries one; the caller evicts the returned ids once that commits.
func (s *OrderService) RepriceItem(ctx context.Context, itemID int64, price decimal.Decimal) ([]int64, error) {
	ids, err := s.repo.RepriceItem(ctx, itemID, price)
	if err != nil {
		return nil, fmt.Errorf("reprice orders for item %d: %w", itemID, err)
	}
	if len(ids) > 0 {
		s.log.InfoContext(ctx, "orders repriced", "item_id", itemID, "orders", len(ids))
	}
	return ids, nil
}

// EvictOrders drops the cached copies of the given orders.
func (s *OrderService) EvictOrders(ctx context.Context, ids ...int64) {
	s.evict(ctx, ids...)
}

func (s *OrderService) evict(ctx context.Context, ids ...int64) {
	if s.cache == nil || len(ids) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, ids...); err != nil {
		s.log.WarnContext(ctx, "order cache evict failed", "order_ids", ids, "error", err)
	}
}

func toCached(o *models.Order) *pkgcache.CachedOrder {
	c := &pkgcache.CachedOrder{
		ID:        o.ID,
		Address:   o.Address.String(),
		Status:    o.Status.String(),
		Total:     o.Total.StringFixed(2),
		Lines:     make([]pkgcache.CachedOrderLine, len(o.Lines)),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for i, l := range o.Lines {
		c.Lines[i] = pkgcache.CachedOrderLine{
			ItemID:   l.ItemID,
			Name:     l.ItemName,
			Price:    l.Price.StringFixed(2),
			Quantity: l.Quantity,
			SubTotal: l.SubTotal.StringFixed(2),
		}
	}
	return c
}

func fromCached(c *pkgcache.CachedOrder) (*models.Order, error) {
	total, err := decimal.NewFromString(c.Total)
	if err != nil {
		return nil, fmt.Errorf("cached total: %w", err)
	}
	o := &models.Order{
		ID:        c.ID,
		Address:   models.Address(c.Address),
		Status:    models.Status(c.Status),
		Total:     total,
		Lines:     make([]*models.OrderLine, len(c.Lines)),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for i, l := range c.Lines {
		price, err := decimal.NewFromString(l.Price)
		if err != nil {
			return nil, fmt.Errorf("cached price: %w", err)
		}
		sub, err := decimal.NewFromString(l.SubTotal)
		if err != nil {
			return nil, fmt.Errorf("cached sub_total: %w", err)
		}
		o.Lines[i] = &models.OrderLine{ItemID: l.ItemID, ItemName: l.Name, Price: price, Quantity: l.Quantity, SubTotal: sub}
	}
	return o, nil
}
