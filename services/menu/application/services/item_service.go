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
	"github.com/answerking/answerking-api/services/menu/domain/models"
	"github.com/answerking/answerking-api/services/menu/domain/repositories"
)

// Repricer recomputes the orders that contain an item after its price changed.
// RepriceItem joins the transaction bound to ctx and returns the ids of the
// orders it changed; EvictOrders drops their cached copies once that commits.
type Repricer interface {
	RepriceItem(ctx context.Context, itemID int64, price decimal.Decimal) ([]int64, error)
	EvictOrders(ctx context.Context, orderIDs ...int64)
}

// Transactor runs fn in one database transaction bound to the context it is given.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ItemService manages menu items.
type ItemService struct {
	repo     repositories.ItemRepository
	tx       Transactor
	repricer Repricer
	cache    *pkgcache.MenuItemCache
	log      logger.Logger

	itemChanges metric.Int64Counter
}

// NewItemService returns an ItemService. repricer and itemCache may be nil.
func NewItemService(
	repo repositories.ItemRepository,
	tx Transactor,
	repricer Repricer,
	itemCache *pkgcache.MenuItemCache,
	log logger.Logger,
) *ItemService {
	changes, _ := otel.Meter("answerking/menu").Int64Counter("menu_item_changes_total",
		metric.WithDescription("Menu item creations, replacements and removals"))

	return &ItemService{
		repo:        repo,
		tx:          tx,
		repricer:    repricer,
		cache:       itemCache,
		log:         log,
		itemChanges: changes,
	}
}

// List returns every item, retired ones included.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns an item, reading through the item cache when one is configured.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			if it, convErr := fromCachedItem(cached); convErr == nil {
				return it, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, ToCachedItem(it)); err != nil {
			s.log.WarnContext(ctx, "item cache warm failed", "item_id", id, "error", err)
		}
	}
	return it, nil
}

// Create validates spec and saves a new item.
func (s *ItemService) Create(ctx context.Context, spec models.ItemSpec) (*models.Item, error) {
	it, err := models.NewItem(spec)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	s.itemChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "create")))
	return it, nil
}

// Replace overwrites every field of the item. A price change reprices every
// order holding the item in the same transaction. Caches are evicted only
// after the transaction commits.
func (s *ItemService) Replace(ctx context.Context, id int64, spec models.ItemSpec) (*models.Item, error) {
	var (
		updated  *models.Item
		repriced []int64
	)
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		priceChanged := false
		var err error
		updated, err = s.repo.Update(ctx, id, func(it *models.Item) error {
			var rerr error
			priceChanged, rerr = it.Replace(spec)
			return rerr
		})
		if err != nil {
			return err
		}
		if priceChanged && s.repricer != nil {
			repriced, err = s.repricer.RepriceItem(ctx, id, updated.Price)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("replace item: %w", err)
	}
	s.itemChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "replace")))
	s.evict(ctx, id)
	if len(repriced) > 0 {
		s.repricer.EvictOrders(ctx, repriced...)
	}
	return updated, nil
}

// Delete retires the item when orders or categories still reference it and
// removes it otherwise.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	retired, err := s.repo.RetireOrDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	op := "delete"
	if retired {
		op = "retire"
	}
	s.log.InfoContext(ctx, "item removed", "item_id", id, "op", op)
	s.itemChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	s.evict(ctx, id)
	return nil
}

func (s *ItemService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "item cache evict failed", "item_id", id, "error", err)
	}
}

// ToCachedItem converts an item to its cache read model.
func ToCachedItem(it *models.Item) *pkgcache.CachedMenuItem {
	return &pkgcache.CachedMenuItem{
		ID:          it.ID,
		Name:        it.Name.String(),
		Description: it.Description.String(),
		Price:       it.Price.StringFixed(2),
		Stock:       it.Stock,
		Calories:    it.Calories,
		Retired:     it.Retired,
	}
}

func fromCachedItem(c *pkgcache.CachedMenuItem) (*models.Item, error) {
	price, err := decimal.NewFromString(c.Price)
	if err != nil {
		return nil, fmt.Errorf("cached price: %w", err)
	}
	return &models.Item{
		ID:          c.ID,
		Name:        models.Name(c.Name),
		Description: models.Description(c.Description),
		Price:       price,
		Stock:       c.Stock,
		Calories:    c.Calories,
		Retired:     c.Retired,
	}, nil
}
