// Package memory holds in-process implementations of the order repositories.
// They keep the same transactional contract as the PostgreSQL versions and
// back the application and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	orderdomain "github.com/answerking/answerking-api/services/order/domain"
	"github.com/answerking/answerking-api/services/order/domain/models"
	"github.com/answerking/answerking-api/services/order/domain/repositories"
)

// OrderRepository stores orders in a map. Update works on a copy so a failing
// MutateFunc leaves the stored order untouched.
type OrderRepository struct {
	mu     sync.Mutex
	orders map[int64]*models.Order
	nextID int64
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository returns an empty OrderRepository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[int64]*models.Order)}
}

// Len reports how many orders are stored.
func (r *OrderRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *OrderRepository) Save(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	o.ID = r.nextID
	r.orders[o.ID] = clone(o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	return clone(o), nil
}

func (r *OrderRepository) List(context.Context) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, clone(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *OrderRepository) Update(_ context.Context, id int64, _ string, fn repositories.MutateFunc) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	working := clone(o)
	if err := fn(working); err != nil {
		return nil, err
	}
	working.Touch()
	r.orders[id] = clone(working)
	return working, nil
}

func (r *OrderRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return orderdomain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *OrderRepository) RepriceItem(_ context.Context, itemID int64, price decimal.Decimal) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int64
	for id, o := range r.orders {
		if o.Reprice(itemID, price) {
			o.Touch()
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func clone(o *models.Order) *models.Order {
	c := *o
	c.Lines = make([]*models.OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		line := *l
		c.Lines[i] = &line
	}
	return &c
}

// ItemCatalog is a fixed set of available items.
type ItemCatalog map[int64]models.MenuItem

var _ repositories.ItemCatalog = ItemCatalog(nil)

func (c ItemCatalog) FindAvailable(_ context.Context, ids []int64) (map[int64]models.MenuItem, error) {
	out := make(map[int64]models.MenuItem, len(ids))
	for _, id := range ids {
		if it, ok := c[id]; ok {
			out[id] = it
		}
	}
	return out, nil
}
