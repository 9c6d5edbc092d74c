// Package memory holds in-process implementations of the menu repositories
// used by the application and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	menudomain "github.com/answerking/answerking-api/services/menu/domain"
	"github.com/answerking/answerking-api/services/menu/domain/models"
	"github.com/answerking/answerking-api/services/menu/domain/repositories"
)

// ItemRepository stores items in a map. Names are unique.
type ItemRepository struct {
	mu         sync.Mutex
	items      map[int64]*models.Item
	referenced map[int64]bool
	nextID     int64
	categories *CategoryRepository
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository returns an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:      make(map[int64]*models.Item),
		referenced: make(map[int64]bool),
	}
}

// MarkOrdered records that an order line points at the item, which makes
// RetireOrDelete retire it instead of deleting it.
func (r *ItemRepository) MarkOrdered(ids ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.referenced[id] = true
	}
}

func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(item.Name, 0) {
		return menudomain.ErrItemAlreadyExists
	}
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = cloneItem(item)
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, menudomain.ErrItemNotFound
	}
	return cloneItem(it), nil
}

func (r *ItemRepository) List(context.Context) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, cloneItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ItemRepository) Update(_ context.Context, id int64, fn func(*models.Item) error) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, menudomain.ErrItemNotFound
	}
	working := cloneItem(it)
	if err := fn(working); err != nil {
		return nil, err
	}
	if r.nameTaken(working.Name, id) {
		return nil, menudomain.ErrItemAlreadyExists
	}
	r.items[id] = cloneItem(working)
	return working, nil
}

func (r *ItemRepository) RetireOrDelete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return false, menudomain.ErrItemNotFound
	}
	if r.referenced[id] || (r.categories != nil && r.categories.contains(id)) {
		it.Retired = true
		return true, nil
	}
	delete(r.items, id)
	return false, nil
}

func (r *ItemRepository) AvailableIDs(_ context.Context, ids []int64) (map[int64]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if it, ok := r.items[id]; ok && !it.Retired {
			out[id] = true
		}
	}
	return out, nil
}

func (r *ItemRepository) nameTaken(name models.Name, except int64) bool {
	for id, it := range r.items {
		if id != except && it.Name == name {
			return true
		}
	}
	return false
}

func (r *ItemRepository) lookup(ids []int64) ([]*models.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Item, 0, len(ids))
	for _, id := range ids {
		it, ok := r.items[id]
		if !ok {
			return nil, false
		}
		out = append(out, cloneItem(it))
	}
	return out, true
}

// CategoryRepository stores categories and resolves their items through an
// ItemRepository, which plays the role of the foreign key.
type CategoryRepository struct {
	mu         sync.Mutex
	categories map[int64]*models.Category
	nextID     int64
	items      *ItemRepository
}

var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository returns an empty CategoryRepository over items and
// registers itself so that items listed in a category are retired, not deleted.
func NewCategoryRepository(items *ItemRepository) *CategoryRepository {
	r := &CategoryRepository{categories: make(map[int64]*models.Category), items: items}
	items.mu.Lock()
	items.categories = r
	items.mu.Unlock()
	return r
}

func (r *CategoryRepository) Save(_ context.Context, c *models.Category) error {
	resolved, ok := r.items.lookup(c.ItemIDs)
	if !ok {
		return menudomain.ErrUnknownItem
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(c.Name, 0) {
		return menudomain.ErrCategoryAlreadyExists
	}
	r.nextID++
	c.ID = r.nextID
	c.Items = resolved
	r.categories[c.ID] = cloneCategory(c)
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int64) (*models.Category, error) {
	r.mu.Lock()
	c, ok := r.categories[id]
	if ok {
		c = cloneCategory(c)
	}
	r.mu.Unlock()
	if !ok {
		return nil, menudomain.ErrCategoryNotFound
	}
	c.Items, _ = r.items.lookup(c.ItemIDs)
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*models.Category, 0, len(ids))
	for _, id := range ids {
		c, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CategoryRepository) Update(_ context.Context, id int64, fn func(*models.Category) error) (*models.Category, error) {
	r.mu.Lock()
	c, ok := r.categories[id]
	if ok {
		c = cloneCategory(c)
	}
	r.mu.Unlock()
	if !ok {
		return nil, menudomain.ErrCategoryNotFound
	}

	// fn may consult the item repository, so it runs without holding r.mu.
	if err := fn(c); err != nil {
		return nil, err
	}
	resolved, ok := r.items.lookup(c.ItemIDs)
	if !ok {
		return nil, menudomain.ErrUnknownItem
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(c.Name, id) {
		return nil, menudomain.ErrCategoryAlreadyExists
	}
	r.categories[id] = cloneCategory(c)
	c.Items = resolved
	return c, nil
}

func (r *CategoryRepository) Retire(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return menudomain.ErrCategoryNotFound
	}
	c.Retired = true
	return nil
}

func (r *CategoryRepository) Items(ctx context.Context, id int64) ([]*models.Item, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

func (r *CategoryRepository) contains(itemID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		for _, id := range c.ItemIDs {
			if id == itemID {
				return true
			}
		}
	}
	return false
}

func (r *CategoryRepository) nameTaken(name models.Name, except int64) bool {
	for id, c := range r.categories {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func cloneItem(it *models.Item) *models.Item {
	c := *it
	if it.Calories != nil {
		cal := *it.Calories
		c.Calories = &cal
	}
	return &c
}

func cloneCategory(c *models.Category) *models.Category {
	out := *c
	out.ItemIDs = append([]int64(nil), c.ItemIDs...)
	out.Items = nil
	return &out
}
