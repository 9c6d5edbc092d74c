package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/services/menu/domain"
)

// MaxNumber bounds price, stock and calories.
const MaxNumber = 2147483647

var maxPrice = decimal.NewFromInt(MaxNumber)

// ItemSpec carries the client-settable fields of an item.
type ItemSpec struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Calories    *int
}

// Item is a menu item. A retired item stays in the database for the orders
// and categories that reference it but can no longer be ordered.
type Item struct {
	ID          int64
	Name        Name
	Description Description
	Price       decimal.Decimal
	Stock       int
	Calories    *int
	Retired     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem validates spec and returns an unsaved item.
func NewItem(spec ItemSpec) (*Item, error) {
	now := time.Now().UTC()
	it := &Item{CreatedAt: now, UpdatedAt: now}
	if err := it.apply(spec); err != nil {
		return nil, err
	}
	return it, nil
}

// Replace overwrites every settable field. It reports whether the price
// changed. A rejected spec leaves the item untouched.
func (it *Item) Replace(spec ItemSpec) (priceChanged bool, err error) {
	next := *it
	if err := next.apply(spec); err != nil {
		return false, err
	}
	priceChanged = !next.Price.Equal(it.Price)
	next.UpdatedAt = time.Now().UTC()
	*it = next
	return priceChanged, nil
}

func (it *Item) apply(spec ItemSpec) error {
	name, err := NewName(spec.Name)
	if err != nil {
		return err
	}
	desc, err := NewDescription(spec.Description)
	if err != nil {
		return err
	}
	if err := ValidatePrice(spec.Price); err != nil {
		return err
	}
	if spec.Stock < 0 || spec.Stock > MaxNumber {
		return domain.ErrInvalidStock
	}
	if spec.Calories != nil && (*spec.Calories < 0 || *spec.Calories > MaxNumber) {
		return domain.ErrInvalidCalories
	}
	it.Name, it.Description = name, desc
	it.Price = spec.Price.Round(2)
	it.Stock = spec.Stock
	it.Calories = spec.Calories
	return nil
}

// ValidatePrice accepts 0 <= p <= MaxNumber with at most two decimal places.
func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(maxPrice) || !p.Equal(p.Truncate(2)) {
		return domain.ErrInvalidPrice
	}
	return nil
}
