package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root. Lines are owned by the order, kept in
// insertion order, and hold at most one line per item. Total always equals
// the rounded sum of line sub-totals after any exported mutation returns.
type Order struct {
	ID        int64
	Address   Address
	Status    Status
	Lines     []*OrderLine
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder returns a pending order with no lines and a zero total.
func NewOrder(address Address) *Order {
	now := time.Now().UTC()
	return &Order{
		Address:   address,
		Status:    StatusPending,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Line returns the line for itemID.
func (o *Order) Line(itemID int64) (*OrderLine, bool) {
	for _, l := range o.Lines {
		if l.ItemID == itemID {
			return l, true
		}
	}
	return nil, false
}

// AddLine adds quantity of item, merging into an existing line for the same
// item. The merged quantity is bounded like any other.
func (o *Order) AddLine(item MenuItem, quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if l, ok := o.Line(item.ID); ok {
		quantity += l.Quantity
	}
	return o.putLine(item, quantity)
}

// SetLine creates the line for item or replaces its quantity. A rejected
// quantity leaves the order untouched.
func (o *Order) SetLine(item MenuItem, quantity int) error {
	return o.putLine(item, quantity)
}

// putLine checks the resulting line and order total before touching o.
func (o *Order) putLine(item MenuItem, quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	next := newLine(item, quantity)
	if err := ValidateAmount(next.SubTotal); err != nil {
		return err
	}

	total := next.SubTotal
	for _, l := range o.Lines {
		if l.ItemID != item.ID {
			total = total.Add(l.SubTotal)
		}
	}
	total = total.Round(2)
	if err := ValidateAmount(total); err != nil {
		return err
	}

	if l, ok := o.Line(item.ID); ok {
		*l = *next
	} else {
		o.Lines = append(o.Lines, next)
	}
	o.Total = total
	return nil
}

// RemoveLine drops the line for itemID. Removing an absent line is a no-op;
// the return value reports whether anything changed.
func (o *Order) RemoveLine(itemID int64) bool {
	for i, l := range o.Lines {
		if l.ItemID == itemID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			o.RecomputeTotal()
			return true
		}
	}
	return false
}

// Reprice applies a new unit price to the line for itemID, if any.
func (o *Order) Reprice(itemID int64, price decimal.Decimal) bool {
	l, ok := o.Line(itemID)
	if !ok {
		return false
	}
	l.Price = price
	l.recompute()
	o.RecomputeTotal()
	return true
}

// Changes is a partial update of the order's own fields. Nil means unchanged.
type Changes struct {
	Address *string
	Status  *string
}

// Apply validates every provided field before mutating any of them.
func (o *Order) Apply(c Changes) error {
	var (
		address = o.Address
		status  = o.Status
		err     error
	)
	if c.Address != nil {
		if address, err = NewAddress(*c.Address); err != nil {
			return err
		}
	}
	if c.Status != nil {
		if status, err = ParseStatus(*c.Status); err != nil {
			return err
		}
	}
	o.Address, o.Status = address, status
	return nil
}

// Touch sets UpdatedAt to now.
func (o *Order) Touch() {
	o.UpdatedAt = time.Now().UTC()
}

// RecomputeTotal sets Total from the current lines and returns it.
func (o *Order) RecomputeTotal() decimal.Decimal {
	o.Total = RecomputeTotal(o.Lines)
	return o.Total
}

// RecomputeTotal returns the sum of line sub-totals rounded half away from
// zero to two decimal places.
func RecomputeTotal(lines []*OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.SubTotal)
	}
	return total.Round(2)
}
