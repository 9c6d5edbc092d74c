package models

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/services/order/domain"
)

// MenuItem is the priced view of a menu item that an order line points at.
type MenuItem struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// OrderLine is one item of an order. SubTotal is always Price × Quantity.
type OrderLine struct {
	ItemID   int64
	ItemName string
	Price    decimal.Decimal
	Quantity int
	SubTotal decimal.Decimal
}

// MaxQuantity is the largest quantity a line may hold; the column is an INTEGER.
const MaxQuantity = math.MaxInt32

// MaxAmount is the largest sub-total or total a NUMERIC(18,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999999999.99")

// ValidateQuantity rejects quantities below one or above MaxQuantity.
func ValidateQuantity(q int) error {
	if q <= 0 || q > MaxQuantity {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// ValidateAmount rejects money amounts above MaxAmount.
func ValidateAmount(d decimal.Decimal) error {
	if d.GreaterThan(MaxAmount) {
		return domain.ErrAmountTooLarge
	}
	return nil
}

func newLine(item MenuItem, quantity int) *OrderLine {
	l := &OrderLine{ItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: quantity}
	l.recompute()
	return l
}

func (l *OrderLine) recompute() {
	l.SubTotal = l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
}
