// Package services contains stateless domain services for the order bounded context.
// They operate purely on domain types and have no infrastructure dependencies.
package services

import (
	"github.com/answerking/answerking-api/services/order/domain"
	"github.com/answerking/answerking-api/services/order/domain/models"
)

// LineRequest is one requested initial line of a new order.
type LineRequest struct {
	ItemID   int64
	Quantity int
}

// BuildOrder assembles a new pending order from the requested lines.
// Every item must be present in catalog. When sumDuplicates is false a
// repeated item id is rejected, otherwise its quantities are added up.
func BuildOrder(address models.Address, lines []LineRequest, catalog map[int64]models.MenuItem, sumDuplicates bool) (*models.Order, error) {
	o := models.NewOrder(address)
	for _, req := range lines {
		item, ok := catalog[req.ItemID]
		if !ok {
			return nil, domain.ErrUnknownItem
		}
		if _, exists := o.Line(req.ItemID); exists && !sumDuplicates {
			return nil, domain.ErrDuplicateItem
		}
		if err := o.AddLine(item, req.Quantity); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ItemIDs returns the distinct item ids of lines in first-seen order.
func ItemIDs(lines []LineRequest) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}
	return ids
}
