// Package services contains stateless domain services for the menu bounded context.
package services

import (
	"github.com/answerking/answerking-api/services/menu/domain"
)

// CheckMembership verifies that every id is available for a category.
func CheckMembership(ids []int64, available map[int64]bool) error {
	for _, id := range ids {
		if !available[id] {
			return domain.ErrUnknownItem
		}
	}
	return nil
}
