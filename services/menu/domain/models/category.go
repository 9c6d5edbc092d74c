package models

import (
	"time"

	"github.com/answerking/answerking-api/services/menu/domain"
)

// Category groups items. ItemIDs is an ordered set; Items is filled on reads.
type Category struct {
	ID          int64
	Name        Name
	Description Description
	Retired     bool
	ItemIDs     []int64
	Items       []*Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategorySpec carries the client-settable fields of a category.
type CategorySpec struct {
	Name        string
	Description string
	ItemIDs     []int64
}

// NewCategory validates spec and returns an unsaved category.
func NewCategory(spec CategorySpec) (*Category, error) {
	now := time.Now().UTC()
	c := &Category{CreatedAt: now, UpdatedAt: now}
	if err := c.Replace(spec); err != nil {
		return nil, err
	}
	return c, nil
}

// Replace overwrites name, description and membership. Duplicate item ids
// collapse to their first occurrence. A rejected spec changes nothing.
func (c *Category) Replace(spec CategorySpec) error {
	name, err := NewName(spec.Name)
	if err != nil {
		return err
	}
	desc, err := NewDescription(spec.Description)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(spec.ItemIDs))
	seen := make(map[int64]struct{}, len(spec.ItemIDs))
	for _, id := range spec.ItemIDs {
		if id <= 0 {
			return domain.ErrUnknownItem
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	c.Name, c.Description, c.ItemIDs = name, desc, ids
	c.UpdatedAt = time.Now().UTC()
	return nil
}
