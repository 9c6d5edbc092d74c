package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the menu repositories inside the write transaction.
const (
	TopicItemCreated     = "item.created"
	TopicItemUpdated     = "item.updated"
	TopicItemRetired     = "item.retired"
	TopicItemDeleted     = "item.deleted"
	TopicCategoryCreated = "category.created"
	TopicCategoryUpdated = "category.updated"
	TopicCategoryRetired = "category.retired"
)

// MenuEventVersion is the schema version of ItemEvent and CategoryEvent.
const MenuEventVersion = 1

// ItemEvent is the payload of every item topic.
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	Retired    bool      `json:"retired"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CategoryEvent is the payload of every category topic.
type CategoryEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CategoryID int64     `json:"category_id"`
	Name       string    `json:"name"`
	ItemIDs    []int64   `json:"item_ids"`
	Retired    bool      `json:"retired"`
	OccurredAt time.Time `json:"occurred_at"`
}
