package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the order repository inside the write transaction.
const (
	TopicOrderCreated = "order.created"
	TopicOrderUpdated = "order.updated"
	TopicOrderDeleted = "order.deleted"
)

// Reasons carried by order.updated events.
const (
	ReasonFields      = "fields"
	ReasonLineSet     = "line_set"
	ReasonLineRemoved = "line_removed"
	ReasonReprice     = "reprice"
)

// OrderEventVersion is the schema version of OrderEvent.
const OrderEventVersion = 1

// OrderEvent is the payload of every order topic.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicOrderUpdated, ...).
type OrderEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status,omitempty"`
	Total      string    `json:"total,omitempty"`
	LineCount  int       `json:"line_count"`
	Reason     string    `json:"reason,omitempty"` // what changed: fields, line_set, line_removed, reprice
	OccurredAt time.Time `json:"occurred_at"`
}
