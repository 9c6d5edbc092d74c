package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/answerking/answerking-api/services/menu/domain/events"
)

func TestItemEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemEvent{
		EventID:    uuid.New(),
		Version:    events.MenuEventVersion,
		ItemID:     3,
		Name:       "Burger",
		Price:      "1.20",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"event_id", "version", "item_id", "name", "price", "retired", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if raw["price"] != "1.20" {
		t.Errorf("price must stay a two-decimal string, got %v", raw["price"])
	}
}

func TestTopics_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range []string{
		events.TopicItemCreated, events.TopicItemUpdated, events.TopicItemRetired, events.TopicItemDeleted,
		events.TopicCategoryCreated, events.TopicCategoryUpdated, events.TopicCategoryRetired,
	} {
		if seen[topic] {
			t.Fatalf("duplicate topic %q", topic)
		}
		seen[topic] = true
	}
}
