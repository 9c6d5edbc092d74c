package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTopics(t *testing.T) {
	topics := map[string]string{
		TopicOrderCreated: "order.created",
		TopicOrderUpdated: "order.updated",
		TopicOrderDeleted: "order.deleted",
	}
	for got, want := range topics {
		if got != want {
			t.Errorf("topic %q, want %q", got, want)
		}
	}
}

func TestOrderEvent_JSONFields(t *testing.T) {
	evt := OrderEvent{
		EventID:    uuid.New(),
		Version:    OrderEventVersion,
		OrderID:    12,
		Status:     "Pending",
		Total:      "5.10",
		LineCount:  2,
		OccurredAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"event_id", "version", "order_id", "status", "total", "line_count", "occurred_at"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, raw)
		}
	}
	if _, ok := m["reason"]; ok {
		t.Error("empty reason must be omitted")
	}
}
