package models

import "github.com/answerking/answerking-api/services/order/domain"

// Status is the order status label. The set is closed.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var statuses = []Status{StatusPending, StatusCompleted, StatusCancelled}

// Statuses returns every valid status in display order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// ParseStatus returns the Status named by s. Matching is exact.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", domain.ErrInvalidStatus
}

func (s Status) String() string { return string(s) }
