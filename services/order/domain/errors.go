package domain

import "github.com/answerking/answerking-api/pkg/apperr"

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = apperr.NotFound("order")

	// ErrItemNotFound indicates a line references an item that does not exist or is retired.
	ErrItemNotFound = apperr.NotFound("item")

	// ErrUnknownItem is returned on create when an initial line names a missing or retired item.
	ErrUnknownItem = apperr.Invalid("order_items", "references an item that does not exist")

	// ErrDuplicateItem is returned on create when an item repeats and duplicates are rejected.
	ErrDuplicateItem = apperr.Invalid("order_items", "item listed more than once")

	// ErrInvalidQuantity indicates a line quantity outside 1..2147483647, merged quantities included.
	ErrInvalidQuantity = apperr.Invalid("quantity", "must be between 1 and 2147483647")

	// ErrAmountTooLarge indicates a sub-total or total that cannot be stored as NUMERIC(18,2).
	ErrAmountTooLarge = apperr.Invalid("total", "must not exceed 9999999999999999.99")

	// ErrInvalidStatus indicates a status outside the known set.
	ErrInvalidStatus = apperr.Invalid("status", "must be one of Pending, Completed, Cancelled")

	// ErrInvalidAddress indicates an address that is empty, too long or uses forbidden characters.
	ErrInvalidAddress = apperr.Invalid("address", "must be 1-200 letters, digits, spaces, commas or hyphens")
)
