package domain

import "github.com/answerking/answerking-api/pkg/apperr"

// Sentinel errors for the menu domain. Use errors.Is() to check these.
var (
	ErrItemNotFound          = apperr.NotFound("item")
	ErrItemAlreadyExists     = apperr.Conflict("item")
	ErrCategoryNotFound      = apperr.NotFound("category")
	ErrCategoryAlreadyExists = apperr.Conflict("category")

	ErrInvalidName        = apperr.Invalid("name", "must be 1-50 letters, spaces or exclamation marks")
	ErrInvalidDescription = apperr.Invalid("description", "must be at most 200 letters, spaces or .!,# characters")
	ErrInvalidPrice       = apperr.Invalid("price", "must be between 0 and 2147483647 with at most 2 decimal places")
	ErrInvalidStock       = apperr.Invalid("stock", "must be between 0 and 2147483647")
	ErrInvalidCalories    = apperr.Invalid("calories", "must be between 0 and 2147483647")

	// ErrUnknownItem is returned when a category lists an item that does not exist or is retired.
	ErrUnknownItem = apperr.Invalid("items", "references an item that does not exist or is retired")
)
