package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/services/menu/domain/models"
)

// ItemRequest is the request body for POST /items and PUT /items/{id}.
// Price is accepted as a JSON number or string.
type ItemRequest struct {
	Name        string           `json:"name"        validate:"required,max=50,menuname" example:"Cheese Burger"`
	Description string           `json:"description" validate:"omitempty,max=200,menutext" example:"Beef patty, cheddar, bun."`
	Price       *decimal.Decimal `json:"price"       validate:"required,money" swaggertype:"string" example:"4.50"`
	Stock       *int             `json:"stock"       validate:"required,gte=0,lte=2147483647" example:"100"`
	Calories    *int             `json:"calories"    validate:"omitempty,gte=0,lte=2147483647" example:"650"`
} // @name ItemRequest

func (r *ItemRequest) spec() models.ItemSpec {
	return models.ItemSpec{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Stock:       *r.Stock,
		Calories:    r.Calories,
	}
}

// ItemResponse is the JSON form of an item.
type ItemResponse struct {
	ID          int64   `json:"id"          example:"1"`
	Name        string  `json:"name"        example:"Cheese Burger"`
	Description *string `json:"description" example:"Beef patty, cheddar, bun."`
	Price       string  `json:"price"       example:"4.50"`
	Stock       int     `json:"stock"       example:"100"`
	Calories    *int    `json:"calories"    example:"650"`
	Retired     bool    `json:"retired"     example:"false"`
} // @name ItemResponse

// CategoryRequest is the request body for POST /categories and PUT /categories/{id}.
type CategoryRequest struct {
	Name        string                `json:"name"        validate:"required,max=50,menuname" example:"Burgers"`
	Description string                `json:"description" validate:"omitempty,max=200,menutext" example:"Flame grilled."`
	Items       []CategoryItemRequest `json:"items"       validate:"omitempty,dive"`
} // @name CategoryRequest

// CategoryItemRequest references one member item by id. Other fields are ignored.
type CategoryItemRequest struct {
	ID int64 `json:"id" validate:"required,gt=0" example:"1"`
} // @name CategoryItemRequest

func (r *CategoryRequest) spec() models.CategorySpec {
	ids := make([]int64, len(r.Items))
	for i, it := range r.Items {
		ids[i] = it.ID
	}
	return models.CategorySpec{Name: r.Name, Description: r.Description, ItemIDs: ids}
}

// CategoryResponse is the JSON form of a category with its member items.
type CategoryResponse struct {
	ID          int64          `json:"id"          example:"1"`
	Name        string         `json:"name"        example:"Burgers"`
	Description *string        `json:"description" example:"Flame grilled."`
	Retired     bool           `json:"retired"     example:"false"`
	Items       []ItemResponse `json:"items"`
} // @name CategoryResponse

func toItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name.String(),
		Description: optional(it.Description.String()),
		Price:       it.Price.StringFixed(2),
		Stock:       it.Stock,
		Calories:    it.Calories,
		Retired:     it.Retired,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	return resp
}

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name.String(),
		Description: optional(c.Description.String()),
		Retired:     c.Retired,
		Items:       toItemResponses(c.Items),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
