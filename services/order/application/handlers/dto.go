package handlers

import (
	"time"

	"github.com/answerking/answerking-api/services/order/domain/models"
	domainsvcs "github.com/answerking/answerking-api/services/order/domain/services"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	Address    string             `json:"address"     validate:"required,max=200,address" example:"10 Downing Street"`
	OrderItems []OrderItemRequest `json:"order_items" validate:"omitempty,dive"`
} // @name CreateOrderRequest

// OrderItemRequest is one initial line of a new order.
type OrderItemRequest struct {
	ID       int64 `json:"id"       validate:"required,gt=0" example:"1"`
	Quantity int   `json:"quantity" validate:"lte=2147483647" example:"2"`
} // @name OrderItemRequest

// UpdateOrderRequest is the request body for PUT /orders/{id}. Omitted fields are unchanged.
type UpdateOrderRequest struct {
	Address *string `json:"address,omitempty" validate:"omitempty,max=200,address" example:"10 Downing Street"`
	Status  *string `json:"status,omitempty"  example:"Completed"`
} // @name UpdateOrderRequest

// LineQuantityRequest is the request body for PUT /orders/{id}/items/{itemId}.
type LineQuantityRequest struct {
	Quantity int `json:"quantity" validate:"lte=2147483647" example:"3"`
} // @name LineQuantityRequest

// OrderLineResponse is one line of an order. Money fields carry exactly two decimals.
type OrderLineResponse struct {
	ID       int64  `json:"id"        example:"1"`
	Name     string `json:"name"      example:"Burger"`
	Price    string `json:"price"     example:"1.20"`
	Quantity int    `json:"quantity"  example:"2"`
	SubTotal string `json:"sub_total" example:"2.40"`
} // @name OrderLineResponse

// OrderResponse is the JSON form of an order.
type OrderResponse struct {
	ID         int64               `json:"id"          example:"1"`
	Address    string              `json:"address"     example:"10 Downing Street"`
	Status     string              `json:"status"      example:"Pending"`
	OrderItems []OrderLineResponse `json:"order_items"`
	Total      string              `json:"total"       example:"2.40"`
	CreatedAt  time.Time           `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt  time.Time           `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name OrderResponse

func toOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		Address:    o.Address.String(),
		Status:     o.Status.String(),
		OrderItems: make([]OrderLineResponse, len(o.Lines)),
		Total:      o.Total.StringFixed(2),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for i, l := range o.Lines {
		resp.OrderItems[i] = OrderLineResponse{
			ID:       l.ItemID,
			Name:     l.ItemName,
			Price:    l.Price.StringFixed(2),
			Quantity: l.Quantity,
			SubTotal: l.SubTotal.StringFixed(2),
		}
	}
	return resp
}

func toLineRequests(items []OrderItemRequest) []domainsvcs.LineRequest {
	lines := make([]domainsvcs.LineRequest, len(items))
	for i, it := range items {
		lines[i] = domainsvcs.LineRequest{ItemID: it.ID, Quantity: it.Quantity}
	}
	return lines
}
