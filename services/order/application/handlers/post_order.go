package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
)

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a new order.
//
//	@Summary		Create order
//	@Description	Creates a pending order, optionally with initial lines
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order creation request"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.Create(r.Context(), req.Address, toLineRequests(req.OrderItems))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
