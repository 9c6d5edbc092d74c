package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
)

// PutOrderLineHandler handles PUT /orders/{id}/items/{itemId} requests.
type PutOrderLineHandler struct {
	svc *appsvcs.Services
}

func NewPutOrderLineHandler(svc *appsvcs.Services) *PutOrderLineHandler {
	return &PutOrderLineHandler{svc: svc}
}

// Execute adds the item to the order or replaces its quantity.
//
//	@Summary	Set order line
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Order ID"
//	@Param		itemId	path		int					true	"Item ID"
//	@Param		request	body		LineQuantityRequest	true	"New quantity"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/orders/{id}/items/{itemId} [put]
func (h *PutOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	itemID, err := httpx.PathID(r, "itemId")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[LineQuantityRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.SetLine(r.Context(), id, itemID, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
