package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
)

// DeleteOrderLineHandler handles DELETE /orders/{id}/items/{itemId} requests.
type DeleteOrderLineHandler struct {
	svc *appsvcs.Services
}

func NewDeleteOrderLineHandler(svc *appsvcs.Services) *DeleteOrderLineHandler {
	return &DeleteOrderLineHandler{svc: svc}
}

// Execute removes the item's line. Removing an absent line still returns 200
// with the unchanged order.
//
//	@Summary	Remove order line
//	@Tags		orders
//	@Produce	json
//	@Param		id		path		int	true	"Order ID"
//	@Param		itemId	path		int	true	"Item ID"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/orders/{id}/items/{itemId} [delete]
func (h *DeleteOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.svc.Order.RemoveLine(r.Context(), id, itemID)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
