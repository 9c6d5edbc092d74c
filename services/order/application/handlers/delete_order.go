package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
)

// DeleteOrderHandler handles DELETE /orders/{id} requests.
type DeleteOrderHandler struct {
	svc *appsvcs.Services
}

func NewDeleteOrderHandler(svc *appsvcs.Services) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute deletes an order and its lines.
//
//	@Summary	Delete order
//	@Tags		orders
//	@Param		id	path	int	true	"Order ID"
//	@Success	204	"No Content"
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/orders/{id} [delete]
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.NoContent(w)
}
