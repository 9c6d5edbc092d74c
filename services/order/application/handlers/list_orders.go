package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
)

// ListOrdersHandler handles GET /orders requests.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists every order.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Success	204	"No Content"
//	@Router		/orders [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if len(orders) == 0 {
		httpx.NoContent(w)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
