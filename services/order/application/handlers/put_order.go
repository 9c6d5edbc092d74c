package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
	"github.com/answerking/answerking-api/services/order/domain/models"
)

// PutOrderHandler handles PUT /orders/{id} requests.
type PutOrderHandler struct {
	svc *appsvcs.Services
}

func NewPutOrderHandler(svc *appsvcs.Services) *PutOrderHandler {
	return &PutOrderHandler{svc: svc}
}

// Execute updates an order's address and/or status. An invalid field rejects
// the whole update.
//
//	@Summary	Update order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Order ID"
//	@Param		request	body		UpdateOrderRequest	true	"Fields to change"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/orders/{id} [put]
func (h *PutOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.UpdateFields(r.Context(), id, models.Changes{
		Address: req.Address,
		Status:  req.Status,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}
