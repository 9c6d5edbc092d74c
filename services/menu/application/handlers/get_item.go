package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	item, err := h.svc.Item.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
