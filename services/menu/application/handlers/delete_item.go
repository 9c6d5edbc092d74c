package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute retires the item if orders or categories reference it, otherwise deletes it.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	int	true	"Item ID"
//	@Success	204	"No Content"
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.NoContent(w)
}
