package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists every item, retired ones included.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Success	200	{array}	ItemResponse
//	@Success	204	"No Content"
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if len(items) == 0 {
		httpx.NoContent(w)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
