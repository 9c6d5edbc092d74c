package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// ListCategoryItemsHandler handles GET /categories/{id}/items requests.
type ListCategoryItemsHandler struct {
	svc *appsvcs.Services
}

func NewListCategoryItemsHandler(svc *appsvcs.Services) *ListCategoryItemsHandler {
	return &ListCategoryItemsHandler{svc: svc}
}

// Execute lists the items of one category.
//
//	@Summary	List category items
//	@Tags		categories
//	@Produce	json
//	@Param		id	path	int	true	"Category ID"
//	@Success	200	{array}	ItemResponse
//	@Success	204	"No Content"
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/categories/{id}/items [get]
func (h *ListCategoryItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	items, err := h.svc.Category.Items(r.Context(), id)
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
