package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// GetCategoryHandler handles GET /categories/{id} requests.
type GetCategoryHandler struct {
	svc *appsvcs.Services
}

func NewGetCategoryHandler(svc *appsvcs.Services) *GetCategoryHandler {
	return &GetCategoryHandler{svc: svc}
}

// Execute returns one category with its items.
//
//	@Summary	Get category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	CategoryResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/categories/{id} [get]
func (h *GetCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	category, err := h.svc.Category.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCategoryResponse(category))
}
