package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// DeleteCategoryHandler handles DELETE /categories/{id} requests.
type DeleteCategoryHandler struct {
	svc *appsvcs.Services
}

func NewDeleteCategoryHandler(svc *appsvcs.Services) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{svc: svc}
}

// Execute retires a category.
//
//	@Summary	Retire category
//	@Tags		categories
//	@Param		id	path	int	true	"Category ID"
//	@Success	204	"No Content"
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/categories/{id} [delete]
func (h *DeleteCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	if err := h.svc.Category.Retire(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.NoContent(w)
}
