package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// ListCategoriesHandler handles GET /categories requests.
type ListCategoriesHandler struct {
	svc *appsvcs.Services
}

func NewListCategoriesHandler(svc *appsvcs.Services) *ListCategoriesHandler {
	return &ListCategoriesHandler{svc: svc}
}

// Execute lists every category with its items.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Success	204	"No Content"
//	@Router		/categories [get]
func (h *ListCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Category.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if len(categories) == 0 {
		httpx.NoContent(w)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toCategoryResponse(c)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
