package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// PutCategoryHandler handles PUT /categories/{id} requests.
type PutCategoryHandler struct {
	svc *appsvcs.Services
}

func NewPutCategoryHandler(svc *appsvcs.Services) *PutCategoryHandler {
	return &PutCategoryHandler{svc: svc}
}

// Execute replaces name, description and membership of a category.
//
//	@Summary	Replace category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Category ID"
//	@Param		request	body		CategoryRequest	true	"Replacement category"
//	@Success	200		{object}	CategoryResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Failure	409		{object}	httpx.ErrorResponse
//	@Router		/categories/{id} [put]
func (h *PutCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Category.Replace(r.Context(), id, req.spec())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCategoryResponse(category))
}
