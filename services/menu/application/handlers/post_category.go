package handlers

import (
	"net/http"

	"github.com/answerking/answerking-api/pkg/errhttp"
	"github.com/answerking/answerking-api/pkg/httpx"
	pkgvalidator "github.com/answerking/answerking-api/pkg/validator"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// PostCategoryHandler handles POST /categories requests.
type PostCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPostCategoryHandler returns a PostCategoryHandler backed by the given services.
func NewPostCategoryHandler(svc *appsvcs.Services) *PostCategoryHandler {
	return &PostCategoryHandler{svc: svc}
}

// Execute creates a category, optionally with member items.
//
//	@Summary		Create category
//	@Description	Listed items must exist and not be retired
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Category creation request"
//	@Success		200		{object}	CategoryResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Router			/categories [post]
func (h *PostCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Category.Create(r.Context(), req.spec())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toCategoryResponse(category))
}
