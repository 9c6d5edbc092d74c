package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/answerking/answerking-api/pkg/app"
	"github.com/answerking/answerking-api/services/menu/application/handlers"
	appsvcs "github.com/answerking/answerking-api/services/menu/application/services"
)

// MenuRoutes registers item and category endpoints on the provided chi router.
// repricer receives item price changes; pass the order service.
func MenuRoutes(r chi.Router, a *app.Application, repricer appsvcs.Repricer) *appsvcs.Services {
	svcs := appsvcs.New(a, repricer)
	Mount(r, svcs)
	return svcs
}

// Mount registers the menu endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", handlers.NewListCategoriesHandler(svcs).Execute)
		r.Post("/", handlers.NewPostCategoryHandler(svcs).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetCategoryHandler(svcs).Execute)
			r.Put("/", handlers.NewPutCategoryHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteCategoryHandler(svcs).Execute)
			r.Get("/items", handlers.NewListCategoryItemsHandler(svcs).Execute)
		})
	})
}
