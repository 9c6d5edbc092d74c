package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/answerking/answerking-api/pkg/app"
	"github.com/answerking/answerking-api/services/order/application/handlers"
	appsvcs "github.com/answerking/answerking-api/services/order/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router and
// returns the wired services so other contexts can call into them.
func OrderRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	Mount(r, svcs)
	return svcs
}

// Mount registers the order endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
		r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetOrderHandler(svcs).Execute)
			r.Put("/", handlers.NewPutOrderHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteOrderHandler(svcs).Execute)
			r.Put("/items/{itemId}", handlers.NewPutOrderLineHandler(svcs).Execute)
			r.Delete("/items/{itemId}", handlers.NewDeleteOrderLineHandler(svcs).Execute)
		})
	})
}
