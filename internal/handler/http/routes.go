package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// service endpoints
	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)

	// pages
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.index)

		r.Get("/add_bag", h.addBagForm)
		r.Post("/add_bag", h.addBag)
		r.Get("/view_bag/{id}", h.viewBag)
		r.Get("/edit_bag/{id}", h.editBagForm)
		r.Post("/edit_bag/{id}", h.editBag)
		r.Get("/delete_bag/{id}", h.deleteBagConfirm)
		r.Post("/delete_bag/{id}", h.deleteBag)

		r.Get("/add_vial", h.addVialForm)
		r.Post("/add_vial", h.addVial)
		r.Get("/view_vial/{id}", h.viewVial)
		r.Get("/edit_vial/{id}", h.editVialForm)
		r.Post("/edit_vial/{id}", h.editVial)
		r.Get("/delete_vial/{id}", h.deleteVialConfirm)
		r.Post("/delete_vial/{id}", h.deleteVial)

		r.Get("/freeze_bag/{id}", h.freezeBagForm)
		r.Post("/freeze_bag/{id}", h.freezeBag)
		r.Get("/unfreeze_vial/{id}", h.unfreezeVialConfirm)
		r.Post("/unfreeze_vial/{id}", h.unfreezeVial)
		r.Get("/consume_vials/{id}", h.consumeVialConfirm)
		r.Post("/consume_vials/{id}", h.consumeVial)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
