package invoicing

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.ListSales)
	r.Post("/sales", h.RecordSale)
	r.Get("/purchases", h.ListPurchases)
	r.Post("/purchases", h.RecordPurchase)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}
