package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	r.Get("/api/search-params", searchHandler.GetSearchParams)
	r.Patch("/api/search-params", searchHandler.UpdateSearchParams)
	r.Delete("/api/search-params", searchHandler.ResetSearchParams)
}
