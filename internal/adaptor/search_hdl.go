package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// GetSearchParams handles GET /api/search-params
func (h *SearchHandler) GetSearchParams(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Get(r.Context()))
}

// UpdateSearchParams handles PATCH /api/search-params
func (h *SearchHandler) UpdateSearchParams(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSearchParamsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	params, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update search params")
		return
	}

	utils.ResponseSuccess(w, "Search updated", params)
}

// ResetSearchParams handles DELETE /api/search-params
func (h *SearchHandler) ResetSearchParams(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Search cleared", h.service.Reset(r.Context()))
}
