package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/services"
)

type SearchHandler struct {
	searchService services.SearchService
	logger        *zap.SugaredLogger
}

func NewSearchHandler(ss services.SearchService, logger *zap.SugaredLogger) *SearchHandler {
	return &SearchHandler{
		searchService: ss,
		logger:        logger,
	}
}

// Search godoc
// @Summary Search players, tournaments and federations
// @Description Case-insensitive substring match; at most 10 hits per category.
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} models.SearchResults
// @Failure 422 {object} map[string]interface{}
// @Router /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.searchService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
