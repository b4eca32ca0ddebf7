package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/services"
)

type ResultHandler struct {
	resultService services.ResultService
	exportService services.ExportService
	logger        *zap.SugaredLogger
}

func NewResultHandler(rs services.ResultService, es services.ExportService, logger *zap.SugaredLogger) *ResultHandler {
	return &ResultHandler{
		resultService: rs,
		exportService: es,
		logger:        logger,
	}
}

// Create godoc
// @Summary Record a tournament result
// @Description Tournament and player ids are stored as given; they are not checked.
// @Tags results
// @Accept json
// @Produce json
// @Param result body services.ResultInput true "Result"
// @Success 200 {object} models.TournamentResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Player already has a result in this tournament"
// @Failure 422 {object} map[string]interface{}
// @Router /tournament-results [post]
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		services.ResultInput
		storedKeys
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	result, err := h.resultService.CreateResult(r.Context(), body.ResultInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// ListByTournament godoc
// @Summary Standings of a tournament
// @Description Results with their player, ascending by rank. Results whose player no longer exists are omitted.
// @Tags results
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {array} models.ResultWithPlayer
// @Router /tournaments/{id}/results [get]
func (h *ResultHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListTournamentResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// ListByPlayer godoc
// @Summary Tournament history of a player
// @Description Results with their tournament, most recent tournament first. Results whose tournament no longer exists are omitted.
// @Tags results
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} models.ResultWithTournament
// @Router /players/{id}/results [get]
func (h *ResultHandler) ListByPlayer(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListPlayerResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, results, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Export godoc
// @Summary Export tournament standings
// @Description Builds an xlsx workbook of the standings and uploads it to object storage.
// @Tags results
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} services.StandingsExport
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string "Exports are not configured"
// @Router /tournaments/{id}/results/export [post]
func (h *ResultHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.exportService.ExportStandings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, export, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
