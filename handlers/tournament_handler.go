package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	logger            *zap.SugaredLogger
}

func NewTournamentHandler(ts services.TournamentService, logger *zap.SugaredLogger) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		logger:            logger,
	}
}

// Create godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body services.TournamentInput true "Tournament"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /tournaments [post]
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		services.TournamentInput
		storedKeys
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	tournament, err := h.tournamentService.CreateTournament(r.Context(), body.TournamentInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// List godoc
// @Summary List tournaments, most recent first
// @Tags tournaments
// @Produce json
// @Param search query string false "Name contains"
// @Success 200 {array} models.Tournament
// @Router /tournaments [get]
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.ListTournaments(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, tournaments, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByID godoc
// @Summary Get a tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.GetTournamentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Update godoc
// @Summary Replace a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param tournament body services.TournamentInput true "Tournament"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /tournaments/{id} [put]
func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		services.TournamentInput
		storedKeys
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(r.Context(), chi.URLParam(r, "id"), body.TournamentInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Delete godoc
// @Summary Delete a tournament
// @Tags tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [delete]
func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeleteTournament(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "Tournament deleted successfully"}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
