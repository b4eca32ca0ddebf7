package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
	logger        *zap.SugaredLogger
}

func NewPlayerHandler(ps services.PlayerService, logger *zap.SugaredLogger) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create a player
// @Tags players
// @Accept json
// @Produce json
// @Param player body services.PlayerInput true "Player"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /players [post]
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		services.PlayerInput
		storedKeys
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), body.PlayerInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// List godoc
// @Summary List players
// @Description Optional case-insensitive substring filter on the player name.
// @Tags players
// @Produce json
// @Param search query string false "Name contains"
// @Success 200 {array} models.Player
// @Router /players [get]
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByID godoc
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	player, err := h.playerService.GetPlayerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Update godoc
// @Summary Replace a player
// @Description Replaces every mutable field; id and created_at are kept.
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param player body services.PlayerInput true "Player"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /players/{id} [put]
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		services.PlayerInput
		storedKeys
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), chi.URLParam(r, "id"), body.PlayerInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Delete godoc
// @Summary Delete a player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id} [delete]
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "Player deleted successfully"}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
