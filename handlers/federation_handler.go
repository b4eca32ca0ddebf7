package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/services"
)

type FederationHandler struct {
	federationService services.FederationService
	logger            *zap.SugaredLogger
}

func NewFederationHandler(fs services.FederationService, logger *zap.SugaredLogger) *FederationHandler {
	return &FederationHandler{
		federationService: fs,
		logger:            logger,
	}
}

// Create godoc
// @Summary Create a federation
// @Tags federations
// @Accept json
// @Produce json
// @Param federation body services.CreateFederationInput true "Federation"
// @Success 200 {object} models.Federation
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Code already taken"
// @Failure 422 {object} map[string]interface{}
// @Router /federations [post]
func (h *FederationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		services.CreateFederationInput
		storedKeys
	}
	if err := readJSON(w, r, &body); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	federation, err := h.federationService.CreateFederation(r.Context(), body.CreateFederationInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, federation, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// List godoc
// @Summary List federations
// @Tags federations
// @Produce json
// @Success 200 {array} models.Federation
// @Router /federations [get]
func (h *FederationHandler) List(w http.ResponseWriter, r *http.Request) {
	federations, err := h.federationService.GetAllFederations(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, federations, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetByCode godoc
// @Summary Get a federation by code
// @Tags federations
// @Produce json
// @Param code path string true "Federation code"
// @Success 200 {object} models.Federation
// @Failure 404 {object} map[string]string
// @Router /federations/{code} [get]
func (h *FederationHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	federation, err := h.federationService.GetFederationByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, federation, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
