package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	store  Pinger
	driver string
	logger *zap.SugaredLogger
}

func NewSystemHandler(store Pinger, driver string, logger *zap.SugaredLogger) *SystemHandler {
	return &SystemHandler{
		store:  store,
		driver: driver,
		logger: logger,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Ready godoc
// @Summary Readiness probe
// @Description Checks that the storage backend answers.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	storeOK := true
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warnw("readiness check failed", "driver", h.driver, "error", err)
		status = http.StatusServiceUnavailable
		storeOK = false
	}

	if err := writeJSON(w, status, jsonResponse{
		"ready":  storeOK,
		"checks": map[string]bool{h.driver: storeOK},
	}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
