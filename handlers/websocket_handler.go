package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/live"
)

type WebSocketHandler struct {
	hub      *live.Hub
	upgrader websocket.Upgrader
	logger   *zap.SugaredLogger
}

// NewWebSocketHandler accepts connections whose Origin is in allowedOrigins.
// "*" allows any origin; requests without an Origin header are always accepted.
func NewWebSocketHandler(hub *live.Hub, allowedOrigins []string, logger *zap.SugaredLogger) *WebSocketHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.ToLower(strings.TrimRight(origin, "/"))] = true
	}

	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed["*"] {
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return allowed[strings.ToLower(u.Scheme+"://"+u.Host)]
			},
		},
	}
}

// ServeWs godoc
// @Summary Live results feed of a tournament
// @Description Websocket; every recorded result of the tournament is pushed as a RESULT_CREATED message.
// @Tags results
// @Param id path string true "Tournament ID"
// @Success 101
// @Router /tournaments/{id}/live [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "id")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warnw("websocket upgrade failed", "tournament_id", tournamentID, "error", err)
		return
	}

	client := live.NewClient(h.hub, conn, live.RoomForTournament(tournamentID))
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
