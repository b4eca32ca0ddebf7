package live

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/models"
)

// MessageResultCreated is sent to a tournament's room for every newly stored result.
const MessageResultCreated = "RESULT_CREATED"

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
	RoomID  string `json:"room_id,omitempty"`
}

// RoomForTournament names the room that follows one tournament.
func RoomForTournament(tournamentID string) string {
	return "tournament_" + tournamentID
}

// Hub fans messages out to the websocket clients of each room.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	stopped    chan struct{}

	mu    sync.RWMutex
	rooms map[string]map[*Client]bool

	logger *zap.SugaredLogger
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stopped:    make(chan struct{}),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run processes registrations until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			size := len(h.rooms[client.Room])
			h.mu.Unlock()
			h.logger.Debugw("client joined room", "room", client.Room, "clients", size)

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.rooms {
				for client := range clients {
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
			h.logger.Info("live hub stopped")
			return
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.rooms[client.Room]
	if !ok || !clients[client] {
		return
	}
	client.close()
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.rooms, client.Room)
		h.logger.Debugw("room closed", "room", client.Room)
	}
}

// Register adds client to its room. It is a no-op once the hub has stopped.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stopped:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stopped:
	}
}

// ClientCount returns the number of clients currently in room.
func (h *Hub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// BroadcastToRoom queues msg for every client of room. Clients whose buffer is
// full miss the message.
func (h *Hub) BroadcastToRoom(room string, msg Message) {
	msg.RoomID = room
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Errorw("failed to marshal live message", "room", room, "type", msg.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		if !client.trySend(data) {
			h.logger.Warnw("dropped live message for slow client", "room", room, "type", msg.Type)
		}
	}
}

// NotifyResultCreated pushes result to the room of its tournament.
func (h *Hub) NotifyResultCreated(result *models.TournamentResult) {
	h.BroadcastToRoom(RoomForTournament(result.TournamentID), Message{
		Type:    MessageResultCreated,
		Payload: result,
	})
}
