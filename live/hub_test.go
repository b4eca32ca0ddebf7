package live

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/models"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHub_NotifyResultCreatedReachesRoom(t *testing.T) {
	hub, _ := startHub(t)

	following := NewClient(hub, nil, RoomForTournament("t1"))
	other := NewClient(hub, nil, RoomForTournament("t2"))
	hub.Register(following)
	hub.Register(other)
	require.Eventually(t, func() bool {
		return hub.ClientCount("tournament_t1") == 1 && hub.ClientCount("tournament_t2") == 1
	}, time.Second, 10*time.Millisecond)

	hub.NotifyResultCreated(&models.TournamentResult{ID: "r1", TournamentID: "t1", PlayerID: "p1", Points: 7.5, Rank: 1})

	select {
	case data := <-following.send:
		var msg struct {
			Type    string                  `json:"type"`
			RoomID  string                  `json:"room_id"`
			Payload models.TournamentResult `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, MessageResultCreated, msg.Type)
		assert.Equal(t, "tournament_t1", msg.RoomID)
		assert.Equal(t, "r1", msg.Payload.ID)
		assert.Equal(t, 7.5, msg.Payload.Points)
	case <-time.After(time.Second):
		t.Fatal("no message delivered to the tournament room")
	}

	assert.Empty(t, other.send)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	hub, _ := startHub(t)

	client := NewClient(hub, nil, "room")
	hub.Register(client)
	hub.Unregister(client)

	require.Eventually(t, func() bool { return hub.ClientCount("room") == 0 }, time.Second, 10*time.Millisecond)
	_, ok := <-client.send
	assert.False(t, ok)

	// Broadcasting to an empty room is a no-op.
	hub.BroadcastToRoom("room", Message{Type: "PING"})
}

func TestHub_StopDisconnectsEveryone(t *testing.T) {
	hub, cancel := startHub(t)

	a := NewClient(hub, nil, "a")
	b := NewClient(hub, nil, "b")
	hub.Register(a)
	hub.Register(b)

	cancel()
	<-hub.stopped

	_, okA := <-a.send
	_, okB := <-b.send
	assert.False(t, okA)
	assert.False(t, okB)

	late := NewClient(hub, nil, "a")
	hub.Register(late)
	_, ok := <-late.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount("a"))
}

func TestHub_SlowClientDropsMessages(t *testing.T) {
	hub, _ := startHub(t)

	client := NewClient(hub, nil, "busy")
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount("busy") == 1 }, time.Second, 10*time.Millisecond)

	for i := 0; i < sendBuffer+10; i++ {
		hub.BroadcastToRoom("busy", Message{Type: "TICK", Payload: i})
	}
	assert.Len(t, client.send, sendBuffer)
}
