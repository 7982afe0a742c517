package http

import (
	"log"
	"net/http"

	"carv-arcade-service/internal/app"
	"carv-arcade-service/internal/domain"

	"github.com/gorilla/websocket"
)

// WSHandler streams leaderboard snapshots to websocket clients whenever a
// balance changes.
type WSHandler struct {
	service  *app.ArcadeService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.ArcadeService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type leaderboardMessage struct {
	Type    string                    `json:"type"`
	Payload []domain.LeaderboardEntry `json:"payload"`
}

// ServeLeaderboard upgrades the request and pushes snapshots until the client
// disconnects. The first message is the current standings.
func (h *WSHandler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	updates, cancel, err := h.service.Subscribe(r.Context())
	if err != nil {
		http.Error(w, "subscription unavailable", http.StatusInternalServerError)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for update := range updates {
			if update == nil {
				update = []domain.LeaderboardEntry{}
			}
			if err := conn.WriteJSON(leaderboardMessage{Type: "leaderboard", Payload: update}); err != nil {
				return
			}
		}
	}()

	// Drain client frames only to learn about disconnects.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}

	cancel()
	<-writerDone
}
