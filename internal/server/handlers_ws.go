package server

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // subscribers authenticate by token, not origin
	},
}

// inboundFrame is the one message shape subscribers may send back: a chat
// message to relay into the general channel.
type inboundFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func (s *Server) handleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.config.SubscriberToken)) != 1 {
		return c.String(401, "Invalid token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade WebSocket: %w", err)
	}

	id := s.hub.Subscribe(conn)

	// Read pump — blocks until the connection closes.
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		s.handleInbound(data)
	}

	s.hub.Unsubscribe(id)

	return nil
}

func (s *Server) handleInbound(data []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		slog.Debug("Ignoring malformed subscriber frame", "error", err)
		return
	}
	if frame.Type != "message" || frame.Content == "" {
		return
	}

	result := s.general.Send(frame.Content)
	go func() {
		if err := <-result; err != nil {
			slog.Warn("Failed to relay subscriber message", "error", err)
		}
	}()
}
