package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/historyquest/historyquest/internal/generator"
	"github.com/historyquest/historyquest/internal/progress"
	"github.com/historyquest/historyquest/internal/script"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketMessage is the outgoing WebSocket message format.
type socketMessage struct {
	Type    string         `json:"type"` // "status", "script" or "error"
	Message string         `json:"message,omitempty"`
	Script  *script.Script `json:"script,omitempty"`
}

// handleGenerateSocket runs generation requests over a WebSocket, streaming
// rotating status lines while the agent call is in flight.
func (s *Server) handleGenerateSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req generator.Request
		if err := json.Unmarshal(msg, &req); err != nil {
			sendSocket(conn, socketMessage{Type: "error", Message: "invalid message format"})
			continue
		}
		if req.Topic == "" {
			sendSocket(conn, socketMessage{Type: "error", Message: "topic is required"})
			continue
		}

		s.streamGeneration(r.Context(), conn, req)
	}
}

// streamGeneration issues one generation call and reports progress until it
// resolves.
func (s *Server) streamGeneration(ctx context.Context, conn *websocket.Conn, req generator.Request) {
	type outcome struct {
		doc script.Script
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		doc, err := s.gen.Generate(ctx, req)
		done <- outcome{doc: doc, err: err}
	}()

	ticker := time.NewTicker(progress.RotateInterval)
	defer ticker.Stop()

	step := 0
	sendSocket(conn, socketMessage{Type: "status", Message: progress.Message(step)})

	for {
		select {
		case <-ticker.C:
			step++
			sendSocket(conn, socketMessage{Type: "status", Message: progress.Message(step)})
		case out := <-done:
			if out.err != nil {
				sendSocket(conn, socketMessage{Type: "error", Message: out.err.Error()})
				return
			}
			sendSocket(conn, socketMessage{Type: "script", Script: &out.doc})
			return
		}
	}
}

func sendSocket(conn *websocket.Conn, msg socketMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}
