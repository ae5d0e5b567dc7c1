package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/kissandost/backend/internal/i18n"
	chatservice "github.com/kissandost/backend/internal/service/chat"
)

// WebSocketHandler carries a chat conversation over a single socket for
// the mobile client: message frames in, reply deltas and store state out.
type WebSocketHandler struct {
	chatSvc  *chatservice.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket chat handler.
func NewWebSocketHandler(chatSvc *chatservice.Service) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws", h.handleWebSocket)
}

type inboundFrame struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Language string `json:"language,omitempty"`
}

type outboundFrame struct {
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	Accepted  *bool  `json:"accepted,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			h.send(conn, outboundFrame{Type: "error", Error: "invalid frame"})
			continue
		}

		switch frame.Type {
		case "message":
			h.handleMessageFrame(r.Context(), conn, frame)
		case "config":
			h.handleConfigFrame(conn, frame)
		default:
			h.send(conn, outboundFrame{Type: "error", Error: "unknown frame type"})
		}
	}
}

func (h *WebSocketHandler) handleMessageFrame(ctx context.Context, conn *websocket.Conn, frame inboundFrame) {
	accepted := h.chatSvc.SendMessageStream(ctx, frame.Text, func(chunk string) {
		h.send(conn, outboundFrame{Type: "delta", Content: chunk})
	})

	h.send(conn, outboundFrame{Type: "done", Accepted: &accepted})
}

func (h *WebSocketHandler) handleConfigFrame(conn *websocket.Conn, frame inboundFrame) {
	if !i18n.Valid(frame.Language) {
		h.send(conn, outboundFrame{Type: "error", Error: "unsupported language"})
		return
	}

	h.chatSvc.SetLanguage(i18n.Language(frame.Language))
	h.send(conn, outboundFrame{Type: "config_ok"})
}

func (h *WebSocketHandler) send(conn *websocket.Conn, frame outboundFrame) {
	frame.Timestamp = time.Now().UnixMilli()
	if err := conn.WriteJSON(frame); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}
