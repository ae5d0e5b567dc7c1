package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"

	chatservice "github.com/kissandost/backend/internal/service/chat"
	"github.com/kissandost/backend/pkg/utils"
)

// Handler streams advisory replies via Server-Sent Events while the
// session store runs its normal send flow underneath.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates a new stream handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// Response is one streaming chunk.
type Response struct {
	Event    string `json:"event"`
	Content  string `json:"content,omitempty"`
	Finished bool   `json:"finished,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleStreamRequest runs a send on the active session, forwarding reply
// deltas to the client as they arrive.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	h.sendSSE(w, flusher, Response{Event: "start"})

	accepted := h.chatSvc.SendMessageStream(ctx, userMessage, func(chunk string) {
		h.sendSSE(w, flusher, Response{Event: "delta", Content: chunk})
	})

	if !accepted {
		h.sendSSE(w, flusher, Response{Event: "error", Error: "message not accepted"})
		return nil
	}

	// The committed reply (if the remote call succeeded) is the last
	// model message of the session the send was routed to.
	if active, ok := h.chatSvc.ActiveSession(); ok && len(active.Messages) > 0 {
		last := active.Messages[len(active.Messages)-1]
		h.sendSSE(w, flusher, Response{Event: "message", Content: last.Text})
	}

	h.sendSSE(w, flusher, Response{Event: "end", Finished: true})

	log.Printf("[stream] completed send, session=%s", h.chatSvc.ActiveID())
	return nil
}

func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response Response) {
	utils.SendSSEChunk(w, flusher, response)
}
