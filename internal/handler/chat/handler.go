package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kissandost/backend/internal/i18n"
	chatmodel "github.com/kissandost/backend/internal/model/chat"
	chatservice "github.com/kissandost/backend/internal/service/chat"
	"github.com/kissandost/backend/pkg/utils"
)

// Handler exposes the session store over REST.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates the chat handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/state", h.handleState)
	r.Get("/chat/sessions", h.handleListSessions)
	r.Post("/chat/sessions", h.handleCreateSession)
	r.Delete("/chat/sessions/{id}", h.handleDeleteSession)
	r.Post("/chat/sessions/{id}/select", h.handleSelectSession)
	r.Post("/chat/messages", h.handleSendMessage)
	r.Put("/chat/language", h.handleSetLanguage)
}

// stateResponse is the session-store view the client renders.
type stateResponse struct {
	Sessions []chatmodel.Session `json:"sessions"`
	ActiveID string              `json:"activeId"`
	Sending  bool                `json:"sending"`
	Language i18n.Language       `json:"language"`
}

func (h *Handler) state() stateResponse {
	return stateResponse{
		Sessions: h.chatSvc.Sessions(),
		ActiveID: h.chatSvc.ActiveID(),
		Sending:  h.chatSvc.Sending(),
		Language: h.chatSvc.Language(),
	}
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.state())
}

func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.chatSvc.Sessions())
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.chatSvc.CreateSession()
	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.chatSvc.DeleteSession(id)
	utils.RespondJSON(w, http.StatusOK, h.state())
}

func (h *Handler) handleSelectSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.chatSvc.SelectSession(id)
	utils.RespondJSON(w, http.StatusOK, h.state())
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accepted := h.chatSvc.SendMessage(r.Context(), payload.Text)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"accepted": accepted,
		"state":    h.state(),
	})
}

func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !i18n.Valid(payload.Language) {
		utils.RespondError(w, http.StatusBadRequest, "unsupported language")
		return
	}

	h.chatSvc.SetLanguage(i18n.Language(payload.Language))
	utils.RespondJSON(w, http.StatusOK, h.state())
}
