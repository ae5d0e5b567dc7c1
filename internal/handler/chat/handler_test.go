package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kissandost/backend/internal/i18n"
	chatmodel "github.com/kissandost/backend/internal/model/chat"
	chatservice "github.com/kissandost/backend/internal/service/chat"
	"github.com/kissandost/backend/internal/storage"
)

type cannedAdvisor struct {
	reply string
}

func (a cannedAdvisor) GenerateReply(ctx context.Context, history []chatmodel.Message, text string, lang i18n.Language) (string, error) {
	return a.reply, nil
}

func setupRouter() (*chi.Mux, *chatservice.Service) {
	svc := chatservice.NewService(storage.NewMemoryStore(), cannedAdvisor{reply: "Use urea."}, i18n.English)
	svc.Initialize()
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, svc
}

func TestGetState(t *testing.T) {
	r, svc := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/chat/state", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var state stateResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if len(state.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(state.Sessions))
	}
	if state.ActiveID != svc.ActiveID() {
		t.Fatal("active id mismatch")
	}
	if state.Sending {
		t.Fatal("sending should be false at rest")
	}
}

func TestCreateSession(t *testing.T) {
	r, svc := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat/sessions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var created chatmodel.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if created.ID != svc.ActiveID() {
		t.Fatal("created session should be active")
	}
	if len(svc.Sessions()) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(svc.Sessions()))
	}
}

func TestDeleteSession(t *testing.T) {
	r, svc := setupRouter()
	doomed := svc.ActiveID()

	req := httptest.NewRequest(http.MethodDelete, "/chat/sessions/"+doomed, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if svc.ActiveID() == doomed {
		t.Fatal("deleted session should not stay active")
	}
}

func TestSelectSession(t *testing.T) {
	r, svc := setupRouter()
	first := svc.ActiveID()
	svc.CreateSession()

	req := httptest.NewRequest(http.MethodPost, "/chat/sessions/"+first+"/select", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if svc.ActiveID() != first {
		t.Fatal("selected session should be active")
	}
}

func TestSendMessage(t *testing.T) {
	r, svc := setupRouter()
	payload, _ := json.Marshal(map[string]string{"text": "What fertilizer for my wheat?"})

	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		Accepted bool          `json:"accepted"`
		State    stateResponse `json:"state"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Accepted {
		t.Fatal("send should be accepted")
	}

	active, _ := svc.ActiveSession()
	if len(active.Messages) != 3 {
		t.Fatalf("expected greeting+user+model, got %d messages", len(active.Messages))
	}
}

func TestSendMessageBlank(t *testing.T) {
	r, _ := setupRouter()
	payload := []byte(`{"text":"   "}`)

	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		Accepted bool `json:"accepted"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Accepted {
		t.Fatal("blank messages should be rejected")
	}
}

func TestSetLanguage(t *testing.T) {
	r, svc := setupRouter()
	payload := []byte(`{"language":"ur"}`)

	req := httptest.NewRequest(http.MethodPut, "/chat/language", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if svc.Language() != i18n.Urdu {
		t.Fatal("language should be updated")
	}
}

func TestSetLanguageInvalid(t *testing.T) {
	r, _ := setupRouter()
	payload := []byte(`{"language":"fr"}`)

	req := httptest.NewRequest(http.MethodPut, "/chat/language", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
