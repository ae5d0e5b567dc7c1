package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kissandost/backend/internal/i18n"
	"github.com/kissandost/backend/internal/model/chat"
	"github.com/kissandost/backend/internal/storage"
)

// snapshotKey is the fixed namespace every session snapshot is persisted
// under.
const snapshotKey = "kissan_chat_sessions"

const (
	titleLimit   = 30
	previewLimit = 40
)

// ReplyGenerator is the remote reply-generation collaborator. The store
// treats it as an opaque asynchronous text completion with no latency
// bound of its own.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, history []chat.Message, userText string, lang i18n.Language) (string, error)
}

// ReplyStreamer is implemented by advisors that can forward reply chunks
// as they arrive. The committed result must equal the non-streaming path.
type ReplyStreamer interface {
	StreamReply(ctx context.Context, history []chat.Message, userText string, lang i18n.Language, onDelta func(chunk string)) (string, error)
}

// Service owns the ordered collection of chat sessions (front = most
// recent), the active-session pointer, and the persistence round-trip.
// At most one remote send is in flight at any time, across all sessions.
type Service struct {
	mu       sync.Mutex
	sessions []*chat.Session
	activeID string
	sending  bool
	lang     i18n.Language

	store   storage.KV
	advisor ReplyGenerator
}

// NewService wires the store to its collaborators. Call Initialize before
// serving requests.
func NewService(store storage.KV, advisor ReplyGenerator, lang i18n.Language) *Service {
	return &Service{
		store:   store,
		advisor: advisor,
		lang:    lang,
	}
}

// Initialize hydrates sessions from the persisted snapshot, or starts a
// fresh one when the snapshot is absent or unparsable. It never fails
// outward.
func (s *Service) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.store.Get(snapshotKey)
	if ok {
		var restored []*chat.Session
		if err := json.Unmarshal([]byte(raw), &restored); err != nil {
			log.Printf("[chat] failed to parse session snapshot: %v", err)
		} else if len(restored) > 0 {
			s.sessions = restored
			s.activeID = restored[0].ID
			return
		}
	}

	s.createSessionLocked()
}

// CreateSession prepends a fresh session with the localized greeting and
// makes it active.
func (s *Service) CreateSession() chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.createSessionLocked()
	return created.Clone()
}

// DeleteSession removes the session with the given id. Unknown ids are a
// no-op on the removal, but the active-session invariant is re-checked
// regardless: deleting the active session promotes the front survivor, or
// creates a fresh session when none remain.
func (s *Service) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	kept := s.sessions[:0]
	for _, session := range s.sessions {
		if session.ID == id {
			removed = true
			continue
		}
		kept = append(kept, session)
	}
	s.sessions = kept

	if s.findLocked(s.activeID) == nil {
		if len(s.sessions) > 0 {
			s.activeID = s.sessions[0].ID
		} else {
			s.createSessionLocked()
			return
		}
	}

	if removed {
		s.persistLocked()
	}
}

// SelectSession makes the session with the given id active. Unknown ids
// are a no-op.
func (s *Service) SelectSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) != nil {
		s.activeID = id
	}
}

// SetLanguage switches the interface language. If the active session
// still holds only its unanswered seeded greeting, that greeting is
// relocalized in place; nothing else is touched.
func (s *Service) SetLanguage(lang i18n.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lang = lang

	active := s.findLocked(s.activeID)
	if active == nil {
		return
	}
	if len(active.Messages) == 1 && active.Messages[0].Role == chat.RoleModel {
		active.Messages[0].Text = i18n.T(lang).AskAnything
		s.persistLocked()
	}
}

// SendMessage runs the full send flow for the active session: optimistic
// user append, remote reply, reply append. It reports whether the message
// was accepted; blank input, a send already in flight, or the absence of
// an active session skip silently. Remote failures are logged and
// absorbed — the optimistic append stays, nothing is rolled back.
func (s *Service) SendMessage(ctx context.Context, text string) bool {
	return s.SendMessageStream(ctx, text, nil)
}

// SendMessageStream is SendMessage with reply chunks forwarded to onDelta
// when the advisor supports streaming. The committed session state is
// identical to the non-streaming path.
func (s *Service) SendMessageStream(ctx context.Context, text string, onDelta func(chunk string)) bool {
	s.mu.Lock()

	if strings.TrimSpace(text) == "" || s.sending {
		s.mu.Unlock()
		return false
	}

	active := s.findLocked(s.activeID)
	if active == nil {
		s.mu.Unlock()
		return false
	}

	now := time.Now()
	firstUserMessage := len(active.Messages) <= 1

	active.Messages = append(active.Messages, chat.Message{
		ID:        uuid.NewString(),
		Role:      chat.RoleUser,
		Text:      text,
		Timestamp: now,
	})
	if firstUserMessage {
		active.Title = TruncateTitle(text)
	}
	active.Preview = TruncatePreview(text)
	active.UpdatedAt = now
	s.persistLocked()

	// Capture by value at call time: the reply is routed to this session
	// id even if the user switches sessions while the call is in flight.
	sessionID := active.ID
	history := append([]chat.Message(nil), active.Messages...)
	lang := s.lang
	s.sending = true
	s.mu.Unlock()

	reply, err := s.generate(ctx, history, text, lang, onDelta)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false

	if err != nil {
		log.Printf("[chat] reply generation failed for session=%s: %v", sessionID, err)
		return true
	}

	target := s.findLocked(sessionID)
	if target == nil {
		log.Printf("[chat] dropping reply for deleted session=%s", sessionID)
		return true
	}

	target.Messages = append(target.Messages, chat.Message{
		ID:        uuid.NewString(),
		Role:      chat.RoleModel,
		Text:      reply,
		Timestamp: time.Now(),
	})
	target.Preview = TruncatePreview(reply)
	target.UpdatedAt = time.Now()
	s.persistLocked()

	return true
}

func (s *Service) generate(ctx context.Context, history []chat.Message, text string, lang i18n.Language, onDelta func(chunk string)) (string, error) {
	if s.advisor == nil {
		return "", errors.New("no advisor configured")
	}
	if onDelta != nil {
		if streamer, ok := s.advisor.(ReplyStreamer); ok {
			return streamer.StreamReply(ctx, history, text, lang, onDelta)
		}
	}
	return s.advisor.GenerateReply(ctx, history, text, lang)
}

// AdvisorReady reports whether a remote advisor is configured.
func (s *Service) AdvisorReady() bool {
	return s.advisor != nil
}

// Sending reports whether a remote send is currently in flight.
func (s *Service) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Sessions returns a deep copy of every session, most recent first.
func (s *Service) Sessions() []chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]chat.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.Clone())
	}
	return out
}

// ActiveSession returns a copy of the active session.
func (s *Service) ActiveSession() (chat.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.findLocked(s.activeID)
	if active == nil {
		return chat.Session{}, false
	}
	return active.Clone(), true
}

// ActiveID returns the id of the active session.
func (s *Service) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Language returns the current interface language.
func (s *Service) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Service) createSessionLocked() *chat.Session {
	t := i18n.T(s.lang)
	now := time.Now()

	session := &chat.Session{
		ID:        uuid.NewString(),
		Title:     t.NewChat,
		Preview:   t.AskAnything,
		UpdatedAt: now,
		Messages: []chat.Message{{
			ID:        chat.GreetingMessageID,
			Role:      chat.RoleModel,
			Text:      t.AskAnything,
			Timestamp: now,
		}},
	}

	s.sessions = append([]*chat.Session{session}, s.sessions...)
	s.activeID = session.ID
	s.persistLocked()
	return session
}

func (s *Service) findLocked(id string) *chat.Session {
	if id == "" {
		return nil
	}
	for _, session := range s.sessions {
		if session.ID == id {
			return session
		}
	}
	return nil
}

// persistLocked writes the full snapshot. An empty collection is never
// persisted so a transient construction-order race cannot erase a good
// snapshot.
func (s *Service) persistLocked() {
	if len(s.sessions) == 0 {
		return
	}

	data, err := json.Marshal(s.sessions)
	if err != nil {
		log.Printf("[chat] failed to marshal session snapshot: %v", err)
		return
	}
	if err := s.store.Set(snapshotKey, string(data)); err != nil {
		log.Printf("[chat] failed to persist session snapshot: %v", err)
	}
}
