package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kissandost/backend/internal/i18n"
	chatmodel "github.com/kissandost/backend/internal/model/chat"
	chat "github.com/kissandost/backend/internal/service/chat"
	"github.com/kissandost/backend/internal/storage"
)

type scriptedAdvisor struct {
	reply  string
	err    error
	calls  int
	onCall func()
}

func (a *scriptedAdvisor) GenerateReply(ctx context.Context, history []chatmodel.Message, text string, lang i18n.Language) (string, error) {
	a.calls++
	if a.onCall != nil {
		a.onCall()
	}
	return a.reply, a.err
}

type streamingAdvisor struct {
	scriptedAdvisor
}

func (a *streamingAdvisor) StreamReply(ctx context.Context, history []chatmodel.Message, text string, lang i18n.Language, onDelta func(string)) (string, error) {
	for _, word := range strings.SplitAfter(a.reply, " ") {
		onDelta(word)
	}
	return a.GenerateReply(ctx, history, text, lang)
}

func newTestService(advisor chat.ReplyGenerator) (*chat.Service, *storage.MemoryStore) {
	kv := storage.NewMemoryStore()
	svc := chat.NewService(kv, advisor, i18n.English)
	svc.Initialize()
	return svc, kv
}

func TestInitializeFreshSession(t *testing.T) {
	svc, _ := newTestService(nil)

	sessions := svc.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].ID != svc.ActiveID() {
		t.Fatal("fresh session should be active")
	}
	if len(sessions[0].Messages) != 1 {
		t.Fatalf("expected 1 greeting message, got %d", len(sessions[0].Messages))
	}

	greeting := sessions[0].Messages[0]
	if greeting.ID != chatmodel.GreetingMessageID {
		t.Fatalf("unexpected greeting id: %s", greeting.ID)
	}
	if greeting.Role != chatmodel.RoleModel {
		t.Fatalf("unexpected greeting role: %s", greeting.Role)
	}
	if greeting.Text != i18n.T(i18n.English).AskAnything {
		t.Fatalf("unexpected greeting text: %s", greeting.Text)
	}
}

func TestInitializeRestoresSnapshot(t *testing.T) {
	advisor := &scriptedAdvisor{reply: "Use urea."}
	svc, kv := newTestService(advisor)

	if !svc.SendMessage(context.Background(), "What fertilizer for my wheat?") {
		t.Fatal("send should be accepted")
	}
	want := svc.Sessions()

	restored := chat.NewService(kv, advisor, i18n.English)
	restored.Initialize()

	got := restored.Sessions()
	if len(got) != len(want) {
		t.Fatalf("expected %d sessions, got %d", len(want), len(got))
	}
	if got[0].ID != want[0].ID {
		t.Fatalf("unexpected session id: got %s want %s", got[0].ID, want[0].ID)
	}
	if restored.ActiveID() != got[0].ID {
		t.Fatal("restored front session should be active")
	}
	if len(got[0].Messages) != 3 {
		t.Fatalf("expected 3 messages after restore, got %d", len(got[0].Messages))
	}
}

func TestInitializeCorruptSnapshotStartsFresh(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set("kissan_chat_sessions", "{not json"); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	svc := chat.NewService(kv, nil, i18n.English)
	svc.Initialize()

	sessions := svc.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected fresh session, got %d sessions", len(sessions))
	}
	if sessions[0].Messages[0].ID != chatmodel.GreetingMessageID {
		t.Fatal("fresh session should start with the greeting")
	}
}

func TestCreateSessionPrependsAndActivates(t *testing.T) {
	svc, _ := newTestService(nil)
	first := svc.ActiveID()

	created := svc.CreateSession()

	if svc.ActiveID() != created.ID {
		t.Fatal("new session should be active")
	}
	sessions := svc.Sessions()
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != created.ID || sessions[1].ID != first {
		t.Fatal("new session should be at the front")
	}
}

func TestSendMessageFlow(t *testing.T) {
	advisor := &scriptedAdvisor{reply: "Use urea."}
	svc, _ := newTestService(advisor)

	if !svc.SendMessage(context.Background(), "What fertilizer for my wheat?") {
		t.Fatal("send should be accepted")
	}

	active, ok := svc.ActiveSession()
	if !ok {
		t.Fatal("active session missing")
	}
	if len(active.Messages) != 3 {
		t.Fatalf("expected greeting+user+model, got %d messages", len(active.Messages))
	}
	if active.Messages[1].Role != chatmodel.RoleUser || active.Messages[1].Text != "What fertilizer for my wheat?" {
		t.Fatalf("unexpected user message: %+v", active.Messages[1])
	}
	if active.Messages[2].Role != chatmodel.RoleModel || active.Messages[2].Text != "Use urea." {
		t.Fatalf("unexpected model message: %+v", active.Messages[2])
	}
	if active.Title != "What fertilizer for my wheat?" {
		t.Fatalf("unexpected title: %s", active.Title)
	}
	if active.Preview != "Use urea." {
		t.Fatalf("unexpected preview: %s", active.Preview)
	}
	if svc.Sending() {
		t.Fatal("sending flag should be cleared")
	}
}

func TestSendMessageTitleSetOnce(t *testing.T) {
	advisor := &scriptedAdvisor{reply: "Reply."}
	svc, _ := newTestService(advisor)
	ctx := context.Background()

	svc.SendMessage(ctx, "First question about wheat")
	svc.SendMessage(ctx, "Second question about rice")

	active, _ := svc.ActiveSession()
	if active.Title != "First question about wheat" {
		t.Fatalf("title should keep the first user message, got %s", active.Title)
	}
}

func TestSendMessageLongTitleTruncated(t *testing.T) {
	advisor := &scriptedAdvisor{reply: "Reply."}
	svc, _ := newTestService(advisor)

	text := "What fertilizer should I use for my wheat this season?"
	svc.SendMessage(context.Background(), text)

	active, _ := svc.ActiveSession()
	want := string([]rune(text)[:30]) + "..."
	if active.Title != want {
		t.Fatalf("unexpected title: got %q want %q", active.Title, want)
	}
}

func TestSendMessageBlankRejected(t *testing.T) {
	advisor := &scriptedAdvisor{reply: "Reply."}
	svc, _ := newTestService(advisor)

	if svc.SendMessage(context.Background(), "   ") {
		t.Fatal("blank message should be rejected")
	}
	if advisor.calls != 0 {
		t.Fatal("advisor should not be called for blank input")
	}
	active, _ := svc.ActiveSession()
	if len(active.Messages) != 1 {
		t.Fatalf("session should be untouched, got %d messages", len(active.Messages))
	}
}

func TestSendMessageAdvisorErrorKeepsOptimisticAppend(t *testing.T) {
	advisor := &scriptedAdvisor{err: errors.New("model unavailable")}
	svc, _ := newTestService(advisor)

	if !svc.SendMessage(context.Background(), "Is it going to rain?") {
		t.Fatal("send should be accepted even when the advisor fails")
	}

	active, _ := svc.ActiveSession()
	if len(active.Messages) != 2 {
		t.Fatalf("expected greeting+user, got %d messages", len(active.Messages))
	}
	if active.Messages[1].Role != chatmodel.RoleUser {
		t.Fatal("optimistic user append should survive the failure")
	}
	if svc.Sending() {
		t.Fatal("sending flag should be cleared after a failure")
	}
}

func TestSendMessageReplyToDeletedSessionDropped(t *testing.T) {
	var svc *chat.Service
	advisor := &scriptedAdvisor{reply: "Too late."}
	advisor.onCall = func() {
		svc.DeleteSession(svc.ActiveID())
	}
	svc, _ = newTestService(advisor)
	doomed := svc.ActiveID()

	if !svc.SendMessage(context.Background(), "Hello?") {
		t.Fatal("send should be accepted")
	}

	for _, session := range svc.Sessions() {
		if session.ID == doomed {
			t.Fatal("deleted session should not come back")
		}
		for _, msg := range session.Messages {
			if msg.Text == "Too late." {
				t.Fatal("reply for a deleted session should be dropped")
			}
		}
	}
	if svc.Sending() {
		t.Fatal("sending flag should be cleared")
	}
}

func TestDeleteActivePromotesFrontSurvivor(t *testing.T) {
	svc, _ := newTestService(nil)
	b := svc.CreateSession().ID
	c := svc.CreateSession().ID

	svc.DeleteSession(c)

	if svc.ActiveID() != b {
		t.Fatalf("expected front survivor %s active, got %s", b, svc.ActiveID())
	}
	if len(svc.Sessions()) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(svc.Sessions()))
	}
}

func TestDeleteNonActiveKeepsActive(t *testing.T) {
	svc, _ := newTestService(nil)
	a := svc.ActiveID()
	b := svc.CreateSession().ID

	svc.DeleteSession(a)

	if svc.ActiveID() != b {
		t.Fatal("deleting a non-active session should not move the pointer")
	}
}

func TestDeleteLastSessionCreatesFresh(t *testing.T) {
	svc, _ := newTestService(nil)
	only := svc.ActiveID()

	svc.DeleteSession(only)

	sessions := svc.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("expected a fresh replacement session, got %d", len(sessions))
	}
	if sessions[0].ID == only {
		t.Fatal("replacement should be a new session")
	}
	if svc.ActiveID() != sessions[0].ID {
		t.Fatal("replacement should be active")
	}
}

func TestDeleteUnknownIDNoOp(t *testing.T) {
	svc, _ := newTestService(nil)
	before := svc.ActiveID()

	svc.DeleteSession("missing")

	if svc.ActiveID() != before || len(svc.Sessions()) != 1 {
		t.Fatal("unknown id should leave the store untouched")
	}
}

func TestSelectUnknownIDNoOp(t *testing.T) {
	svc, _ := newTestService(nil)
	before := svc.ActiveID()

	svc.SelectSession("missing")

	if svc.ActiveID() != before {
		t.Fatal("unknown id should not change the active session")
	}
}

func TestSetLanguageRelocalizesUnansweredGreeting(t *testing.T) {
	svc, _ := newTestService(nil)

	svc.SetLanguage(i18n.Urdu)

	active, _ := svc.ActiveSession()
	if active.Messages[0].Text != i18n.T(i18n.Urdu).AskAnything {
		t.Fatalf("greeting should be relocalized, got %q", active.Messages[0].Text)
	}
	if svc.Language() != i18n.Urdu {
		t.Fatal("language should be updated")
	}
}

func TestSetLanguageLeavesAnsweredSessionAlone(t *testing.T) {
	advisor := &scriptedAdvisor{reply: "Reply."}
	svc, _ := newTestService(advisor)
	svc.SendMessage(context.Background(), "Hello")

	before, _ := svc.ActiveSession()
	svc.SetLanguage(i18n.Punjabi)
	after, _ := svc.ActiveSession()

	for i := range before.Messages {
		if before.Messages[i].Text != after.Messages[i].Text {
			t.Fatal("messages of an answered session must not change")
		}
	}
}

func TestSendMessageStreamForwardsDeltas(t *testing.T) {
	advisor := &streamingAdvisor{scriptedAdvisor{reply: "Spray after the rain stops."}}
	svc, _ := newTestService(advisor)

	var got strings.Builder
	accepted := svc.SendMessageStream(context.Background(), "When should I spray?", func(chunk string) {
		got.WriteString(chunk)
	})

	if !accepted {
		t.Fatal("send should be accepted")
	}
	if got.String() != "Spray after the rain stops." {
		t.Fatalf("deltas should concatenate to the reply, got %q", got.String())
	}

	active, _ := svc.ActiveSession()
	last := active.Messages[len(active.Messages)-1]
	if last.Role != chatmodel.RoleModel || last.Text != "Spray after the rain stops." {
		t.Fatalf("committed reply mismatch: %+v", last)
	}
}
