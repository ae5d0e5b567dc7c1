package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// mockChatModel answers with canned advisory text so the service can run
// end to end without hosted-model credentials.
type mockChatModel struct{}

func newMockChatModel() model.ChatModel {
	return &mockChatModel{}
}

// Generate implements model.BaseChatModel.
func (m *mockChatModel) Generate(_ context.Context, in []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	query := ""
	for i := len(in) - 1; i >= 0; i-- {
		if in[i] != nil && in[i].Role == schema.User {
			query = in[i].Content
			break
		}
	}
	reply := fmt.Sprintf("Kissan bhai, here is general advice about: %s. For wheat, apply 1 bag of urea per acre after first irrigation (approx PKR 5,000).", strings.TrimSpace(query))
	return schema.AssistantMessage(reply, nil), nil
}

// Stream implements model.BaseChatModel by splitting the canned reply
// into word chunks.
func (m *mockChatModel) Stream(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	full, err := m.Generate(ctx, in, opts...)
	if err != nil {
		return nil, err
	}

	words := strings.SplitAfter(full.Content, " ")
	sr, sw := schema.Pipe[*schema.Message](len(words))
	go func() {
		defer sw.Close()
		for _, w := range words {
			if closed := sw.Send(schema.AssistantMessage(w, nil), nil); closed {
				return
			}
		}
	}()
	return sr, nil
}

// BindTools implements model.ChatModel.
func (m *mockChatModel) BindTools(_ []*schema.ToolInfo) error {
	return nil
}
