package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/kissandost/backend/internal/config"
	"github.com/kissandost/backend/internal/i18n"
	"github.com/kissandost/backend/internal/model/chat"
	"github.com/kissandost/backend/internal/model/market"
)

// historyLimit caps how many prior turns are replayed to the model per
// request. Older turns are dropped to stay inside the token budget.
const historyLimit = 6

// Service runs the advisory conversation chain against the configured
// hosted model.
type Service struct {
	chatModel model.ChatModel
	markets   market.Store
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the prompt/model chain for the configured provider.
func NewService(ctx context.Context, markets market.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		markets:   markets,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// StreamingEnabled indicates whether SSE/WebSocket callers may stream.
func (s *Service) StreamingEnabled() bool {
	return s.cfg.StreamResponse
}

// GenerateReply produces a single advisory reply for the conversation.
// Only the most recent turns are forwarded as context.
func (s *Service) GenerateReply(ctx context.Context, history []chat.Message, userText string, lang i18n.Language) (string, error) {
	input := s.buildChainInput(history, userText, lang)

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run advisory chain: %w", err)
	}

	log.Printf("[ai] generated reply, lang=%s, length=%d", lang, len(response.Content))
	return response.Content, nil
}

// StreamReply streams the advisory reply, forwarding each chunk to
// onDelta, and returns the concatenated full text.
func (s *Service) StreamReply(ctx context.Context, history []chat.Message, userText string, lang i18n.Language, onDelta func(chunk string)) (string, error) {
	if !s.StreamingEnabled() {
		return s.GenerateReply(ctx, history, userText, lang)
	}

	input := s.buildChainInput(history, userText, lang)

	stream, err := s.chain.Stream(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to stream advisory chain output: %w", err)
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" && onDelta != nil {
			onDelta(chunk.Content)
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", err
	}
	return response.Content, nil
}

func (s *Service) buildChainInput(history []chat.Message, userText string, lang i18n.Language) map[string]any {
	return map[string]any{
		"system":  BuildSystemInstruction(s.markets.Rates(), s.markets.Alerts(), lang),
		"history": buildHistoryMessages(history),
		"query":   userText,
	}
}

func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Text))
		case chat.RoleModel:
			history = append(history, schema.AssistantMessage(msg.Text, nil))
		}
	}

	return history
}
