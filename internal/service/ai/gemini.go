package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/kissandost/backend/internal/config"
)

// geminiChatModel adapts the Google Gen AI SDK to eino's ChatModel so the
// advisory chain can run against Gemini the same way it runs against ark.
type geminiChatModel struct {
	client      *genai.Client
	model       string
	temperature *float32
	topP        *float32
	maxTokens   int32
}

func newGeminiChatModel(ctx context.Context, cfg config.AIConfig) (model.ChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	m := &geminiChatModel{client: client, model: cfg.Model}
	if cfg.Temperature != nil {
		val := float32(*cfg.Temperature)
		m.temperature = &val
	}
	if cfg.TopP != nil {
		val := float32(*cfg.TopP)
		m.topP = &val
	}
	if cfg.MaxTokens != nil {
		m.maxTokens = int32(*cfg.MaxTokens)
	}
	return m, nil
}

// Generate implements model.BaseChatModel.
func (m *geminiChatModel) Generate(ctx context.Context, in []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	contents, genCfg := m.convertInput(in)

	resp, err := m.client.Models.GenerateContent(ctx, m.model, contents, genCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini generate: empty candidate")
	}
	return schema.AssistantMessage(text, nil), nil
}

// Stream implements model.BaseChatModel.
func (m *geminiChatModel) Stream(ctx context.Context, in []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	contents, genCfg := m.convertInput(in)

	sr, sw := schema.Pipe[*schema.Message](8)
	go func() {
		defer sw.Close()
		for resp, err := range m.client.Models.GenerateContentStream(ctx, m.model, contents, genCfg) {
			if err != nil {
				sw.Send(nil, fmt.Errorf("gemini stream: %w", err))
				return
			}
			if text := resp.Text(); text != "" {
				if closed := sw.Send(schema.AssistantMessage(text, nil), nil); closed {
					return
				}
			}
		}
	}()

	return sr, nil
}

// BindTools implements model.ChatModel. Tool calling is not used by the
// advisory chain.
func (m *geminiChatModel) BindTools(_ []*schema.ToolInfo) error {
	return fmt.Errorf("gemini chat model: tool binding not supported")
}

// convertInput splits eino messages into a Gemini system instruction and
// role-tagged contents.
func (m *geminiChatModel) convertInput(in []*schema.Message) ([]*genai.Content, *genai.GenerateContentConfig) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:     m.temperature,
		TopP:            m.topP,
		MaxOutputTokens: m.maxTokens,
	}

	contents := make([]*genai.Content, 0, len(in))
	for _, msg := range in {
		if msg == nil {
			continue
		}
		switch msg.Role {
		case schema.System:
			genCfg.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case schema.Assistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	return contents, genCfg
}
