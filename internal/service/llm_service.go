package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrSafetyBlocked is returned by a ChatModel when the provider declined to
// answer on content-policy grounds.
var ErrSafetyBlocked = errors.New("blocked by provider safety filters")

// ChatPrompt is everything a provider needs for one reply.
type ChatPrompt struct {
	System  string
	History []models.ChatTurn
	Message string
}

// ChatModel generates one assistant reply.
type ChatModel interface {
	Reply(ctx context.Context, prompt ChatPrompt) (string, error)
	Name() string
	Close() error
}

const chatTemperature = 0.3

// NewChatModel builds the provider selected in config. It returns nil, nil
// when chat is disabled.
func NewChatModel(cfg *config.Config, logger *zap.Logger) (ChatModel, error) {
	switch cfg.Chat.Provider {
	case "":
		logger.Info("Chat provider not configured, chat disabled")
		return nil, nil
	case "gemini":
		return NewGeminiModel(&cfg.Gemini, logger)
	case "gigachat":
		return NewGigaChatModel(&cfg.GigaChat, logger)
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Chat.Provider)
	}
}

// GigaChatModel talks to Sber GigaChat.
type GigaChatModel struct {
	client *gigago.Client
	model  string
	logger *zap.Logger
}

func NewGigaChatModel(cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GIGACHAT_API_KEY is required for the gigachat provider")
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(context.Background(), cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	logger.Info("Using GigaChat chat provider", zap.String("model", cfg.Model))
	return &GigaChatModel{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (m *GigaChatModel) Name() string { return "gigachat" }

func (m *GigaChatModel) Reply(ctx context.Context, prompt ChatPrompt) (string, error) {
	model := m.client.GenerativeModel(m.model)
	model.SystemInstruction = prompt.System
	model.Temperature = chatTemperature

	messages := make([]gigago.Message, 0, 2*len(prompt.History)+1)
	for _, turn := range prompt.History {
		messages = append(messages,
			gigago.Message{Role: gigago.RoleUser, Content: turn.User},
			gigago.Message{Role: gigago.RoleAssistant, Content: turn.Assistant},
		)
	}
	messages = append(messages, gigago.Message{Role: gigago.RoleUser, Content: prompt.Message})

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (m *GigaChatModel) Close() error {
	if m.client != nil {
		m.client.Close()
	}
	return nil
}

// GeminiModel talks to the Google Gemini API.
type GeminiModel struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiModel(cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiModel, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required for the gemini provider")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Using Gemini chat provider", zap.String("model", cfg.Model))
	return &GeminiModel{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (m *GeminiModel) Name() string { return "gemini" }

func (m *GeminiModel) Reply(ctx context.Context, prompt ChatPrompt) (string, error) {
	contents := make([]*genai.Content, 0, 2*len(prompt.History)+1)
	for _, turn := range prompt.History {
		contents = append(contents,
			genai.NewContentFromText(turn.User, genai.RoleUser),
			genai.NewContentFromText(turn.Assistant, genai.RoleModel),
		)
	}
	contents = append(contents, genai.NewContentFromText(prompt.Message, genai.RoleUser))

	resp, err := m.client.Models.GenerateContent(ctx, m.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       genai.Ptr[float32](chatTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt %s", ErrSafetyBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: reply", ErrSafetyBlocked)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response from Gemini")
	}
	return text, nil
}

// Close is a no-op for the genai client.
func (m *GeminiModel) Close() error { return nil }
