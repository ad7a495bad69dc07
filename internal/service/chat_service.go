package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/internal/repository"
	"github.com/leanttro/feiras-de-rua/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SafetyFallbackReply is offered to the user when the provider refuses to
// answer on content-policy grounds.
const SafetyFallbackReply = "Desculpe, não posso responder a essa pergunta. Posso ajudar com informações sobre as feiras de São Paulo?"

// primingTurns opens every conversation before the stored history.
var primingTurns = []models.ChatTurn{
	{
		User:      "Olá! Você pode me ajudar com informações sobre as feiras de São Paulo?",
		Assistant: "Claro! Sou o assistente do Feiras de Rua. Pergunte sobre dias, horários, endereços ou bairros das feiras.",
	},
}

// ChatReply is the answer to one chat message.
type ChatReply struct {
	Reply     string
	SessionID string
}

type ChatService struct {
	model    ChatModel
	context  *ChatContext
	sessions repository.ChatSessionStore
	timeout  time.Duration
	logger   *zap.Logger
}

func NewChatService(
	model ChatModel,
	chatContext *ChatContext,
	sessions repository.ChatSessionStore,
	timeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		model:    model,
		context:  chatContext,
		sessions: sessions,
		timeout:  timeout,
		logger:   logger,
	}
}

// Chat answers message within the conversation identified by sessionID.
// An empty or malformed sessionID starts a new conversation.
func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	message = strings.TrimSpace(sanitizeUTF8(message))
	if message == "" {
		return nil, &ValidationError{Fields: []string{"message"}}
	}
	if s.model == nil {
		return nil, ErrChatUnavailable
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = uuid.NewString()
	}

	history, err := s.sessions.History(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Failed to load chat history, continuing without it",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		history = nil
	}

	prompt := ChatPrompt{
		System:  s.context.Instruction(),
		History: append(append([]models.ChatTurn(nil), primingTurns...), history...),
		Message: message,
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.model.Reply(callCtx, prompt)
	if err != nil {
		if errors.Is(err, ErrSafetyBlocked) {
			metrics.ChatUpstreamFailures.WithLabelValues(s.model.Name(), "safety").Inc()
			s.logger.Warn("Chat reply blocked by provider", zap.String("session_id", sessionID), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrChatBlocked, err)
		}

		reason := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		metrics.ChatUpstreamFailures.WithLabelValues(s.model.Name(), reason).Inc()
		s.logger.Error("Chat provider call failed",
			zap.String("session_id", sessionID),
			zap.String("provider", s.model.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrChatUnavailable, err)
	}

	if err := s.sessions.Append(ctx, sessionID, models.ChatTurn{User: message, Assistant: reply}); err != nil {
		s.logger.Warn("Failed to store chat turn", zap.String("session_id", sessionID), zap.Error(err))
	}

	return &ChatReply{Reply: reply, SessionID: sessionID}, nil
}
