package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"
	"github.com/leanttro/feiras-de-rua/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChatModel struct {
	mu      sync.Mutex
	prompts []ChatPrompt
	reply   func(ctx context.Context, prompt ChatPrompt) (string, error)
}

func (m *fakeChatModel) Reply(ctx context.Context, prompt ChatPrompt) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.reply(ctx, prompt)
}

func (m *fakeChatModel) Name() string { return "fake" }
func (m *fakeChatModel) Close() error { return nil }

func (m *fakeChatModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func echoModel() *fakeChatModel {
	return &fakeChatModel{
		reply: func(_ context.Context, prompt ChatPrompt) (string, error) {
			return "eco: " + prompt.Message, nil
		},
	}
}

func newTestChatService(model ChatModel, timeout time.Duration) *ChatService {
	chatContext := NewChatContext(nil, nil, 0, zap.NewNop())
	return NewChatService(model, chatContext, repository.NewMemorySessionStore(time.Hour, 2), timeout, zap.NewNop())
}

func TestChatService_RejectsEmptyMessage(t *testing.T) {
	model := echoModel()
	svc := newTestChatService(model, time.Second)

	_, err := svc.Chat(context.Background(), "", "   ")

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"message"}, validationErr.Fields)
	assert.Zero(t, model.calls())
}

func TestChatService_DisabledWithoutModel(t *testing.T) {
	svc := newTestChatService(nil, time.Second)

	_, err := svc.Chat(context.Background(), "", "Onde tem feira no domingo?")
	assert.ErrorIs(t, err, ErrChatUnavailable)
}

func TestChatService_IssuesSessionAndKeepsHistory(t *testing.T) {
	model := echoModel()
	svc := newTestChatService(model, time.Second)
	ctx := context.Background()

	first, err := svc.Chat(ctx, "not-a-uuid", "Oi")
	require.NoError(t, err)
	assert.Equal(t, "eco: Oi", first.Reply)
	_, err = uuid.Parse(first.SessionID)
	require.NoError(t, err)

	second, err := svc.Chat(ctx, first.SessionID, "Tem feira na Lapa?")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)

	prompt := model.prompts[1]
	assert.Equal(t, chatRules, prompt.System)
	require.Len(t, prompt.History, len(primingTurns)+1)
	assert.Equal(t, models.ChatTurn{User: "Oi", Assistant: "eco: Oi"}, prompt.History[len(primingTurns)])
	assert.Equal(t, "Tem feira na Lapa?", prompt.Message)
}

func TestChatService_SessionsAreIsolated(t *testing.T) {
	model := echoModel()
	svc := newTestChatService(model, time.Second)
	ctx := context.Background()

	a, err := svc.Chat(ctx, "", "Primeira conversa")
	require.NoError(t, err)
	_, err = svc.Chat(ctx, "", "Segunda conversa")
	require.NoError(t, err)
	_, err = svc.Chat(ctx, a.SessionID, "De novo")
	require.NoError(t, err)

	assert.Len(t, model.prompts[1].History, len(primingTurns))
	assert.Len(t, model.prompts[2].History, len(primingTurns)+1)
}

func TestChatService_HistoryIsBounded(t *testing.T) {
	model := echoModel()
	svc := newTestChatService(model, time.Second)
	ctx := context.Background()

	sessionID := uuid.NewString()
	for i := 0; i < 5; i++ {
		_, err := svc.Chat(ctx, sessionID, fmt.Sprintf("mensagem %d", i))
		require.NoError(t, err)
	}

	last := model.prompts[len(model.prompts)-1]
	assert.Len(t, last.History, len(primingTurns)+2)
}

func TestChatService_Blocked(t *testing.T) {
	model := &fakeChatModel{
		reply: func(context.Context, ChatPrompt) (string, error) {
			return "", fmt.Errorf("gemini: %w", ErrSafetyBlocked)
		},
	}
	svc := newTestChatService(model, time.Second)

	_, err := svc.Chat(context.Background(), "", "pergunta proibida")
	assert.ErrorIs(t, err, ErrChatBlocked)
	assert.NotErrorIs(t, err, ErrChatUnavailable)
}

func TestChatService_UpstreamFailure(t *testing.T) {
	model := &fakeChatModel{
		reply: func(context.Context, ChatPrompt) (string, error) {
			return "", errors.New("502 bad gateway")
		},
	}
	svc := newTestChatService(model, time.Second)

	_, err := svc.Chat(context.Background(), "", "Oi")
	assert.ErrorIs(t, err, ErrChatUnavailable)
}

func TestChatService_Timeout(t *testing.T) {
	model := &fakeChatModel{
		reply: func(ctx context.Context, _ ChatPrompt) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	svc := newTestChatService(model, 20*time.Millisecond)

	_, err := svc.Chat(context.Background(), "", "Oi")
	assert.ErrorIs(t, err, ErrChatUnavailable)
}
