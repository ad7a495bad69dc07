package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/models"

	"github.com/redis/go-redis/v9"
)

// ChatSessionStore keeps the conversation history of each chat session.
// Histories are bounded: Append keeps only the newest maxTurns turns.
type ChatSessionStore interface {
	History(ctx context.Context, sessionID string) ([]models.ChatTurn, error)
	Append(ctx context.Context, sessionID string, turn models.ChatTurn) error
}

const sessionKeyPrefix = "chat:session:"

// RedisSessionStore stores each session as a JSON list under its own key
// with a sliding TTL.
type RedisSessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	maxTurns int
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration, maxTurns int) *RedisSessionStore {
	return &RedisSessionStore{
		client:   client,
		ttl:      ttl,
		maxTurns: maxTurns,
	}
}

func (s *RedisSessionStore) History(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	items, err := s.client.LRange(ctx, sessionKeyPrefix+sessionID, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read chat session: %w", err)
	}

	turns := make([]models.ChatTurn, 0, len(items))
	for _, item := range items {
		var turn models.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode chat turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *RedisSessionStore) Append(ctx context.Context, sessionID string, turn models.ChatTurn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return err
	}

	key := sessionKeyPrefix + sessionID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if s.maxTurns > 0 {
		pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat turn: %w", err)
	}
	return nil
}

// MemorySessionStore keeps sessions in process memory. Used when no redis
// address is configured. Like the redis store, a session expires ttl after
// its last Append; expired sessions are swept on Append.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	ttl      time.Duration
	maxTurns int
	now      func() time.Time
}

type memorySession struct {
	turns    []models.ChatTurn
	lastSeen time.Time
}

func NewMemorySessionStore(ttl time.Duration, maxTurns int) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		maxTurns: maxTurns,
		now:      time.Now,
	}
}

func (s *MemorySessionStore) expired(session *memorySession, now time.Time) bool {
	return s.ttl > 0 && now.Sub(session.lastSeen) >= s.ttl
}

func (s *MemorySessionStore) History(_ context.Context, sessionID string) ([]models.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return []models.ChatTurn{}, nil
	}
	if s.expired(session, s.now()) {
		delete(s.sessions, sessionID)
		return []models.ChatTurn{}, nil
	}

	out := make([]models.ChatTurn, len(session.turns))
	copy(out, session.turns)
	return out, nil
}

func (s *MemorySessionStore) Append(_ context.Context, sessionID string, turn models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
		}
	}

	session, ok := s.sessions[sessionID]
	if !ok {
		session = &memorySession{}
		s.sessions[sessionID] = session
	}
	turns := append(session.turns, turn)
	if s.maxTurns > 0 && len(turns) > s.maxTurns {
		turns = append([]models.ChatTurn(nil), turns[len(turns)-s.maxTurns:]...)
	}
	session.turns = turns
	session.lastSeen = now
	return nil
}
