package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/leanttro/feiras-de-rua/internal/repository"
	"github.com/leanttro/feiras-de-rua/pkg/metrics"

	"go.uber.org/zap"
)

const chatRules = `Você é o assistente virtual do guia Feiras de Rua de São Paulo.

REGRAS:
1. Responda APENAS com base nos dados das feiras fornecidos abaixo. Se a informação não estiver nos dados, diga que não a encontrou.
2. Se a pergunta não for sobre feiras de rua, recuse educadamente e lembre que você só fala sobre feiras.
3. Seja breve: no máximo três frases, em português.
4. Ao citar uma feira, informe dia, horário, endereço e bairro quando disponíveis.`

// ChatContext holds the system instruction built from a snapshot of the
// market tables. The snapshot is taken by Load and replaced only by a later
// Load, either explicit or from Run.
type ChatContext struct {
	repo    *repository.MarketRepository
	tables  []string
	maxRows uint64
	logger  *zap.Logger

	mu          sync.RWMutex
	instruction string
	loadedAt    time.Time
}

func NewChatContext(repo *repository.MarketRepository, tables []string, maxRows uint64, logger *zap.Logger) *ChatContext {
	return &ChatContext{
		repo:        repo,
		tables:      tables,
		maxRows:     maxRows,
		logger:      logger,
		instruction: chatRules,
	}
}

// Load reads every configured table and swaps in a new instruction. On
// failure the previous snapshot stays in place.
func (c *ChatContext) Load(ctx context.Context) error {
	var b strings.Builder
	b.WriteString(chatRules)

	for _, table := range c.tables {
		rows, err := c.repo.Snapshot(ctx, table, c.maxRows)
		if err != nil {
			return fmt.Errorf("failed to load %s for chat context: %w", table, err)
		}

		items := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			items = append(items, FormatRow(row, DateStyleISO))
		}
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to encode %s for chat context: %w", table, err)
		}

		fmt.Fprintf(&b, "\n\nDADOS DA TABELA %s (JSON):\n", table)
		b.Write(data)
		metrics.ChatSnapshotRows.WithLabelValues(table).Set(float64(len(rows)))
	}

	c.mu.Lock()
	c.instruction = b.String()
	c.loadedAt = time.Now()
	c.mu.Unlock()

	c.logger.Info("Chat context snapshot loaded",
		zap.Strings("tables", c.tables),
		zap.Int("instruction_bytes", b.Len()),
	)
	return nil
}

// Instruction returns the current system instruction.
func (c *ChatContext) Instruction() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.instruction
}

// LoadedAt reports when the current snapshot was taken; zero before the
// first successful Load.
func (c *ChatContext) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// Run reloads the snapshot every interval until ctx is cancelled.
func (c *ChatContext) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Load(ctx); err != nil {
				c.logger.Warn("Chat context refresh failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}
