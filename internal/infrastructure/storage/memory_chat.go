package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
)

type memoryChatRepository struct {
	mu       sync.RWMutex
	contexts map[int64]*entity.ChatContext
	maxSize  int
}

// NewMemoryChatRepository creates an in-memory chat history store. History
// lives only for the process lifetime; conversations are not persisted.
func NewMemoryChatRepository(maxContextSize int) repository.ChatRepository {
	return &memoryChatRepository{
		contexts: make(map[int64]*entity.ChatContext),
		maxSize:  maxContextSize,
	}
}

// SaveTurn appends a completed turn to the chat's history.
func (m *memoryChatRepository) SaveTurn(ctx context.Context, turn entity.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	chatCtx, exists := m.contexts[turn.ChatID]
	if !exists {
		chatCtx = &entity.ChatContext{
			ChatID: turn.ChatID,
			Turns:  []entity.Turn{},
		}
		m.contexts[turn.ChatID] = chatCtx
	}

	chatCtx.Turns = append(chatCtx.Turns, turn)
	chatCtx.LastUsed = time.Now()

	if len(chatCtx.Turns) > m.maxSize {
		chatCtx.Turns = chatCtx.Turns[len(chatCtx.Turns)-m.maxSize:]
	}

	return nil
}

// GetHistory returns the chat's turns, newest last. limit <= 0 means all.
func (m *memoryChatRepository) GetHistory(ctx context.Context, chatID int64, limit int) ([]entity.Turn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chatCtx, exists := m.contexts[chatID]
	if !exists {
		return []entity.Turn{}, nil
	}

	turns := chatCtx.Turns
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	// Return a defensive copy so callers can safely iterate without holding
	// the lock.
	out := make([]entity.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// ClearHistory drops the chat's stored turns.
func (m *memoryChatRepository) ClearHistory(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.contexts, chatID)
	return nil
}
