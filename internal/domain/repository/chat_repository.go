package repository

import (
	"context"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

// ChatRepository stores per-chat conversation turns for the delivery layer.
// The advisor core never reads this store; history is passed to it explicitly
// on every call.
type ChatRepository interface {
	SaveTurn(ctx context.Context, turn entity.Turn) error
	GetHistory(ctx context.Context, chatID int64, limit int) ([]entity.Turn, error)
	ClearHistory(ctx context.Context, chatID int64) error
}
