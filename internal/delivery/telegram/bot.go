// Package telegram is the thin chat front-end: it feeds user messages and
// stored history into the advisor and relays the reply. All dialogue logic
// lives in the usecase layer.
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
	"github.com/yourusername/pc-advisor-bot/internal/usecase"
	"github.com/yourusername/pc-advisor-bot/pkg/logger"
)

const clearedMessage = "Conversation cleared. What do you plan to use this PC for and what is your approximate budget?"

// BotHandler is the Telegram bot handler.
type BotHandler struct {
	bot      *tgbotapi.BotAPI
	advisor  usecase.AdvisorUseCase
	chatRepo repository.ChatRepository
}

// NewBotHandler creates the bot handler.
func NewBotHandler(
	token string,
	advisor usecase.AdvisorUseCase,
	chatRepo repository.ChatRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	return &BotHandler{
		bot:      bot,
		advisor:  advisor,
		chatRepo: chatRepo,
	}, nil
}

// GetBotUsername returns the authenticated bot username.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

// Start runs the update loop until the context is cancelled.
func (h *BotHandler) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		h.handleCommand(ctx, msg)
		return
	}

	chatID := msg.Chat.ID
	history, err := h.chatRepo.GetHistory(ctx, chatID, 0)
	if err != nil {
		logger.ErrorLogger.Printf("history load failed for chat %d: %v", chatID, err)
		history = nil
	}

	reply := h.advisor.Respond(ctx, msg.Text, history)

	turn := entity.Turn{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		User:      msg.Text,
		Assistant: reply,
		Timestamp: time.Now(),
	}
	if err := h.chatRepo.SaveTurn(ctx, turn); err != nil {
		logger.ErrorLogger.Printf("turn save failed for chat %d: %v", chatID, err)
	}

	h.send(chatID, reply)
}

func (h *BotHandler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		if err := h.chatRepo.ClearHistory(ctx, chatID); err != nil {
			logger.ErrorLogger.Printf("history clear failed for chat %d: %v", chatID, err)
		}
		// Empty history routes to the fixed onboarding prompt.
		h.send(chatID, h.advisor.Respond(ctx, msg.Text, nil))
	case "clear":
		if err := h.chatRepo.ClearHistory(ctx, chatID); err != nil {
			logger.ErrorLogger.Printf("history clear failed for chat %d: %v", chatID, err)
		}
		h.send(chatID, clearedMessage)
	default:
		h.send(chatID, "Unknown command. Just tell me what you need the PC for, or use /clear to start over.")
	}
}

func (h *BotHandler) send(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.bot.Send(reply); err != nil {
		logger.ErrorLogger.Printf("send failed for chat %d: %v", chatID, err)
	}
}
