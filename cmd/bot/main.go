package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/yourusername/pc-advisor-bot/config"
	"github.com/yourusername/pc-advisor-bot/internal/delivery/telegram"
	"github.com/yourusername/pc-advisor-bot/internal/infrastructure/catalog"
	"github.com/yourusername/pc-advisor-bot/internal/infrastructure/gemini"
	"github.com/yourusername/pc-advisor-bot/internal/infrastructure/parser"
	"github.com/yourusername/pc-advisor-bot/internal/infrastructure/serpapi"
	"github.com/yourusername/pc-advisor-bot/internal/infrastructure/storage"
	"github.com/yourusername/pc-advisor-bot/internal/usecase"
	"github.com/yourusername/pc-advisor-bot/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("🚀 Starting PC build advisor bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.AllowEmptySecrets {
		missing := []string{}
		if isEmptyOrDisabled(cfg.TelegramToken) {
			missing = append(missing, "TELEGRAM_BOT_TOKEN")
		}
		if isEmptyOrDisabled(cfg.GeminiAPIKey) {
			missing = append(missing, "GEMINI_API_KEY")
		}
		if isEmptyOrDisabled(cfg.SerpAPIKey) {
			missing = append(missing, "SERPAPI_API_KEY")
		}
		if len(missing) > 0 {
			logger.InfoLogger.Printf("Secrets missing (%s). Bot stays idle.", strings.Join(missing, ", "))
			<-sigChan
			return
		}
	}

	// Dependencies (dependency injection)

	// 1. Gemini needs extractor
	extractor, err := gemini.NewNeedsExtractor(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}
	defer extractor.Close()
	logger.InfoLogger.Println("✅ Gemini needs extractor ready")

	// 2. Price lookup
	priceRepo := serpapi.NewClient(cfg.SerpAPIKey)
	logger.InfoLogger.Println("✅ SerpApi price lookup ready")

	// 3. Build catalog (compiled-in, or .xlsx override)
	buildCatalog := catalog.NewStaticCatalog()
	if cfg.CatalogXLSX != "" {
		tiers, err := parser.NewExcelCatalogParser().Parse(cfg.CatalogXLSX)
		if err != nil {
			log.Fatalf("❌ Failed to load catalog override: %v", err)
		}
		buildCatalog = catalog.NewCatalog(tiers)
		logger.InfoLogger.Printf("✅ Catalog override loaded from %s (%d tiers)", cfg.CatalogXLSX, len(tiers))
	}

	// 4. Chat history store (in-memory)
	chatRepo := storage.NewMemoryChatRepository(cfg.MaxContextSize)
	logger.InfoLogger.Println("✅ Chat history store ready (in-memory)")

	// 5. Advisor use case
	advisor := usecase.NewAdvisorUseCase(extractor, priceRepo, buildCatalog)
	logger.InfoLogger.Println("✅ Advisor use case ready")

	// 6. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(cfg.TelegramToken, advisor, chatRepo)
	if err != nil {
		log.Fatalf("❌ Failed to create bot handler: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot ready: @%s", botHandler.GetBotUsername())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := botHandler.Start(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorLogger.Printf("❌ Bot error: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot is running. Press Ctrl+C to stop.")

	<-sigChan
	logger.InfoLogger.Println("⏳ Shutdown signal received...")

	cancel()
	logger.InfoLogger.Println("✅ Bot stopped.")
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}
