package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
)

type extractorClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewNeedsExtractor creates the Gemini-backed needs extractor.
func NewNeedsExtractor(apiKey string) (repository.NeedsExtractor, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(extractionInstruction)},
	}

	return &extractorClient{
		client: client,
		model:  model,
	}, nil
}

// ExtractNeeds reads the transcript and returns the structured NeedsRecord.
// On any persistent failure it returns the all-sentinel record alongside the
// error; the caller treats the two the same way.
func (g *extractorClient) ExtractNeeds(ctx context.Context, transcript string) (entity.NeedsRecord, error) {
	prompt := genai.Text("Here is the chat history:\n" + transcript)

	var lastErr error
	for attempt := 1; attempt <= constants.MaxRetries; attempt++ {
		resp, err := g.model.GenerateContent(ctx, prompt)
		if err != nil {
			lastErr = err
			log.Printf("extraction attempt %d/%d failed: %v", attempt, constants.MaxRetries, err)
			if err := waitRetry(ctx, attempt); err != nil {
				return entity.EmptyNeeds(), err
			}
			continue
		}

		raw := strings.TrimSpace(extractText(resp))
		if raw == "" {
			lastErr = fmt.Errorf("empty extraction response")
			if err := waitRetry(ctx, attempt); err != nil {
				return entity.EmptyNeeds(), err
			}
			continue
		}

		needs, err := parseNeeds(raw)
		if err != nil {
			lastErr = err
			log.Printf("extraction attempt %d/%d returned malformed payload: %v", attempt, constants.MaxRetries, err)
			if err := waitRetry(ctx, attempt); err != nil {
				return entity.EmptyNeeds(), err
			}
			continue
		}
		return needs, nil
	}

	return entity.EmptyNeeds(), fmt.Errorf("needs extraction failed after %d attempts: %w", constants.MaxRetries, lastErr)
}

// Close releases the underlying Gemini client.
func (g *extractorClient) Close() error {
	return g.client.Close()
}

// waitRetry sleeps before the next attempt, honoring cancellation. After the
// final attempt it returns immediately.
func waitRetry(ctx context.Context, attempt int) error {
	if attempt >= constants.MaxRetries {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(constants.RetryDelay * time.Second):
		return nil
	}
}

// parseNeeds decodes the model's JSON payload into a normalized NeedsRecord.
func parseNeeds(raw string) (entity.NeedsRecord, error) {
	raw = stripCodeFence(raw)

	var payload struct {
		Budget    float64 `json:"budget"`
		UseCase   string  `json:"use_case"`
		Confirmed bool    `json:"has_confirmed"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return entity.EmptyNeeds(), fmt.Errorf("malformed extraction payload: %w", err)
	}

	needs := entity.NeedsRecord{
		Budget:    int(payload.Budget),
		UseCase:   entity.UseCase(strings.ToLower(strings.TrimSpace(payload.UseCase))),
		Confirmed: payload.Confirmed,
	}
	return needs.Normalize(), nil
}

// stripCodeFence removes a surrounding markdown code fence, which some model
// responses wrap around the JSON despite the MIME type hint.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

// extractText flattens the response candidates into plain text.
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}
