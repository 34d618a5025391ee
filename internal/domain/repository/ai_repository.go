package repository

import (
	"context"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

// NeedsExtractor turns a full conversation transcript into a structured
// NeedsRecord. Implementations own their retry/resilience policy; the advisor
// absorbs any returned error into the all-sentinel record, so faults never
// reach the user as errors.
type NeedsExtractor interface {
	ExtractNeeds(ctx context.Context, transcript string) (entity.NeedsRecord, error)

	// Close releases the underlying client.
	Close() error
}
