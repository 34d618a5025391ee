package repository

import (
	"context"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

// PriceRepository resolves a canonical part name to its best-effort current
// marketplace listing. A failed lookup is reported as an error so the advisor
// can substitute the Not Found placeholder; implementations do not retry on
// the advisor's behalf.
type PriceRepository interface {
	Lookup(ctx context.Context, partName string) (entity.PartListing, error)
}
