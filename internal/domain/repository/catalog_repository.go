package repository

import "github.com/yourusername/pc-advisor-bot/internal/domain/entity"

// Catalog is the read-only table of pre-vetted, internally compatible build
// tiers. It is injected into the advisor so tests can substitute fixture
// tiers without touching production data.
type Catalog interface {
	// Tier returns the tier for a key, reporting whether it exists.
	Tier(key string) (entity.BuildTier, bool)

	// Tiers returns every tier in a stable order.
	Tiers() []entity.BuildTier
}
