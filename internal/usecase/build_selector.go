package usecase

import (
	"strings"

	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
)

// selectBuildTier deterministically picks one tier: use case first, budget as
// fallback. A tier is always produced; there is no failure mode.
func selectBuildTier(cat repository.Catalog, budget int, useCase entity.UseCase) entity.BuildTier {
	uc := string(useCase)
	switch {
	case strings.Contains(uc, "gaming"):
		if budget < constants.HighEndGamingBudget {
			return tierOrEmpty(cat, constants.TierMidRangeGaming)
		}
		return tierOrEmpty(cat, constants.TierHighEndGaming)
	case strings.Contains(uc, "editing"):
		return tierOrEmpty(cat, constants.TierProWorkstation)
	case strings.Contains(uc, "office"):
		return tierOrEmpty(cat, constants.TierBudgetOffice)
	}

	// Unrecognized use case: pure budget thresholds.
	switch {
	case budget <= constants.FallbackOfficeBudget:
		return tierOrEmpty(cat, constants.TierBudgetOffice)
	case budget <= constants.FallbackMidRangeBudget:
		return tierOrEmpty(cat, constants.TierMidRangeGaming)
	default:
		return tierOrEmpty(cat, constants.TierHighEndGaming)
	}
}

// tierOrEmpty keeps the selector total even against a broken injected
// catalog: a missing key yields an empty tier instead of a panic.
func tierOrEmpty(cat repository.Catalog, key string) entity.BuildTier {
	if t, ok := cat.Tier(key); ok {
		return t
	}
	return entity.BuildTier{Key: key, Name: key}
}
