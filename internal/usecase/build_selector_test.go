package usecase

import (
	"testing"

	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/infrastructure/catalog"
)

func TestSelectBuildTier(t *testing.T) {
	cat := catalog.NewStaticCatalog()

	tests := []struct {
		name    string
		budget  int
		useCase entity.UseCase
		want    string
	}{
		{"gaming below threshold", 1500, entity.UseCaseGaming, constants.TierMidRangeGaming},
		{"gaming at threshold is high-end", 1600, entity.UseCaseGaming, constants.TierHighEndGaming},
		{"gaming has no upper bound", 999999, entity.UseCaseGaming, constants.TierHighEndGaming},
		{"editing ignores budget", 999999, entity.UseCaseEditing, constants.TierProWorkstation},
		{"editing on tiny budget", 100, entity.UseCaseEditing, constants.TierProWorkstation},
		{"office ignores budget", 5000, entity.UseCaseOffice, constants.TierBudgetOffice},
		{"unknown low budget falls back to office", 500, entity.UseCaseUnknown, constants.TierBudgetOffice},
		{"unknown at office cap", 700, entity.UseCaseUnknown, constants.TierBudgetOffice},
		{"unknown mid budget falls back to mid-range", 1600, entity.UseCaseUnknown, constants.TierMidRangeGaming},
		{"unknown high budget falls back to high-end", 1601, entity.UseCaseUnknown, constants.TierHighEndGaming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectBuildTier(cat, tt.budget, tt.useCase)
			if got.Key != tt.want {
				t.Fatalf("selectBuildTier(%d, %q) = %q, want %q", tt.budget, tt.useCase, got.Key, tt.want)
			}
		})
	}
}

func TestSelectBuildTier_AlwaysReturnsATier(t *testing.T) {
	// Even against an empty injected catalog the selector stays total.
	got := selectBuildTier(catalog.NewCatalog(nil), 1000, entity.UseCaseGaming)
	if got.Key != constants.TierMidRangeGaming {
		t.Fatalf("selectBuildTier on empty catalog = %q, want key %q", got.Key, constants.TierMidRangeGaming)
	}
}
