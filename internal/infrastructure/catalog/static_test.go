package catalog

import (
	"testing"

	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
)

func TestNewStaticCatalog_HasFourTiersInOrder(t *testing.T) {
	cat := NewStaticCatalog()

	tiers := cat.Tiers()
	wantKeys := []string{
		constants.TierBudgetOffice,
		constants.TierMidRangeGaming,
		constants.TierHighEndGaming,
		constants.TierProWorkstation,
	}
	if len(tiers) != len(wantKeys) {
		t.Fatalf("got %d tiers, want %d", len(tiers), len(wantKeys))
	}
	for i, key := range wantKeys {
		if tiers[i].Key != key {
			t.Fatalf("tiers[%d].Key = %q, want %q", i, tiers[i].Key, key)
		}
	}
}

func TestNewStaticCatalog_OfficeTierHasNoGPU(t *testing.T) {
	cat := NewStaticCatalog()

	office, ok := cat.Tier(constants.TierBudgetOffice)
	if !ok {
		t.Fatalf("tier %q missing", constants.TierBudgetOffice)
	}
	for _, part := range office.Parts {
		if part.Category == "GPU" {
			t.Fatalf("office tier should rely on integrated graphics, found GPU %q", part.Name)
		}
	}
	if len(office.Parts) != 6 {
		t.Fatalf("office tier has %d parts, want 6", len(office.Parts))
	}
}

func TestNewStaticCatalog_GamingTiersStartWithCPU(t *testing.T) {
	cat := NewStaticCatalog()

	for _, key := range []string{constants.TierMidRangeGaming, constants.TierHighEndGaming, constants.TierProWorkstation} {
		tier, ok := cat.Tier(key)
		if !ok {
			t.Fatalf("tier %q missing", key)
		}
		if len(tier.Parts) != 8 {
			t.Fatalf("tier %q has %d parts, want 8", key, len(tier.Parts))
		}
		if tier.Parts[0].Category != "CPU" {
			t.Fatalf("tier %q first category = %q, want CPU", key, tier.Parts[0].Category)
		}
	}
}

func TestTiers_ReturnsDefensiveCopy(t *testing.T) {
	cat := NewStaticCatalog()

	first := cat.Tiers()
	first[0].Key = "mutated"

	if cat.Tiers()[0].Key == "mutated" {
		t.Fatal("Tiers() exposed internal state to mutation")
	}
}

func TestTier_UnknownKey(t *testing.T) {
	if _, ok := NewStaticCatalog().Tier("no_such_tier"); ok {
		t.Fatal("Tier() reported an unknown key as present")
	}
}
