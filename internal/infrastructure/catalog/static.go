// Package catalog holds the hand-curated table of compatible PC builds. The
// rule-based tiers guarantee component compatibility without any runtime
// checking; they are compiled-in, read-only data.
package catalog

import (
	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
)

type staticCatalog struct {
	tiers []entity.BuildTier
	byKey map[string]entity.BuildTier
}

// NewStaticCatalog returns the built-in four-tier catalog.
func NewStaticCatalog() repository.Catalog {
	return NewCatalog(defaultTiers())
}

// NewCatalog wraps an arbitrary tier list (e.g. one loaded from a file or a
// test fixture) in the read-only Catalog contract.
func NewCatalog(tiers []entity.BuildTier) repository.Catalog {
	byKey := make(map[string]entity.BuildTier, len(tiers))
	for _, t := range tiers {
		byKey[t.Key] = t
	}
	return &staticCatalog{tiers: tiers, byKey: byKey}
}

func (c *staticCatalog) Tier(key string) (entity.BuildTier, bool) {
	t, ok := c.byKey[key]
	return t, ok
}

func (c *staticCatalog) Tiers() []entity.BuildTier {
	out := make([]entity.BuildTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

func defaultTiers() []entity.BuildTier {
	return []entity.BuildTier{
		{
			Key:  constants.TierBudgetOffice,
			Name: "Budget Office/Web Browse Build",
			Parts: []entity.PartSpec{
				{Category: "CPU", Name: "AMD Ryzen 5 5600G"},
				{Category: "Motherboard", Name: "ASRock B450M PRO4"},
				{Category: "RAM", Name: "Corsair Vengeance LPX 16GB DDR4 3200MHz"},
				{Category: "Storage", Name: "Crucial P3 1TB NVMe SSD"},
				{Category: "PSU", Name: "Thermaltake Smart 500W 80+ White"},
				{Category: "Case", Name: "Cooler Master MasterBox Q300L"},
			},
		},
		{
			Key:  constants.TierMidRangeGaming,
			Name: "Mid-Range Gaming Build",
			Parts: []entity.PartSpec{
				{Category: "CPU", Name: "AMD Ryzen 5 7600X"},
				{Category: "GPU", Name: "NVIDIA GeForce RTX 4060"},
				{Category: "Motherboard", Name: "Gigabyte B650 Gaming X AX"},
				{Category: "RAM", Name: "G.Skill Flare X5 32GB DDR5 6000MHz"},
				{Category: "Storage", Name: "Samsung 980 Pro 1TB NVMe SSD"},
				{Category: "CPU Cooler", Name: "Thermalright Phantom Spirit 120 SE"},
				{Category: "PSU", Name: "Corsair RM750e 750W 80+ Gold"},
				{Category: "Case", Name: "Lian Li Lancool 216"},
			},
		},
		{
			Key:  constants.TierHighEndGaming,
			Name: "High-End Gaming/Streaming Build",
			Parts: []entity.PartSpec{
				{Category: "CPU", Name: "AMD Ryzen 7 7800X3D"},
				{Category: "GPU", Name: "NVIDIA GeForce RTX 4070 Super"},
				{Category: "Motherboard", Name: "MSI MAG B650 Tomahawk WiFi"},
				{Category: "RAM", Name: "G.Skill Trident Z5 Neo 32GB DDR5 6000MHz CL30"},
				{Category: "Storage", Name: "Western Digital Black SN850X 2TB NVMe SSD"},
				{Category: "CPU Cooler", Name: "Thermalright Phantom Spirit 120 SE"},
				{Category: "PSU", Name: "SeaSonic FOCUS Plus Gold 850W"},
				{Category: "Case", Name: "Fractal Design Pop Air"},
			},
		},
		{
			Key:  constants.TierProWorkstation,
			Name: "Professional Video Editing Workstation",
			Parts: []entity.PartSpec{
				{Category: "CPU", Name: "Intel Core i7-14700K"},
				{Category: "GPU", Name: "NVIDIA GeForce RTX 4080 Super"},
				{Category: "Motherboard", Name: "MSI PRO Z790-A WIFI"},
				{Category: "RAM", Name: "Corsair Vengeance 64GB DDR5 5600MHz"},
				{Category: "Storage", Name: "Samsung 990 Pro 2TB NVMe SSD"},
				{Category: "CPU Cooler", Name: "ARCTIC Liquid Freezer II 360"},
				{Category: "PSU", Name: "Corsair RM1000e 1000W 80+ Gold"},
				{Category: "Case", Name: "be quiet! Pure Base 500DX"},
			},
		},
	}
}
