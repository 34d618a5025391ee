package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

// renderReport formats the selected build and its listings as a markdown
// table with one row per part and a computed estimated total.
func renderReport(tier entity.BuildTier, listings []entity.PartListing) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### Your Recommended %s\n\n", tier.Name)
	sb.WriteString("| Component | Part | Price | Image |\n")
	sb.WriteString("|---|---|---|---|\n")

	total := 0.0
	for _, part := range listings {
		total += priceValue(part.Price)
		fmt.Fprintf(&sb, "| **%s** | [%s](%s) | %s | ![%s](%s) |\n",
			part.Category, part.Name, part.Link, part.Price, part.Name, part.Image)
	}

	fmt.Fprintf(&sb, "\n**Estimated Total: $%.2f**", total)
	sb.WriteString("\n\n*Prices are estimates from live search results and may vary. Links will open in a new tab.*")
	return sb.String()
}

// priceValue extracts the numeric portion of a free-form price string by
// stripping every character that is not a digit or a decimal point. Malformed
// or missing prices ("Not Found") contribute zero, so a single failed lookup
// never blocks the whole report.
func priceValue(price string) float64 {
	var digits strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
