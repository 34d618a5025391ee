// Package parser loads a build catalog override from an Excel workbook, so a
// deployment can swap tiers without a rebuild.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

// ExcelCatalogParser reads build tiers from an .xlsx file.
type ExcelCatalogParser struct{}

// NewExcelCatalogParser creates the parser.
func NewExcelCatalogParser() *ExcelCatalogParser {
	return &ExcelCatalogParser{}
}

// Parse reads the first sheet as rows of `Tier | Name | Category | Part`.
// Row order defines the category order of each tier; a leading header row is
// skipped. At least one complete tier row is required.
func (p *ExcelCatalogParser) Parse(path string) ([]entity.BuildTier, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sheet: %w", err)
	}

	var tiers []entity.BuildTier
	index := make(map[string]int)
	for i, row := range rows {
		if len(row) < 4 {
			continue
		}
		key := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		category := strings.TrimSpace(row[2])
		part := strings.TrimSpace(row[3])
		if key == "" || category == "" || part == "" {
			continue
		}
		if i == 0 && strings.EqualFold(key, "tier") {
			continue
		}

		idx, ok := index[key]
		if !ok {
			idx = len(tiers)
			index[key] = idx
			tiers = append(tiers, entity.BuildTier{Key: key, Name: name})
		}
		tiers[idx].Parts = append(tiers[idx].Parts, entity.PartSpec{Category: category, Name: part})
	}

	if len(tiers) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no tiers", path)
	}
	return tiers, nil
}
