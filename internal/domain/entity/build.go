package entity

// PartSpec is one entry of a build tier: a component category ("CPU", "GPU",
// ...) and the specific compatible part chosen for it.
type PartSpec struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// BuildTier is an immutable, hand-curated PC configuration. Parts are kept as
// an ordered slice, not a map: the report renders rows in exactly this order
// and price lookups are issued per entry.
type BuildTier struct {
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Parts []PartSpec `json:"parts"`
}

// Categories returns the tier's component categories in catalog order.
func (t BuildTier) Categories() []string {
	out := make([]string, len(t.Parts))
	for i, p := range t.Parts {
		out[i] = p.Category
	}
	return out
}
