package entity

// Part listing sentinels used when a marketplace lookup yields nothing. The
// report must tolerate these and keep rendering.
const (
	PriceNotFound = "Not Found"
	LinkNotFound  = "#"
)

// PartListing is one best-effort marketplace result for a single part. Price
// is the free-form string as returned by the source ("$199.99", "1,299.00",
// "Not Found") and is not guaranteed numeric.
type PartListing struct {
	Category string `json:"type"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Link     string `json:"link"`
	Image    string `json:"image"`
}

// NotFoundListing is the placeholder produced when no result is available for
// a part. It never fails the caller.
func NotFoundListing(partName string) PartListing {
	return PartListing{
		Name:  partName,
		Price: PriceNotFound,
		Link:  LinkNotFound,
		Image: "",
	}
}
