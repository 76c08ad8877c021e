package catalog

// Product is a read-only catalog product summary as shown in chat responses.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Promoted    bool    `json:"promoted,omitempty"`
}

// IDs returns the product identifiers of the given slice, skipping empties.
func IDs(products []Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
