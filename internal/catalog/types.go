package catalog

// Product is an immutable catalog record. The catalog is read-only for the
// lifetime of the process; nothing in the system mutates a Product.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"in_stock"`
}

// Category groups products for browsing.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}
