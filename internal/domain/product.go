package domain

// ProductCategories lists the categories the shop accepts.
var ProductCategories = []string{"gear", "prints", "guides"}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Badge       *string `json:"badge"`
	Description string  `json:"description"`
}

// ValidCategory reports whether c is one of the accepted shop categories.
func ValidCategory(c string) bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}
