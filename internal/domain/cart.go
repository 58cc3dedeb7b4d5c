package domain

// Cart is the single persisted cart, one line per product, ordered by
// product id ascending. Lines never carry a quantity below 1; a line
// dropping to zero is deleted instead.
type Cart struct {
	Items []CartLine `json:"items"`
}

// CartLine embeds the live product row so price and name always reflect
// the catalog at read time, not the values captured when the line was added.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TotalQuantity sums line quantities, matching the "total items" badge
// the client renders.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Items {
		total += line.Quantity
	}
	return total
}
