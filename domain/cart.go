package domain

// CartLine is a product snapshot plus the requested quantity. Quantity is
// clamped to >= 1 by the cart service; availability is only checked at
// checkout time.
type CartLine struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
}

// Cart lives in the client-state store keyed per user. It never touches the
// catalog store except through the checkout flow.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Find returns the index of the line holding productID, or -1.
func (c Cart) Find(productID uint64) int {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i
		}
	}

	return -1
}

func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}

	return total
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}
