package model

// CartLine relates one user to one product with a positive quantity.
// At most one line exists per (user, product) pair; repeated adds
// increment the quantity.
type CartLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
}

// CartItem is a cart line joined with its product for display and totals.
type CartItem struct {
	LineID    int64
	ProductID int64
	Name      string
	Price     float64
	ImageURL  string
	Quantity  int
}

// Subtotal returns the line cost at the current product price.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartTotal sums line subtotals using product prices at query time.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
