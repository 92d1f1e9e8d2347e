package domain

type Book struct {
	ID            string
	Title         string
	Author        string
	Genre         string
	ISBN          string
	Price         Money
	Description   string
	StockQuantity int
	ImageURL      string
	ImageHint     string
}

// CartSnapshot freezes the fields an add-to-cart call copies into the
// line item.
func (b Book) CartSnapshot() CartItem {
	return CartItem{
		BookID:    b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		ImageURL:  b.ImageURL,
		ImageHint: b.ImageHint,
		Quantity:  1,
	}
}
