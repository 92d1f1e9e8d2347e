package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// SeedBooks loads the starter catalog when the books collection is
// empty. Existing data is never touched.
func SeedBooks(ctx context.Context, books port.BookRepository) error {
	count, err := books.CountBooks(ctx)
	if err != nil {
		return fmt.Errorf("books.CountBooks: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, book := range seedBooks() {
		if _, err := books.CreateBook(ctx, book); err != nil {
			return fmt.Errorf("books.CreateBook %q: %w", book.Title, err)
		}
	}

	return nil
}

func seedBooks() []domain.Book {
	usd := func(s string) domain.Money {
		return domain.Money{Amount: decimal.RequireFromString(s), Currency: currency.USD}
	}

	return []domain.Book{
		{
			ID: "1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald",
			Genre: "Classic", ISBN: "9780743273565", Price: usd("10.99"),
			Description:   "The story of the fabulously wealthy Jay Gatsby and his love for the beautiful Daisy Buchanan.",
			StockQuantity: 15, ImageHint: "book cover",
		},
		{
			ID: "2", Title: "Dune", Author: "Frank Herbert",
			Genre: "Sci-Fi", ISBN: "9780441013593", Price: usd("15.99"),
			Description:   "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family.",
			StockQuantity: 20, ImageHint: "science fiction",
		},
		{
			ID: "3", Title: "The Hobbit", Author: "J.R.R. Tolkien",
			Genre: "Fantasy", ISBN: "9780618260300", Price: usd("12.50"),
			Description:   "A reluctant hobbit, Bilbo Baggins, sets out to the Lonely Mountain with a spirited group of dwarves.",
			StockQuantity: 25, ImageHint: "fantasy landscape",
		},
		{
			ID: "4", Title: "And Then There Were None", Author: "Agatha Christie",
			Genre: "Mystery", ISBN: "9780062073488", Price: usd("9.99"),
			Description:   "Ten strangers are lured to an isolated island mansion off the Devon coast by a mysterious U.N. Owen.",
			StockQuantity: 30, ImageHint: "detective silhouette",
		},
		{
			ID: "5", Title: "Pride and Prejudice", Author: "Jane Austen",
			Genre: "Romance", ISBN: "9780141439518", Price: usd("8.99"),
			Description:   "The turbulent relationship between Elizabeth Bennet and Fitzwilliam Darcy, a rich aristocratic landowner.",
			StockQuantity: 18, ImageHint: "couple love",
		},
		{
			ID: "6", Title: "The Shining", Author: "Stephen King",
			Genre: "Horror", ISBN: "9780385121675", Price: usd("14.00"),
			Description:   "Jack Torrance's new job at the Overlook Hotel is the perfect chance for a fresh start.",
			StockQuantity: 0, ImageHint: "haunted house",
		},
	}
}
