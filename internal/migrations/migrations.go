// Package migrations embeds the schema files so the server can apply
// them on start. The statements are idempotent; the same files are fed
// to the postgres test container as init scripts.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Files lists the migration files in apply order.
func Files() []string {
	return []string{
		"01_books.up.sql",
		"02_cart_items.up.sql",
		"03_orders.up.sql",
	}
}
