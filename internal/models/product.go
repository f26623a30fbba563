package models

// Product represents a product entry on the marketing site. The slug is
// immutable once the row exists; updates only touch the display fields.
type Product struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
