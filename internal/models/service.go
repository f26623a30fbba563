package models

// Service is the services-page counterpart of Product, without a color.
type Service struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
