package models

// User is an admin back-office account. There is a single credential class;
// no roles.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at,omitempty"`
}
