package handlers

import "github.com/qbyten/site-api/internal/models"

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MutationResult is the success envelope for write operations.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ProductRequest struct {
	ID          int    `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ServiceRequest struct {
	ID          int    `json:"id,omitempty"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SettingRequest carries an arbitrary JSON value; anything that is not a
// string gets JSON-encoded before storage.
type SettingRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// MenuRequest uses pointers where absence and the zero value mean different
// things (is_active defaults to true, not false).
type MenuRequest struct {
	ID        int     `json:"id,omitempty"`
	Title     string  `json:"title"`
	URL       *string `json:"url"`
	ParentID  *int    `json:"parent_id"`
	SortOrder int     `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
	Target    string  `json:"target"`
	Icon      *string `json:"icon"`
}

type MenusResult struct {
	Menus []*models.MenuNode `json:"menus"`
	Flat  []models.Menu      `json:"flat"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type LoginResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type VerifyResult struct {
	Valid bool      `json:"valid"`
	User  *UserInfo `json:"user,omitempty"`
	Error string    `json:"error,omitempty"`
}
