package repo

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrSettingNotFound   = errors.New("setting not found")
	ErrMenuNotFound      = errors.New("menu not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateSlug     = errors.New("slug already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)
