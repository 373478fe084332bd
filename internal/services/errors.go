package services

import "errors"

var (
	// ErrCategoryInUse blocks deletion of a category that still has tasks.
	ErrCategoryInUse = errors.New("category is referenced by at least one task")

	ErrEmailTaken          = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)
