package pharmacy

import "errors"

var (
	ErrMissingRequiredFields = errors.New("no fields to update")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrUserNotFound     = errors.New("user not found")
	ErrPharmacyNotFound = errors.New("pharmacy not found")
)
