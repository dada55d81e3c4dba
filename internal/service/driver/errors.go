package driver

import "errors"

var (
	ErrInvalidLocation = errors.New("invalid location")

	ErrUserNotFound = errors.New("user not found")
)
