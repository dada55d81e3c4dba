package inventory

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidItemID         = errors.New("invalid inventory item id")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidPage           = errors.New("invalid page parameters")

	ErrItemNotFound     = errors.New("inventory item not found")
	ErrPharmacyNotFound = errors.New("pharmacy not found")
)
