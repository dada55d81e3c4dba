package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidAction  = errors.New("invalid order action")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidPage    = errors.New("invalid page parameters")

	ErrOrderNotFound    = errors.New("order not found")
	ErrPharmacyNotFound = errors.New("pharmacy not found")

	// ErrStatusConflict: заказ уже не в статусе, из которого действие разрешено.
	ErrStatusConflict = errors.New("order status transition conflict")
)
