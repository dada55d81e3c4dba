package delivery

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidStatus     = errors.New("invalid delivery status")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrInvalidPage       = errors.New("invalid page parameters")
	ErrInvalidOTPFormat  = errors.New("invalid otp format")
	ErrOTPMismatch       = errors.New("otp does not match")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrAlreadyClaimed: условное обновление не нашло незанятую доставку.
	ErrAlreadyClaimed = errors.New("delivery already claimed")
	// ErrStatusConflict: текущий статус не входит в разрешенные предшественники.
	ErrStatusConflict = errors.New("delivery status transition conflict")
)
