package inventory

import (
	"strings"
	"time"
)

func isValidBatchNo(batchNo string) bool {
	return strings.TrimSpace(batchNo) != ""
}

func isValidQuantity(qty int64) bool {
	return qty >= 0
}

func isValidPrice(price float64) bool {
	return price >= 0
}

func isValidExpiryDate(expiry time.Time) bool {
	return !expiry.IsZero()
}
