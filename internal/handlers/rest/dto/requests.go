package dto

import (
	"net/url"
	"strconv"
	"time"

	"medassist/internal/entities"
)

type DeliveryStatusRequest struct {
	Status string   `json:"status"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

type ConfirmDeliveryRequest struct {
	OTP string `json:"otp"`
}

type DriverLocationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type OrderDeclineRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type InventoryCreateRequest struct {
	MedicineID        string    `json:"medicine_id"`
	BatchNo           string    `json:"batch_no"`
	ExpiryDate        time.Time `json:"expiry_date"`
	QuantityAvailable int64     `json:"quantity_available"`
	MRP               float64   `json:"mrp"`
	SellingPrice      float64   `json:"selling_price"`
}

type InventoryUpdateRequest struct {
	BatchNo           *string    `json:"batch_no,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	QuantityAvailable *int64     `json:"quantity_available,omitempty"`
	MRP               *float64   `json:"mrp,omitempty"`
	SellingPrice      *float64   `json:"selling_price,omitempty"`
}

type PharmacyUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	OpeningHours *string `json:"opening_hours,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}

// PageFromQuery читает page/size с умолчаниями. Диапазон значений
// проверяет сервис, здесь отсекается только мусор вместо числа.
func PageFromQuery(query url.Values) (entities.PageRequest, bool) {
	page := entities.PageRequest{
		Page: entities.DefaultPage,
		Size: entities.DefaultPageSize,
	}

	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.PageRequest{}, false
		}
		page.Page = parsed
	}

	if raw := query.Get("size"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.PageRequest{}, false
		}
		page.Size = parsed
	}

	return page, true
}
