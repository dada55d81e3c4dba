// Package dto содержит транспортные структуры REST-ручек и конверторы
// из доменных сущностей. Все ответы заворачиваются в единый конверт
// {success, data?, message?}.
package dto

import (
	"time"

	"medassist/internal/entities"
)

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type Pagination struct {
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(p entities.Pagination) Pagination {
	return Pagination{
		Page:  p.Page,
		Size:  p.Size,
		Total: p.Total,
		Pages: p.Pages,
	}
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type OrderSummary struct {
	ID              string  `json:"id"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	ShippingAddress string  `json:"shipping_address,omitempty"`
	ItemsCount      int     `json:"items_count"`
}

type Delivery struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"order_id"`
	DriverID        string        `json:"driver_id,omitempty"`
	Status          string        `json:"status"`
	AssignedAt      time.Time     `json:"assigned_at"`
	AcceptedAt      *time.Time    `json:"accepted_at,omitempty"`
	PickupAt        *time.Time    `json:"pickup_at,omitempty"`
	DeliveredAt     *time.Time    `json:"delivered_at,omitempty"`
	CurrentLocation *Location     `json:"current_location,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Order           *OrderSummary `json:"order,omitempty"`
}

func NewDelivery(e *entities.Delivery) Delivery {
	deliveryDTO := Delivery{
		ID:          e.ID,
		OrderID:     e.OrderID,
		DriverID:    e.DriverID,
		Status:      e.Status.String(),
		AssignedAt:  e.AssignedAt,
		AcceptedAt:  e.AcceptedAt,
		PickupAt:    e.PickupAt,
		DeliveredAt: e.DeliveredAt,
		Notes:       e.Notes,
	}

	if e.CurrentLocation != nil {
		deliveryDTO.CurrentLocation = &Location{
			Lat: e.CurrentLocation.Lat,
			Lon: e.CurrentLocation.Lon,
		}
	}
	if e.Order != nil {
		deliveryDTO.Order = &OrderSummary{
			ID:              e.Order.ID,
			TotalAmount:     e.Order.TotalAmount,
			Status:          e.Order.Status.String(),
			ShippingAddress: e.Order.ShippingAddress,
			ItemsCount:      e.Order.ItemsCount,
		}
	}

	return deliveryDTO
}

type DeliveryList struct {
	Deliveries []Delivery `json:"deliveries"`
	Pagination Pagination `json:"pagination"`
}

func NewDeliveryList(deliveries []entities.Delivery, p entities.Pagination) DeliveryList {
	items := make([]Delivery, 0, len(deliveries))
	for i := range deliveries {
		items = append(items, NewDelivery(&deliveries[i]))
	}
	return DeliveryList{
		Deliveries: items,
		Pagination: NewPagination(p),
	}
}

type OrderItem struct {
	MedicineID string  `json:"medicine_id"`
	BatchNo    string  `json:"batch_no,omitempty"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	Tax        float64 `json:"tax,omitempty"`
}

type Order struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"user_id"`
	PharmacyID         string      `json:"pharmacy_id"`
	Items              []OrderItem `json:"items"`
	TotalAmount        float64     `json:"total_amount"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"payment_status,omitempty"`
	ShippingAddress    string      `json:"shipping_address,omitempty"`
	CancellationReason string      `json:"cancellation_reason,omitempty"`
	AcceptedAt         *time.Time  `json:"accepted_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// NewOrder намеренно не включает OTP доставки: код знает только покупатель.
func NewOrder(e *entities.Order) Order {
	items := make([]OrderItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, OrderItem{
			MedicineID: item.MedicineID,
			BatchNo:    item.BatchNo,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Tax:        item.Tax,
		})
	}

	return Order{
		ID:                 e.ID,
		UserID:             e.UserID,
		PharmacyID:         e.PharmacyID,
		Items:              items,
		TotalAmount:        e.TotalAmount,
		Status:             e.Status.String(),
		PaymentStatus:      e.PaymentStatus,
		ShippingAddress:    e.ShippingAddress,
		CancellationReason: e.CancellationReason,
		AcceptedAt:         e.AcceptedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

type OrderList struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

func NewOrderList(orders []entities.Order, p entities.Pagination) OrderList {
	items := make([]Order, 0, len(orders))
	for i := range orders {
		items = append(items, NewOrder(&orders[i]))
	}
	return OrderList{
		Orders:     items,
		Pagination: NewPagination(p),
	}
}

type InventoryItem struct {
	ID                string    `json:"id"`
	PharmacyID        string    `json:"pharmacy_id"`
	MedicineID        string    `json:"medicine_id"`
	BatchNo           string    `json:"batch_no"`
	ExpiryDate        time.Time `json:"expiry_date"`
	QuantityAvailable int64     `json:"quantity_available"`
	ReservedQty       int64     `json:"reserved_qty"`
	MRP               float64   `json:"mrp"`
	SellingPrice      float64   `json:"selling_price"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewInventoryItem(e *entities.InventoryItem) InventoryItem {
	return InventoryItem{
		ID:                e.ID,
		PharmacyID:        e.PharmacyID,
		MedicineID:        e.MedicineID,
		BatchNo:           e.BatchNo,
		ExpiryDate:        e.ExpiryDate,
		QuantityAvailable: e.QuantityAvailable,
		ReservedQty:       e.ReservedQty,
		MRP:               e.MRP,
		SellingPrice:      e.SellingPrice,
		CreatedAt:         e.CreatedAt,
	}
}

type InventoryList struct {
	Items      []InventoryItem `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

func NewInventoryList(items []entities.InventoryItem, p entities.Pagination) InventoryList {
	dtos := make([]InventoryItem, 0, len(items))
	for i := range items {
		dtos = append(dtos, NewInventoryItem(&items[i]))
	}
	return InventoryList{
		Items:      dtos,
		Pagination: NewPagination(p),
	}
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

func NewUser(e *entities.User) User {
	return User{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		IsVerified: e.IsVerified,
	}
}

type DriverProfile struct {
	User                 User  `json:"user"`
	DeliveriesCompleted  int64 `json:"deliveries_completed"`
	DeliveriesInProgress int64 `json:"deliveries_in_progress"`
}

func NewDriverProfile(e *entities.DriverProfile) DriverProfile {
	return DriverProfile{
		User:                 NewUser(&e.User),
		DeliveriesCompleted:  e.Stats.DeliveriesCompleted,
		DeliveriesInProgress: e.Stats.DeliveriesInProgress,
	}
}

type Pharmacy struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	OpeningHours string  `json:"opening_hours,omitempty"`
	ContactPhone string  `json:"contact_phone,omitempty"`
	IsActive     bool    `json:"is_active"`
	Rating       float64 `json:"rating,omitempty"`
	RatingCount  int64   `json:"rating_count,omitempty"`
}

func NewPharmacy(e *entities.Pharmacy) Pharmacy {
	return Pharmacy{
		ID:           e.ID,
		Name:         e.Name,
		Address:      e.Address,
		OpeningHours: e.OpeningHours,
		ContactPhone: e.ContactPhone,
		IsActive:     e.IsActive,
		Rating:       e.Rating,
		RatingCount:  e.RatingCount,
	}
}

type PharmacistProfile struct {
	User     User     `json:"user"`
	Pharmacy Pharmacy `json:"pharmacy"`
}

func NewPharmacistProfile(e *entities.PharmacistProfile) PharmacistProfile {
	return PharmacistProfile{
		User:     NewUser(&e.User),
		Pharmacy: NewPharmacy(&e.Pharmacy),
	}
}
