package entities

import "time"

// InventoryItem это партия препарата на складе аптеки,
// одна запись на (аптека, препарат, партия).
type InventoryItem struct {
	ID                string
	PharmacyID        string
	MedicineID        string
	BatchNo           string
	ExpiryDate        time.Time
	QuantityAvailable int64
	ReservedQty       int64
	MRP               float64
	SellingPrice      float64
	CreatedAt         time.Time
}

// InventoryItemModify задает частичное обновление: nil-поля не трогаются.
type InventoryItemModify struct {
	BatchNo           *string
	ExpiryDate        *time.Time
	QuantityAvailable *int64
	MRP               *float64
	SellingPrice      *float64
}

func (m InventoryItemModify) Empty() bool {
	return m.BatchNo == nil &&
		m.ExpiryDate == nil &&
		m.QuantityAvailable == nil &&
		m.MRP == nil &&
		m.SellingPrice == nil
}
