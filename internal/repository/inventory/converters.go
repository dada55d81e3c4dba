package inventory

import "medassist/internal/entities"

func ToDomain(i *InventoryItemDB) *entities.InventoryItem {
	if i == nil {
		return nil
	}
	return &entities.InventoryItem{
		ID:                i.ID.Hex(),
		PharmacyID:        i.PharmacyID.Hex(),
		MedicineID:        i.MedicineID.Hex(),
		BatchNo:           i.BatchNo,
		ExpiryDate:        i.ExpiryDate,
		QuantityAvailable: i.QuantityAvailable,
		ReservedQty:       i.ReservedQty,
		MRP:               i.MRP,
		SellingPrice:      i.SellingPrice,
		CreatedAt:         i.CreatedAt,
	}
}

func ToDomainList(dbs []InventoryItemDB) []entities.InventoryItem {
	items := make([]entities.InventoryItem, 0, len(dbs))
	for i := range dbs {
		items = append(items, *ToDomain(&dbs[i]))
	}
	return items
}
