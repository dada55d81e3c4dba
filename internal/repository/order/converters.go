package order

import "medassist/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, entities.OrderItem{
			MedicineID: item.MedicineID.Hex(),
			BatchNo:    item.BatchNo,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Tax:        item.Tax,
		})
	}

	return &entities.Order{
		ID:                 o.ID.Hex(),
		UserID:             o.UserID.Hex(),
		PharmacyID:         o.PharmacyID.Hex(),
		Items:              items,
		TotalAmount:        o.TotalAmount,
		Status:             entities.OrderStatusType(o.Status),
		PaymentStatus:      o.PaymentStatus,
		ShippingAddress:    o.ShippingAddress,
		DeliveryOTP:        o.DeliveryOTP,
		CancellationReason: o.CancellationReason,
		AcceptedAt:         o.AcceptedAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func ToDomainList(dbs []OrderDB) []entities.Order {
	orders := make([]entities.Order, 0, len(dbs))
	for i := range dbs {
		orders = append(orders, *ToDomain(&dbs[i]))
	}
	return orders
}
