package delivery

import "medassist/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	deliveryEntity := &entities.Delivery{
		ID:          d.ID.Hex(),
		OrderID:     d.OrderID.Hex(),
		Status:      entities.DeliveryStatusType(d.Status),
		AssignedAt:  d.AssignedAt,
		AcceptedAt:  d.AcceptedAt,
		PickupAt:    d.PickupAt,
		DeliveredAt: d.DeliveredAt,
		Notes:       d.Notes,
	}

	if d.DriverID != nil {
		deliveryEntity.DriverID = d.DriverID.Hex()
	}
	if d.CurrentLocation != nil {
		deliveryEntity.CurrentLocation = &entities.Location{
			Lat: d.CurrentLocation.Lat,
			Lon: d.CurrentLocation.Lon,
		}
	}

	return deliveryEntity
}

func ToDomainList(dbs []DeliveryDB) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(dbs))
	for i := range dbs {
		deliveries = append(deliveries, *ToDomain(&dbs[i]))
	}
	return deliveries
}

func FromDomainLocation(l *entities.Location) *LocationDB {
	if l == nil {
		return nil
	}
	return &LocationDB{
		Lat: l.Lat,
		Lon: l.Lon,
	}
}
