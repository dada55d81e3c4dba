package pharmacy

import "medassist/internal/entities"

func ToDomain(p *PharmacyDB) *entities.Pharmacy {
	if p == nil {
		return nil
	}
	return &entities.Pharmacy{
		ID:               p.ID.Hex(),
		PharmacistUserID: p.PharmacistUserID.Hex(),
		Name:             p.Name,
		Address:          p.Address,
		OpeningHours:     p.OpeningHours,
		ContactPhone:     p.ContactPhone,
		IsActive:         p.IsActive,
		Rating:           p.Rating,
		RatingCount:      p.RatingCount,
		CreatedAt:        p.CreatedAt,
	}
}
