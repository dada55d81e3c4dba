package entities

import "time"

type Pharmacy struct {
	ID               string
	PharmacistUserID string
	Name             string
	Address          string
	OpeningHours     string
	ContactPhone     string
	IsActive         bool
	Rating           float64
	RatingCount      int64
	CreatedAt        time.Time
}

type PharmacyModify struct {
	Name         *string
	Address      *string
	OpeningHours *string
	ContactPhone *string
}

func (m PharmacyModify) Empty() bool {
	return m.Name == nil &&
		m.Address == nil &&
		m.OpeningHours == nil &&
		m.ContactPhone == nil
}
