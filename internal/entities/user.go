package entities

import "time"

type User struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Roles      []string
	IsVerified bool
	CreatedAt  time.Time
}

type DriverStats struct {
	DeliveriesCompleted  int64
	DeliveriesInProgress int64
}

type DriverProfile struct {
	User  User
	Stats DriverStats
}

// PharmacistProfile объединяет пользователя и его аптеку (связь 1:1).
type PharmacistProfile struct {
	User     User
	Pharmacy Pharmacy
}
