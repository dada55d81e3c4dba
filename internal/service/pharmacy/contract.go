//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_test
package pharmacy

import (
	"context"

	"medassist/internal/entities"
)

type Repository interface {
	GetByPharmacistUserID(ctx context.Context, userID string) (*entities.Pharmacy, error)
	Update(ctx context.Context, id string, modify entities.PharmacyModify) (*entities.Pharmacy, error)
}

type UserRepository interface {
	GetPharmacist(ctx context.Context, id string) (*entities.User, error)
}
