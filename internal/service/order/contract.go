//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"medassist/internal/entities"
)

type Repository interface {
	GetByPharmacy(ctx context.Context, pharmacyID string, status *entities.OrderStatusType, page entities.PageRequest) ([]entities.Order, int64, error)
	GetByIDForPharmacy(ctx context.Context, id, pharmacyID string) (*entities.Order, error)

	ApplyAction(ctx context.Context, id, pharmacyID string, action entities.OrderAction, reason *string, now time.Time) (*entities.Order, error)
}

type PharmacyRepository interface {
	GetByPharmacistUserID(ctx context.Context, userID string) (*entities.Pharmacy, error)
}
