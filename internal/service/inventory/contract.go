//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"

	"medassist/internal/entities"
)

type Repository interface {
	GetByPharmacy(ctx context.Context, pharmacyID string, page entities.PageRequest) ([]entities.InventoryItem, int64, error)
	GetByIDForPharmacy(ctx context.Context, id, pharmacyID string) (*entities.InventoryItem, error)

	Create(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	Update(ctx context.Context, id, pharmacyID string, modify entities.InventoryItemModify) (*entities.InventoryItem, error)
	Delete(ctx context.Context, id, pharmacyID string) error
}

type PharmacyRepository interface {
	GetByPharmacistUserID(ctx context.Context, userID string) (*entities.Pharmacy, error)
}
