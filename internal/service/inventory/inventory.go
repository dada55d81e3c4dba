package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medassist/internal/entities"
	"medassist/internal/repository"
	pharmacysvc "medassist/internal/service/pharmacy"
)

type Inventory struct {
	repository         Repository
	pharmacyRepository PharmacyRepository
}

func New(repository Repository, pharmacyRepository PharmacyRepository) *Inventory {
	return &Inventory{
		repository:         repository,
		pharmacyRepository: pharmacyRepository,
	}
}

func (s *Inventory) List(ctx context.Context, pharmacistUserID string, page entities.PageRequest) ([]entities.InventoryItem, entities.Pagination, error) {
	if !page.Valid() {
		return nil, entities.Pagination{}, ErrInvalidPage
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return nil, entities.Pagination{}, err
	}

	items, total, err := s.repository.GetByPharmacy(ctx, pharmacyEntity.ID, page)
	if err != nil {
		return nil, entities.Pagination{}, fmt.Errorf("list inventory: %w", err)
	}

	return items, entities.NewPagination(page, total), nil
}

// Add заводит новую позицию склада. Резерв инициализируется нулем
// независимо от входных данных.
func (s *Inventory) Add(ctx context.Context, pharmacistUserID string, item entities.InventoryItem) (*entities.InventoryItem, error) {
	if item.MedicineID == "" || item.BatchNo == "" {
		return nil, ErrMissingRequiredFields
	}
	if !repository.IsValidObjectID(item.MedicineID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidBatchNo(item.BatchNo) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidExpiryDate(item.ExpiryDate) {
		return nil, ErrInvalidExpiryDate
	}
	if !isValidQuantity(item.QuantityAvailable) {
		return nil, ErrInvalidQuantity
	}
	if !isValidPrice(item.MRP) || !isValidPrice(item.SellingPrice) {
		return nil, ErrInvalidPrice
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return nil, err
	}

	item.PharmacyID = pharmacyEntity.ID
	item.ReservedQty = 0
	item.CreatedAt = time.Now().UTC()

	created, err := s.repository.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}

	return created, nil
}

// Update меняет только переданные поля. Пустое обновление не ошибка:
// возвращается текущее состояние позиции.
func (s *Inventory) Update(ctx context.Context, pharmacistUserID, id string, modify entities.InventoryItemModify) (*entities.InventoryItem, error) {
	if !repository.IsValidObjectID(id) {
		return nil, ErrInvalidItemID
	}

	if modify.BatchNo != nil && !isValidBatchNo(*modify.BatchNo) {
		return nil, ErrMissingRequiredFields
	}
	if modify.ExpiryDate != nil && !isValidExpiryDate(*modify.ExpiryDate) {
		return nil, ErrInvalidExpiryDate
	}
	if modify.QuantityAvailable != nil && !isValidQuantity(*modify.QuantityAvailable) {
		return nil, ErrInvalidQuantity
	}
	if modify.MRP != nil && !isValidPrice(*modify.MRP) {
		return nil, ErrInvalidPrice
	}
	if modify.SellingPrice != nil && !isValidPrice(*modify.SellingPrice) {
		return nil, ErrInvalidPrice
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return nil, err
	}

	if modify.Empty() {
		item, err := s.repository.GetByIDForPharmacy(ctx, id, pharmacyEntity.ID)
		if err != nil {
			return nil, fmt.Errorf("get inventory item: %w", err)
		}
		return item, nil
	}

	item, err := s.repository.Update(ctx, id, pharmacyEntity.ID, modify)
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	return item, nil
}

func (s *Inventory) Delete(ctx context.Context, pharmacistUserID, id string) error {
	if !repository.IsValidObjectID(id) {
		return ErrInvalidItemID
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return err
	}

	err = s.repository.Delete(ctx, id, pharmacyEntity.ID)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}

	return nil
}

func (s *Inventory) resolvePharmacy(ctx context.Context, pharmacistUserID string) (*entities.Pharmacy, error) {
	pharmacyEntity, err := s.pharmacyRepository.GetByPharmacistUserID(ctx, pharmacistUserID)
	if err != nil {
		if errors.Is(err, pharmacysvc.ErrPharmacyNotFound) {
			return nil, ErrPharmacyNotFound
		}
		return nil, fmt.Errorf("resolve pharmacy: %w", err)
	}
	return pharmacyEntity, nil
}
