package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medassist/internal/entities"
	"medassist/internal/repository"
	pharmacysvc "medassist/internal/service/pharmacy"
)

type Order struct {
	repository         Repository
	pharmacyRepository PharmacyRepository
}

func New(repository Repository, pharmacyRepository PharmacyRepository) *Order {
	return &Order{
		repository:         repository,
		pharmacyRepository: pharmacyRepository,
	}
}

// List возвращает страницу заказов аптеки вызывающего фармацевта.
func (s *Order) List(ctx context.Context, pharmacistUserID string, status *entities.OrderStatusType, page entities.PageRequest) ([]entities.Order, entities.Pagination, error) {
	if !page.Valid() {
		return nil, entities.Pagination{}, ErrInvalidPage
	}
	if status != nil && !status.Valid() {
		return nil, entities.Pagination{}, ErrInvalidStatus
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return nil, entities.Pagination{}, err
	}

	orders, total, err := s.repository.GetByPharmacy(ctx, pharmacyEntity.ID, status, page)
	if err != nil {
		return nil, entities.Pagination{}, fmt.Errorf("list orders: %w", err)
	}

	return orders, entities.NewPagination(page, total), nil
}

func (s *Order) Get(ctx context.Context, id, pharmacistUserID string) (*entities.Order, error) {
	if !repository.IsValidObjectID(id) {
		return nil, ErrInvalidOrderID
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return nil, err
	}

	orderEntity, err := s.repository.GetByIDForPharmacy(ctx, id, pharmacyEntity.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) Accept(ctx context.Context, id, pharmacistUserID string) (*entities.Order, error) {
	return s.applyAction(ctx, id, pharmacistUserID, entities.OrderActionAccept, nil)
}

// Decline отменяет заказ с опциональной причиной. Зарезервированный товар
// при отмене не возвращается на склад.
func (s *Order) Decline(ctx context.Context, id, pharmacistUserID string, reason *string) (*entities.Order, error) {
	return s.applyAction(ctx, id, pharmacistUserID, entities.OrderActionDecline, reason)
}

func (s *Order) MarkPrepared(ctx context.Context, id, pharmacistUserID string) (*entities.Order, error) {
	return s.applyAction(ctx, id, pharmacistUserID, entities.OrderActionPrepare, nil)
}

func (s *Order) applyAction(ctx context.Context, id, pharmacistUserID string, action entities.OrderAction, reason *string) (*entities.Order, error) {
	if !repository.IsValidObjectID(id) {
		return nil, ErrInvalidOrderID
	}
	if _, _, ok := action.Transition(); !ok {
		return nil, ErrInvalidAction
	}

	pharmacyEntity, err := s.resolvePharmacy(ctx, pharmacistUserID)
	if err != nil {
		return nil, err
	}

	orderEntity, err := s.repository.ApplyAction(ctx, id, pharmacyEntity.ID, action, reason, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("apply order action %s: %w", action, err)
	}

	return orderEntity, nil
}

func (s *Order) resolvePharmacy(ctx context.Context, pharmacistUserID string) (*entities.Pharmacy, error) {
	pharmacyEntity, err := s.pharmacyRepository.GetByPharmacistUserID(ctx, pharmacistUserID)
	if err != nil {
		if errors.Is(err, pharmacysvc.ErrPharmacyNotFound) {
			return nil, ErrPharmacyNotFound
		}
		return nil, fmt.Errorf("resolve pharmacy: %w", err)
	}
	return pharmacyEntity, nil
}
