package pharmacy

import (
	"context"
	"fmt"

	"medassist/internal/entities"
)

type Pharmacy struct {
	repository     Repository
	userRepository UserRepository
}

func New(repository Repository, userRepository UserRepository) *Pharmacy {
	return &Pharmacy{
		repository:     repository,
		userRepository: userRepository,
	}
}

// GetProfile возвращает пользователя вместе с его аптекой (связь 1:1).
func (s *Pharmacy) GetProfile(ctx context.Context, userID string) (*entities.PharmacistProfile, error) {
	userEntity, err := s.userRepository.GetPharmacist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get pharmacist: %w", err)
	}

	pharmacyEntity, err := s.repository.GetByPharmacistUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get pharmacy: %w", err)
	}

	return &entities.PharmacistProfile{
		User:     *userEntity,
		Pharmacy: *pharmacyEntity,
	}, nil
}

// UpdateProfile меняет только переданные поля аптеки вызывающего.
func (s *Pharmacy) UpdateProfile(ctx context.Context, userID string, modify entities.PharmacyModify) (*entities.Pharmacy, error) {
	if modify.Empty() {
		return nil, ErrMissingRequiredFields
	}

	if modify.Name != nil && !isValidName(*modify.Name) {
		return nil, ErrInvalidName
	}
	if modify.ContactPhone != nil && !isValidPhone(*modify.ContactPhone) {
		return nil, ErrInvalidPhone
	}

	pharmacyEntity, err := s.repository.GetByPharmacistUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get pharmacy: %w", err)
	}

	updated, err := s.repository.Update(ctx, pharmacyEntity.ID, modify)
	if err != nil {
		return nil, fmt.Errorf("update pharmacy: %w", err)
	}

	return updated, nil
}
