package driver

import (
	"context"
	"fmt"
	"time"

	"medassist/internal/entities"
)

type Driver struct {
	userRepository     UserRepository
	deliveryRepository DeliveryRepository
	locationRepository LocationRepository
}

func New(
	userRepository UserRepository,
	deliveryRepository DeliveryRepository,
	locationRepository LocationRepository,
) *Driver {
	return &Driver{
		userRepository:     userRepository,
		deliveryRepository: deliveryRepository,
		locationRepository: locationRepository,
	}
}

// GetProfile возвращает пользователя вместе со счетчиками доставок:
// завершенные и находящиеся в работе.
func (s *Driver) GetProfile(ctx context.Context, userID string) (*entities.DriverProfile, error) {
	userEntity, err := s.userRepository.GetDriver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	stats, err := s.deliveryRepository.GetStatsByDriver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get driver stats: %w", err)
	}

	return &entities.DriverProfile{
		User:  *userEntity,
		Stats: *stats,
	}, nil
}

// UpdateLocation перезаписывает последнюю точку водителя целиком.
func (s *Driver) UpdateLocation(ctx context.Context, userID string, loc entities.Location) error {
	if !loc.Valid() {
		return ErrInvalidLocation
	}

	err := s.locationRepository.Upsert(ctx, userID, loc, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert driver location: %w", err)
	}

	return nil
}
